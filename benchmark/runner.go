// This file is part of cfubench.
//
// cfubench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cfubench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cfubench.  If not, see <https://www.gnu.org/licenses/>.

package benchmark

import (
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/logger"
)

// Sentinal errors.
const (
	// VerificationFailed is returned by Run() when a case's Compare function
	// has found a difference between the two renditions.
	VerificationFailed = "benchmark: verification failed: %s: %v"
)

// Runner runs benchmark cases against a single system. The same system, and
// so the same cycle counter, times both renditions of every case.
type Runner struct {
	sys *hardware.System

	// the number of times each rendition is run. the reported cycle count is
	// the minimum over the repetitions, which is the run least disturbed by
	// anything outside the computation being measured.
	//
	// values less than one mean each rendition runs exactly once.
	Repetitions int
}

// NewRunner is the preferred method of initialisation for the Runner type.
func NewRunner(sys *hardware.System) *Runner {
	return &Runner{sys: sys}
}

// Run the cases in order. One result is returned per case, in the same order
// as the cases. The first case to fail ends the run.
func (run *Runner) Run(cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		res, err := run.runCase(c)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

func (run *Runner) runCase(c Case) (Result, error) {
	if c.Baseline == nil || c.Accelerated == nil {
		return Result{}, curated.Errorf("benchmark: case %s is missing a rendition", c.Name)
	}

	base, err := run.time(c.Name+" (baseline)", c.Baseline)
	if err != nil {
		return Result{}, err
	}

	accel, err := run.time(c.Name+" (accelerated)", c.Accelerated)
	if err != nil {
		return Result{}, err
	}

	if c.Compare != nil {
		if err := c.Compare(); err != nil {
			return Result{}, curated.Errorf(VerificationFailed, c.Name, err)
		}
	}

	res := Result{
		CaseName:          c.Name,
		BaselineCycles:    base,
		AcceleratedCycles: accel,
	}

	logger.Log(run.sys.Env, "benchmark", res)

	return res, nil
}

// time a single rendition, returning the best cycle count over the configured
// number of repetitions.
func (run *Runner) time(name string, fn func() error) (uint64, error) {
	reps := run.Repetitions
	if reps < 1 {
		reps = 1
	}

	var best uint64

	for i := 0; i < reps; i++ {
		reg, err := run.sys.Regions.Measure(name, fn)
		if err != nil {
			return 0, err
		}
		if i == 0 || reg.Elapsed < best {
			best = reg.Elapsed
		}
	}

	return best, nil
}
