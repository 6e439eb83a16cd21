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

import "fmt"

// Case couples two renditions of the same computation. The Runner times each
// rendition in turn and reports the difference.
//
// The two renditions must perform the same work on the same input data. The
// Runner has no way of checking that precondition itself but a Compare
// function can be supplied to verify the outputs after the event.
type Case struct {
	Name string

	// the rendition running entirely on the CPU
	Baseline func() error

	// the rendition making use of the custom function unit
	Accelerated func() error

	// optional verification that the two renditions agree. called once per
	// run of the case, after both renditions have completed
	Compare func() error
}

// Result summarises one run of a benchmark case.
type Result struct {
	CaseName          string
	BaselineCycles    uint64
	AcceleratedCycles uint64
}

func (r Result) String() string {
	s, ok := r.Speedup()
	if !ok {
		return fmt.Sprintf("%s: %d/%d cycles (speedup n/a)", r.CaseName, r.BaselineCycles, r.AcceleratedCycles)
	}
	return fmt.Sprintf("%s: %d/%d cycles (speedup %.2f)", r.CaseName, r.BaselineCycles, r.AcceleratedCycles, s)
}

// Speedup returns the ratio of baseline cycles to accelerated cycles. A ratio
// above 1.0 means the function unit is doing its job.
//
// The ratio is undefined when the accelerated cycle count is zero, in which
// case the second return value is false.
func (r Result) Speedup() (float64, bool) {
	if r.AcceleratedCycles == 0 {
		return 0, false
	}
	return float64(r.BaselineCycles) / float64(r.AcceleratedCycles), true
}
