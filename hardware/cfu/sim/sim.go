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

package sim

import (
	"fmt"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/logger"
)

// jitter added to a function's cycle cost is in the range [0, maxJitter)
const maxJitter = 8

// Backend is the simulated substrate. It implements the cfu.Backend
// interface.
type Backend struct {
	env *environment.Environment
	ctr *clock.Cycles
	rt  *cfu.Router

	// the unit's registers. result is computed at latch time but is not
	// visible until the done flag asserts
	result uint32
	done   bool

	// the number of cycles before the done flag asserts
	remaining int
}

// NewBackend is the preferred method of initialisation for the simulated
// Backend type.
//
// The counter should be the same counter the environment was created with.
// The simulated substrate owns the stepping of it.
func NewBackend(env *environment.Environment, ctr *clock.Cycles, rt *cfu.Router) (*Backend, error) {
	if env == nil {
		return nil, curated.Errorf(cfu.ConfigError, "sim: no environment")
	}
	if ctr == nil {
		return nil, curated.Errorf(cfu.ConfigError, "sim: no cycle counter")
	}
	if rt == nil {
		return nil, curated.Errorf(cfu.ConfigError, "sim: no router")
	}

	bk := &Backend{
		env: env,
		ctr: ctr,
		rt:  rt,
	}

	logger.Log(env, "sim", fmt.Sprintf("%d functions, %d-bit counter", rt.NumFunctions(), ctr.Width()))

	return bk, nil
}

// BackendID implements the cfu.Backend interface.
func (bk *Backend) BackendID() string {
	return "sim"
}

// NumFunctions implements the cfu.Backend interface.
func (bk *Backend) NumFunctions() int {
	return bk.rt.NumFunctions()
}

// Latch implements the cfu.Backend interface.
func (bk *Backend) Latch(desc cfu.Descriptor) error {
	f, err := bk.rt.Lookup(desc.Function)
	if err != nil {
		return err
	}

	cost := f.CycleCost(desc.OperandA, desc.OperandB)
	if cost <= 0 {
		cost = bk.env.Prefs.Latency.Get().(int)
	}
	if cost < 1 {
		cost = 1
	}

	if bk.env.Prefs.Jitter.Get().(bool) {
		cost += bk.env.Random.Repeatable(maxJitter)
	}

	bk.result = f.Execute(desc.OperandA, desc.OperandB)
	bk.done = false
	bk.remaining = cost

	return nil
}

// StepCycle implements the cfu.Backend interface.
func (bk *Backend) StepCycle() {
	bk.ctr.Tick()

	if bk.remaining > 0 {
		bk.remaining--
		if bk.remaining == 0 {
			bk.done = true
		}
	}
}

// Done implements the cfu.Backend interface.
func (bk *Backend) Done() bool {
	return bk.done
}

// Result implements the cfu.Backend interface.
func (bk *Backend) Result() uint32 {
	return bk.result
}

// Counter implements the cfu.Backend interface.
func (bk *Backend) Counter() clock.Counter {
	return bk.ctr
}

// Elapse implements the cfu.Backend interface.
func (bk *Backend) Elapse(cycles int) {
	if cycles <= 0 {
		return
	}

	// when the unit is not computing, the clock can jump in one movement
	if bk.remaining == 0 {
		bk.ctr.TickN(uint64(cycles))
		return
	}

	for i := 0; i < cycles; i++ {
		bk.StepCycle()
	}
}

// Reset implements the cfu.Backend interface. The cycle counter is not
// affected.
func (bk *Backend) Reset() error {
	bk.result = 0
	bk.done = false
	bk.remaining = 0
	return nil
}
