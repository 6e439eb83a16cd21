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

package sim_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/sim"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/preferences"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

// addition defers its timing to the backend's default latency
type addition struct{}

func (f addition) Execute(a uint32, b uint32) uint32 {
	return a + b
}

func (f addition) CycleCost(a uint32, b uint32) int {
	return 0
}

func newDispatcher(t *testing.T) (*cfu.Dispatcher, *environment.Environment) {
	t.Helper()
	t.Chdir(t.TempDir())

	prf, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	ctr, err := clock.NewCycles(32)
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(ctr, prf)
	test.DemandSuccess(t, err)
	env.Normalise()

	rt, err := cfu.NewRouter([]cfu.Function{addition{}})
	test.DemandSuccess(t, err)

	bk, err := sim.NewBackend(env, ctr, rt)
	test.DemandSuccess(t, err)

	var iface cfu.Backend
	test.DemandImplements(t, bk, iface)

	d, err := cfu.NewDispatcher(env, bk)
	test.DemandSuccess(t, err)

	return d, env
}

func TestDefaultLatency(t *testing.T) {
	d, env := newDispatcher(t)

	// a function with no timing model of its own takes the default latency
	// from the hardware preferences
	test.ExpectSuccess(t, env.Prefs.Latency.Set(4))
	r, err := d.Call(cfu.Descriptor{Function: 0, OperandA: 2, OperandB: 3})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 5)

	inv, ok := d.LastInvocation()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, inv.Cycles, 4)

	// the default is read at latch time so a change takes effect on the next
	// invocation
	test.ExpectSuccess(t, env.Prefs.Latency.Set(7))
	_, err = d.Call(cfu.Descriptor{Function: 0, OperandA: 2, OperandB: 3})
	test.ExpectSuccess(t, err)

	inv, ok = d.LastInvocation()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, inv.Cycles, 7)
}

func TestJitterOffByDefault(t *testing.T) {
	d, _ := newDispatcher(t)

	// with the jitter model disabled every invocation costs exactly the
	// declared latency
	for range 10 {
		_, err := d.Call(cfu.Descriptor{Function: 0, OperandA: 1, OperandB: 1})
		test.ExpectSuccess(t, err)

		inv, ok := d.LastInvocation()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, inv.Cycles, 4)
	}
}

func TestJitterDeterminism(t *testing.T) {
	gather := func() []uint64 {
		d, env := newDispatcher(t)
		test.ExpectSuccess(t, env.Prefs.Jitter.Set(true))

		cycles := make([]uint64, 0, 10)
		for range 10 {
			_, err := d.Call(cfu.Descriptor{Function: 0, OperandA: 1, OperandB: 1})
			test.ExpectSuccess(t, err)

			inv, ok := d.LastInvocation()
			test.ExpectSuccess(t, ok)

			// jitter only ever adds a small number of cycles
			test.ExpectSuccess(t, inv.Cycles >= 4)
			test.ExpectSuccess(t, inv.Cycles < 4+8)

			cycles = append(cycles, inv.Cycles)
		}
		return cycles
	}

	// the jitter model is seeded from the cycle counter. two normalised
	// systems stepping identically see identical jitter
	a := gather()
	b := gather()
	for i := range a {
		test.ExpectEquality(t, a[i], b[i])
	}
}
