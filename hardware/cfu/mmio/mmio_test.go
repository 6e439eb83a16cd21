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

package mmio_test

import (
	"path/filepath"
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/mmio"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu/sim"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/preferences"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

// identity returns operand a after the declared number of cycles
type identity struct {
	cost int
}

func (f identity) Execute(a uint32, b uint32) uint32 {
	return a
}

func (f identity) CycleCost(a uint32, b uint32) int {
	return f.cost
}

// multiply completes in two cycles
type multiply struct{}

func (f multiply) Execute(a uint32, b uint32) uint32 {
	return a * b
}

func (f multiply) CycleCost(a uint32, b uint32) int {
	return 2
}

func newLoopbackSystem(t *testing.T, latency int, functions []cfu.Function) *hardware.System {
	t.Helper()
	t.Chdir(t.TempDir())

	rt, err := cfu.NewRouter(functions)
	test.DemandSuccess(t, err)

	bk, err := mmio.NewBackend(mmio.NewLoopback(rt, latency))
	test.DemandSuccess(t, err)

	prf, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(bk.Counter(), prf)
	test.DemandSuccess(t, err)
	env.Normalise()

	sys, err := hardware.NewSystem(env, bk)
	test.DemandSuccess(t, err)

	return sys
}

func TestLoopbackScenario(t *testing.T) {
	sys := newLoopbackSystem(t, 1, []cfu.Function{identity{cost: 4}})
	d := sys.Dispatcher

	err := d.Issue(cfu.Descriptor{Function: 0, OperandA: 42, OperandB: 0})
	test.ExpectSuccess(t, err)

	// the register level protocol honours the same timing as the simulated
	// substrate. done stays low for three polls and asserts on the fourth
	for range 3 {
		test.ExpectSuccess(t, d.Step())
		test.ExpectInequality(t, d.Done(), true)
	}
	test.ExpectSuccess(t, d.Step())
	test.ExpectSuccess(t, d.Done())

	r, err := d.ReadResult()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 42)
	test.ExpectEquality(t, d.Status(), cfu.Idle)

	inv, ok := d.LastInvocation()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, inv.Cycles >= 4)
}

// results must be identical across backends for identical inputs. only cycle
// counts may differ
func TestBackendParity(t *testing.T) {
	functions := []cfu.Function{identity{cost: 4}, multiply{}}

	lbSys := newLoopbackSystem(t, 1, functions)

	t.Chdir(t.TempDir())
	prf, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	ctr, err := clock.NewCycles(32)
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(ctr, prf)
	test.DemandSuccess(t, err)
	env.Normalise()
	rt, err := cfu.NewRouter(functions)
	test.DemandSuccess(t, err)
	simBk, err := sim.NewBackend(env, ctr, rt)
	test.DemandSuccess(t, err)
	simSys, err := hardware.NewSystem(env, simBk)
	test.DemandSuccess(t, err)

	for _, desc := range []cfu.Descriptor{
		{Function: 0, OperandA: 42, OperandB: 0},
		{Function: 1, OperandA: 7, OperandB: 6},
		{Function: 1, OperandA: 0xffffffff, OperandB: 2},
	} {
		a, err := lbSys.Dispatcher.Call(desc)
		test.ExpectSuccess(t, err, desc)

		b, err := simSys.Dispatcher.Call(desc)
		test.ExpectSuccess(t, err, desc)

		test.ExpectEquality(t, a, b, desc)
	}
}

func TestFaultBit(t *testing.T) {
	rt, err := cfu.NewRouter([]cfu.Function{identity{cost: 1}})
	test.DemandSuccess(t, err)

	lb := mmio.NewLoopback(rt, 1)

	// an unroutable descriptor raises the fault line. done never asserts
	lb.WriteWord(mmio.RegFunc, 99)
	lb.WriteWord(mmio.RegCtrl, mmio.CtrlIssue)

	for range 10 {
		status := lb.ReadWord(mmio.RegStatus)
		test.ExpectEquality(t, status&mmio.StatusFault, mmio.StatusFault)
		test.ExpectEquality(t, status&mmio.StatusDone, 0)
	}

	// a good descriptor clears the fault
	lb.WriteWord(mmio.RegFunc, 0)
	lb.WriteWord(mmio.RegCtrl, mmio.CtrlIssue)
	status := lb.ReadWord(mmio.RegStatus)
	test.ExpectEquality(t, status&mmio.StatusFault, 0)
	test.ExpectEquality(t, status&mmio.StatusDone, mmio.StatusDone)
}

func TestFreeRunningCounter(t *testing.T) {
	sys := newLoopbackSystem(t, 1, []cfu.Function{identity{cost: 1}})

	c := sys.Backend.Counter()
	test.ExpectEquality(t, c.Width(), 64)

	// every bus access moves the loopback clock on, so two reads can never
	// see the same value
	s1 := c.Now()
	s2 := c.Now()
	test.ExpectSuccess(t, clock.Elapsed(c, s1, s2) > 0)
}

func TestOpenUIOFailure(t *testing.T) {
	_, err := mmio.OpenUIO(filepath.Join(t.TempDir(), "no-such-device"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, mmio.DriverError))
}
