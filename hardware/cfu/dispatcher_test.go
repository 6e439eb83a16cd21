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

package cfu_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
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

// exclusiveOr completes in a single cycle
type exclusiveOr struct{}

func (f exclusiveOr) Execute(a uint32, b uint32) uint32 {
	return a ^ b
}

func (f exclusiveOr) CycleCost(a uint32, b uint32) int {
	return 1
}

func newSimSystem(t *testing.T, width uint, functions []cfu.Function) *hardware.System {
	t.Helper()
	t.Chdir(t.TempDir())

	prf, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	ctr, err := clock.NewCycles(width)
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(ctr, prf)
	test.DemandSuccess(t, err)
	env.Normalise()

	rt, err := cfu.NewRouter(functions)
	test.DemandSuccess(t, err)

	bk, err := sim.NewBackend(env, ctr, rt)
	test.DemandSuccess(t, err)

	sys, err := hardware.NewSystem(env, bk)
	test.DemandSuccess(t, err)

	return sys
}

func TestDispatchScenario(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 4}})
	d := sys.Dispatcher

	test.ExpectEquality(t, d.Status(), cfu.Idle)

	err := d.Issue(cfu.Descriptor{Function: 0, OperandA: 42, OperandB: 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d.Status(), cfu.Issued)

	// the unit has a latency of four cycles. the done flag must stay low for
	// the first three steps and assert on the fourth
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, d.Step())
		test.ExpectEquality(t, d.Status(), cfu.Busy)
		test.ExpectInequality(t, d.Done(), true)
	}

	test.ExpectSuccess(t, d.Step())
	test.ExpectSuccess(t, d.Done())
	test.ExpectEquality(t, d.Status(), cfu.Done)

	r, err := d.ReadResult()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 42)
	test.ExpectEquality(t, d.Status(), cfu.Idle)

	inv, ok := d.LastInvocation()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, inv.Result, 42)
	test.ExpectEquality(t, inv.Cycles, 4)
}

func TestSingleOutstandingInvocation(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 8}})
	d := sys.Dispatcher

	first := cfu.Descriptor{Function: 0, OperandA: 10, OperandB: 0}
	test.ExpectSuccess(t, d.Issue(first))
	test.ExpectSuccess(t, d.Step())
	test.ExpectEquality(t, d.Status(), cfu.Busy)

	// a second issue is rejected while the first is in flight
	err := d.Issue(cfu.Descriptor{Function: 0, OperandA: 99, OperandB: 0})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.ProtocolViolation))

	// the rejection has not disturbed the invocation in flight
	pending, ok := d.Pending()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pending, first)
	test.ExpectEquality(t, d.Status(), cfu.Busy)

	for !d.Done() {
		test.ExpectSuccess(t, d.Step())
	}

	r, err := d.ReadResult()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 10)
}

func TestReadResultProtocol(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 2}})
	d := sys.Dispatcher

	// reading the result is a protocol violation in every state except Done
	_, err := d.ReadResult()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.ProtocolViolation))

	test.ExpectSuccess(t, d.Issue(cfu.Descriptor{Function: 0, OperandA: 1, OperandB: 0}))
	_, err = d.ReadResult()
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, d.Step())
	_, err = d.ReadResult()
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, d.Step())
	test.ExpectSuccess(t, d.Done())

	_, err = d.ReadResult()
	test.ExpectSuccess(t, err)

	// the result has been consumed
	_, err = d.ReadResult()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.ProtocolViolation))
}

func TestBadFunctionID(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 1}})
	d := sys.Dispatcher

	err := d.Issue(cfu.Descriptor{Function: 1, OperandA: 1, OperandB: 0})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.ProtocolViolation))
	test.ExpectEquality(t, d.Status(), cfu.Idle)
}

func TestWatchdog(t *testing.T) {
	// the function at id 0 takes longer than any watchdog bound used in this
	// test. the function at id 1 is there to show the unit working again
	// after a reset
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 1 << 30}, identity{cost: 2}})
	d := sys.Dispatcher

	test.ExpectSuccess(t, sys.Env.Prefs.Watchdog.Set(50))
	test.ExpectSuccess(t, d.Issue(cfu.Descriptor{Function: 0, OperandA: 1, OperandB: 0}))

	// the timeout fires at exactly the configured bound, not earlier and not
	// later
	for i := 0; i < 49; i++ {
		test.ExpectSuccess(t, d.Step())
	}
	err := d.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cfu.WatchdogTimeout))

	// the invocation is lost. the dispatcher stays busy and stepping only
	// repeats the condition
	test.ExpectEquality(t, d.Status(), cfu.Busy)
	err = d.Step()
	test.ExpectFailure(t, err)

	// reset is the only recovery
	test.ExpectSuccess(t, d.Reset())
	test.ExpectEquality(t, d.Status(), cfu.Idle)

	r, err := d.Call(cfu.Descriptor{Function: 1, OperandA: 7, OperandB: 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 7)
}

func TestWatchdogDisabled(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 200}})
	d := sys.Dispatcher

	// a bound of zero disables the watchdog entirely
	test.ExpectSuccess(t, sys.Env.Prefs.Watchdog.Set(0))

	r, err := d.Call(cfu.Descriptor{Function: 0, OperandA: 3, OperandB: 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 3)
}

func TestCallDeterminism(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{exclusiveOr{}})
	d := sys.Dispatcher

	// identical descriptors produce identical results no matter how often
	// they are dispatched
	for a := uint32(1); a < 256; a++ {
		desc := cfu.Descriptor{Function: 0, OperandA: a, OperandB: 0xa5a5a5a5}

		r1, err := d.Call(desc)
		test.ExpectSuccess(t, err)

		r2, err := d.Call(desc)
		test.ExpectSuccess(t, err)

		test.ExpectEquality(t, r1, r2)
		test.ExpectEquality(t, r1, a^0xa5a5a5a5)
	}
}

func TestCycleAttribution(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 4}, exclusiveOr{}})
	d := sys.Dispatcher

	for i := 0; i < 3; i++ {
		_, err := d.Call(cfu.Descriptor{Function: 0, OperandA: 1, OperandB: 0})
		test.ExpectSuccess(t, err)
	}
	_, err := d.Call(cfu.Descriptor{Function: 1, OperandA: 1, OperandB: 1})
	test.ExpectSuccess(t, err)

	e, ok := d.Profile().Entry(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Calls, 3)
	test.ExpectEquality(t, e.Cycles, 12)

	e, ok = d.Profile().Entry(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Calls, 1)
	test.ExpectEquality(t, e.Cycles, 1)
}

func TestStepWhileIdle(t *testing.T) {
	sys := newSimSystem(t, 32, []cfu.Function{identity{cost: 1}})
	d := sys.Dispatcher

	c := sys.Backend.Counter()
	start := c.Now()

	// stepping with nothing in flight advances the substrate and nothing
	// else
	for i := 0; i < 5; i++ {
		test.ExpectSuccess(t, d.Step())
	}
	test.ExpectEquality(t, d.Status(), cfu.Idle)
	test.ExpectEquality(t, clock.Elapsed(c, start, c.Now()), 5)
}
