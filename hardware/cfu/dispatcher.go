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

package cfu

import (
	"fmt"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/logger"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/profiling"
)

// Sentinal errors for the dispatch protocol.
const (
	// ProtocolViolation indicates a programmer error in the use of the
	// dispatch protocol. The operation that caused it has failed but the
	// invocation in flight, if there is one, is unaffected.
	ProtocolViolation = "cfu: protocol violation: %s"

	// WatchdogTimeout indicates a unit that has stayed busy beyond the cycle
	// bound in the hardware preferences. The invocation is lost and the
	// dispatcher will not retry it. Reset() is the only recovery.
	WatchdogTimeout = "cfu: watchdog: no done signal after %d cycles"
)

// Dispatcher sequences invocations of the custom function unit. It enforces
// the single outstanding invocation invariant and accounts for the cycles
// each invocation spends in flight.
//
// The dispatcher expects a single thread of control. This is not a
// limitation, it is the machine being modelled. The CPU issuing these
// instructions stalls while the unit works.
type Dispatcher struct {
	env *environment.Environment
	bk  Backend

	status Status

	// details of the invocation in flight. valid unless status is Idle
	desc   Descriptor
	issued clock.Snapshot

	// the number of StepCycles since issue and the watchdog bound latched at
	// issue time. a bound of zero disables the watchdog
	steps    int
	watchdog int

	last    Invocation
	hasLast bool

	prof *profiling.CycleProfile
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(env *environment.Environment, bk Backend) (*Dispatcher, error) {
	if env == nil {
		return nil, curated.Errorf(ConfigError, "dispatcher has no environment")
	}
	if bk == nil {
		return nil, curated.Errorf(ConfigError, "dispatcher has no backend")
	}
	return &Dispatcher{
		env:  env,
		bk:   bk,
		prof: profiling.NewCycleProfile(),
	}, nil
}

// Status of the invocation in flight. Idle when there is none.
func (d *Dispatcher) Status() Status {
	return d.status
}

// Pending returns the descriptor of the invocation in flight. The second
// return value is false when the dispatcher is Idle.
func (d *Dispatcher) Pending() (Descriptor, bool) {
	if d.status == Idle {
		return Descriptor{}, false
	}
	return d.desc, true
}

// LastInvocation returns the details of the most recently completed
// invocation. The second return value is false if no invocation has
// completed yet.
func (d *Dispatcher) LastInvocation() (Invocation, bool) {
	return d.last, d.hasLast
}

// Profile returns the cycle attribution accumulated over every completed
// invocation since the dispatcher was created.
func (d *Dispatcher) Profile() *profiling.CycleProfile {
	return d.prof
}

// Issue latches the descriptor into the unit, making it the one outstanding
// invocation. Issuing while an invocation is in flight is a protocol
// violation and does not disturb the invocation in flight.
//
// The watchdog bound is read from the hardware preferences at issue time and
// holds for the whole invocation.
func (d *Dispatcher) Issue(desc Descriptor) error {
	if d.status != Idle {
		return curated.Errorf(ProtocolViolation, fmt.Sprintf("issue while %s", d.status))
	}

	if desc.Function >= FunctionID(d.bk.NumFunctions()) {
		return curated.Errorf(ProtocolViolation, fmt.Sprintf("no function with id %d", desc.Function))
	}

	err := d.bk.Latch(desc)
	if err != nil {
		return err
	}

	d.desc = desc
	d.status = Issued
	d.steps = 0
	d.issued = d.bk.Counter().Now()
	d.watchdog = d.env.Prefs.Watchdog.Get().(int)

	return nil
}

// Step advances the substrate by one clock cycle and moves the protocol
// forward. An Issued invocation becomes Busy on the first step. A Busy
// invocation becomes Done on the step the unit asserts its done flag.
//
// Stepping with no invocation in flight advances the substrate clock and
// nothing else.
//
// A WatchdogTimeout error is returned on the step that reaches the watchdog
// bound without a done signal. The dispatcher stays Busy after a timeout.
// Reset() is the only way forward.
func (d *Dispatcher) Step() error {
	d.bk.StepCycle()

	switch d.status {
	case Issued:
		d.status = Busy
		fallthrough
	case Busy:
		d.steps++
		if d.bk.Done() {
			d.status = Done
			return nil
		}
		if d.watchdog > 0 && d.steps >= d.watchdog {
			if d.steps == d.watchdog {
				logger.Log(d.env, "cfu", fmt.Sprintf("watchdog: %s has not completed", d.desc))
			}
			return curated.Errorf(WatchdogTimeout, d.watchdog)
		}
	}

	return nil
}

// Done is true when the unit has completed the invocation in flight and the
// result word is waiting to be read.
func (d *Dispatcher) Done() bool {
	return d.status == Done
}

// ReadResult consumes the result word, completing the invocation and
// returning the dispatcher to Idle. Reading the result in any state other
// than Done is a protocol violation.
func (d *Dispatcher) ReadResult() (uint32, error) {
	if d.status != Done {
		return 0, curated.Errorf(ProtocolViolation, fmt.Sprintf("read result while %s", d.status))
	}

	r := d.bk.Result()

	c := d.bk.Counter()
	elapsed := clock.Elapsed(c, d.issued, c.Now())
	d.prof.Add(uint32(d.desc.Function), elapsed)

	d.last = Invocation{
		Desc:   d.desc,
		Result: r,
		Cycles: elapsed,
	}
	d.hasLast = true
	d.status = Idle

	return r, nil
}

// Call is the blocking form of the protocol. Issue, step until done, read
// the result. The call returns only when the invocation has completed or
// failed, modelling the pipeline stall of the real hardware.
func (d *Dispatcher) Call(desc Descriptor) (uint32, error) {
	err := d.Issue(desc)
	if err != nil {
		return 0, err
	}

	for !d.Done() {
		err = d.Step()
		if err != nil {
			return 0, err
		}
	}

	return d.ReadResult()
}

// Reset the dispatcher and the unit behind it. Any invocation in flight is
// abandoned. The cycle counter and the accumulated profile are not affected.
func (d *Dispatcher) Reset() error {
	err := d.bk.Reset()
	if err != nil {
		return err
	}

	d.status = Idle
	d.steps = 0

	return nil
}
