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

package hardware

import (
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/environment"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/profiling"
)

// System is the main container for the components of the machine being
// measured.
type System struct {
	Env *environment.Environment

	// the substrate the dispatch protocol runs against
	Backend cfu.Backend

	// the dispatcher sequencing invocations of the custom function unit
	Dispatcher *cfu.Dispatcher

	// measurement regions over the substrate's cycle counter
	Regions *profiling.Regions
}

// NewSystem creates a new System around the backend. It is used for all
// aspects of measurement: benchmark runs and debugging sessions.
//
// The backend is created by the caller and attached here. The environment
// should have been created with the backend's counter as its ticker.
func NewSystem(env *environment.Environment, bk cfu.Backend) (*System, error) {
	var err error

	sys := &System{
		Env:     env,
		Backend: bk,
	}

	sys.Dispatcher, err = cfu.NewDispatcher(env, bk)
	if err != nil {
		return nil, err
	}

	sys.Regions = profiling.NewRegions(bk.Counter())

	return sys, nil
}

// Reset the system as if the reset line had been pulled. Any invocation in
// flight is abandoned. The cycle counter and any accumulated measurements
// are unaffected.
func (sys *System) Reset() error {
	return sys.Dispatcher.Reset()
}

// Step the substrate one clock cycle, moving any invocation in flight
// through the dispatch protocol. We can put this function in a loop for an
// effective debugging loop.
func (sys *System) Step() error {
	return sys.Dispatcher.Step()
}

// Run the substrate as quickly as possible. continueCheck() should return
// false when the run should stop, for example when the invocation in flight
// has completed.
func (sys *System) Run(continueCheck func() (bool, error)) error {
	var err error

	cont := true
	for cont {
		err = sys.Step()
		if err != nil {
			return err
		}
		cont, err = continueCheck()
	}

	return err
}
