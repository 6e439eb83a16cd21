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

import "github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"

// Backend is the substrate the dispatch protocol runs against. Two
// implementations exist: a cycle-accurate simulated unit (the sim package)
// and a memory mapped hardware unit (the mmio package).
//
// The dispatch protocol produces identical results under every backend for
// the same inputs. Only elapsed cycle counts may differ.
type Backend interface {
	// BackendID returns a short name for the backend implementation.
	BackendID() string

	// NumFunctions returns the number of functions the unit routes to.
	NumFunctions() int

	// Latch the descriptor into the unit's registers and begin computation.
	// The unit's done flag is deasserted until the computation completes.
	Latch(desc Descriptor) error

	// StepCycle advances the substrate by one clock cycle. For attached
	// hardware, where the clock runs freely, a step is one poll of the
	// unit's status.
	StepCycle()

	// Done returns the state of the unit's done flag as of the most recent
	// StepCycle.
	Done() bool

	// Result returns the content of the result register. Valid only when the
	// done flag is asserted. The register is stable until the next Latch.
	Result() uint32

	// Counter returns the substrate's cycle counter. The counter is hardware
	// owned. Software only ever observes it.
	Counter() clock.Counter

	// Elapse models CPU-side work of the given number of cycles. The
	// simulated substrate advances its clock accordingly. Attached hardware
	// does nothing, real time passes regardless.
	Elapse(cycles int)

	// Reset the unit, abandoning any computation in progress. The cycle
	// counter is not affected. Reset is the only recovery from a watchdog
	// timeout.
	Reset() error
}
