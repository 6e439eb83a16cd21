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

// Package cfu implements the dispatch protocol for a custom function unit. A
// custom function unit (or CFU) is an accelerator block coupled tightly to a
// CPU pipeline. The CPU stages two operand words, names one of the unit's
// functions, and stalls until the unit signals that the one word result is
// ready.
//
// The protocol is expressed by the Dispatcher type. An invocation moves
// through four states:
//
//	Idle -> Issued -> Busy -> Done -> Idle
//
// The Issue() function latches a Descriptor into the unit and the invocation
// becomes the one outstanding call. Step() advances the substrate by a single
// clock cycle, moving the invocation from Issued to Busy on the first step
// and from Busy to Done on the step the unit asserts its done flag.
// ReadResult() consumes the result word and returns the dispatcher to Idle.
//
// At most one invocation can be outstanding at any time. Issuing while an
// invocation is in flight is a protocol violation. Protocol violations fail
// loudly and never disturb the invocation already in flight.
//
// The Call() function wraps the protocol into a single blocking call. This
// models the pipeline stall of the real hardware. The CPU has nothing else
// to do while the unit is working so there is no cooperative yield and no
// cancellation. A stuck unit is caught by the watchdog, which fails the
// invocation at exactly the cycle bound given in the hardware preferences.
//
// The substrate behind the protocol is abstracted by the Backend interface.
// The sim package provides a cycle-accurate simulated substrate and the mmio
// package drives a memory mapped hardware unit. Results are identical across
// backends for identical inputs. Only cycle counts may differ.
package cfu
