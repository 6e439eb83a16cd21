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

import "fmt"

// FunctionID selects which of the unit's functions an invocation targets.
// Valid values are in the range [0, NumFunctions).
type FunctionID uint32

// Function is the interface implemented by every accelerator function. A
// function is a pure transform of two operand words into one result word. It
// has no access to system memory and no state between invocations. Anything
// larger than a single word must be staged through the operand registers by
// the caller, one invocation at a time.
type Function interface {
	// Execute the transform. The same operands always produce the same
	// result word.
	Execute(a uint32, b uint32) uint32

	// CycleCost returns the number of cycles the function occupies the unit
	// for the given operands. The cost may be data-dependent but is never
	// less than one cycle.
	//
	// A cost of zero or less means the function declares no timing model of
	// its own and the backend's default latency applies.
	CycleCost(a uint32, b uint32) int
}

// Descriptor describes a single invocation of the unit. Two operand words and
// the id of the function that will transform them. A descriptor is immutable
// once issued.
type Descriptor struct {
	Function FunctionID
	OperandA uint32
	OperandB uint32
}

func (desc Descriptor) String() string {
	return fmt.Sprintf("fn %02d (a=%#08x b=%#08x)", desc.Function, desc.OperandA, desc.OperandB)
}

// Invocation records the details of a completed invocation. Returned by
// Dispatcher.LastInvocation() for the benefit of the debugger.
type Invocation struct {
	Desc   Descriptor
	Result uint32

	// the number of substrate cycles between issue and result retrieval
	Cycles uint64
}

func (inv Invocation) String() string {
	return fmt.Sprintf("%s = %#08x [%d cycles]", inv.Desc, inv.Result, inv.Cycles)
}
