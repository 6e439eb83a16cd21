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

package workload

import (
	"math/bits"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/benchmark"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/digest"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
)

// cycle costs for bit reversal. reversal is wiring in gateware but the
// software rendition shifts one bit per iteration.
const (
	bitrevUnitCost     = 2
	bitrevSoftwareCost = 24
)

// Bitrev reverses the bit order of operand a. Operand b is unused.
type Bitrev struct{}

// Execute implements the cfu.Function interface.
func (f Bitrev) Execute(a uint32, b uint32) uint32 {
	return bits.Reverse32(a)
}

// CycleCost implements the cfu.Function interface.
func (f Bitrev) CycleCost(a uint32, b uint32) int {
	return bitrevUnitCost
}

// software rendition of bit reversal. the classic shift-and-or loop.
func bitrevSoftware(v uint32) uint32 {
	var r uint32
	for i := 0; i < 32; i++ {
		r <<= 1
		r |= v & 1
		v >>= 1
	}
	return r
}

func bitrevCase(sys *hardware.System) benchmark.Case {
	input := randomWords(sys, caseLength)

	var soft string
	var accel string

	return benchmark.Case{
		Name: "bitrev",
		Baseline: func() error {
			dig := digest.NewResult()
			for _, v := range input {
				dig.Write32(bitrevSoftware(v))
				sys.Backend.Elapse(bitrevSoftwareCost)
			}
			soft = dig.Fingerprint()
			return nil
		},
		Accelerated: func() error {
			dig := digest.NewResult()
			for _, v := range input {
				r, err := sys.Dispatcher.Call(cfu.Descriptor{Function: FuncBitrev, OperandA: v})
				if err != nil {
					return err
				}
				dig.Write32(r)
			}
			accel = dig.Fingerprint()
			return nil
		},
		Compare: func() error {
			return compareDigests(soft, accel)
		},
	}
}
