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
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/benchmark"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/digest"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
)

// cycle costs for the multiply step. the software rendition models a multiply
// instruction plus the accumulate; the saving from the unit is modest, which
// is the point of including the case.
const (
	macUnitCost     = 3
	macSoftwareCost = 8
)

// MAC multiplies the operands, returning the low 32 bits of the product.
// Accumulation happens on the CPU in both renditions: the unit saves only the
// multiply.
type MAC struct{}

// Execute implements the cfu.Function interface.
func (f MAC) Execute(a uint32, b uint32) uint32 {
	return a * b
}

// CycleCost implements the cfu.Function interface.
func (f MAC) CycleCost(a uint32, b uint32) int {
	return macUnitCost
}

// software rendition of the multiply. shift-and-add over the bits of b,
// matching the low 32 bits of the product exactly.
func macSoftware(a uint32, b uint32) uint32 {
	var p uint32
	for b != 0 {
		if b&1 == 1 {
			p += a
		}
		a <<= 1
		b >>= 1
	}
	return p
}

func macCase(sys *hardware.System) benchmark.Case {
	inputA := randomWords(sys, caseLength)
	inputB := randomWords(sys, caseLength)

	var soft string
	var accel string

	return benchmark.Case{
		Name: "mac",
		Baseline: func() error {
			dig := digest.NewResult()
			var sum uint32
			for i := range inputA {
				sum += macSoftware(inputA[i], inputB[i])
				dig.Write32(sum)
				sys.Backend.Elapse(macSoftwareCost)
			}
			soft = dig.Fingerprint()
			return nil
		},
		Accelerated: func() error {
			dig := digest.NewResult()
			var sum uint32
			for i := range inputA {
				r, err := sys.Dispatcher.Call(cfu.Descriptor{
					Function: FuncMAC,
					OperandA: inputA[i],
					OperandB: inputB[i],
				})
				if err != nil {
					return err
				}
				sum += r
				dig.Write32(sum)
			}
			accel = dig.Fingerprint()
			return nil
		},
		Compare: func() error {
			return compareDigests(soft, accel)
		},
	}
}
