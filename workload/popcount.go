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

// cycle costs for population count. the software rendition uses Kernighan's
// method so its cost depends on the number of set bits.
const (
	popcountUnitCost       = 2
	popcountSoftwareBase   = 3
	popcountSoftwarePerBit = 2
)

// Popcount counts the set bits of operand a. Operand b is unused.
type Popcount struct{}

// Execute implements the cfu.Function interface.
func (f Popcount) Execute(a uint32, b uint32) uint32 {
	return uint32(bits.OnesCount32(a))
}

// CycleCost implements the cfu.Function interface.
func (f Popcount) CycleCost(a uint32, b uint32) int {
	return popcountUnitCost
}

// software rendition of population count. Kernighan's method: one iteration
// per set bit.
func popcountSoftware(v uint32) uint32 {
	var n uint32
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

func popcountCase(sys *hardware.System) benchmark.Case {
	input := randomWords(sys, caseLength)

	var soft string
	var accel string

	return benchmark.Case{
		Name: "popcount",
		Baseline: func() error {
			dig := digest.NewResult()
			for _, v := range input {
				n := popcountSoftware(v)
				dig.Write32(n)
				sys.Backend.Elapse(popcountSoftwareBase + popcountSoftwarePerBit*int(n))
			}
			soft = dig.Fingerprint()
			return nil
		},
		Accelerated: func() error {
			dig := digest.NewResult()
			for _, v := range input {
				r, err := sys.Dispatcher.Call(cfu.Descriptor{Function: FuncPopcount, OperandA: v})
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
