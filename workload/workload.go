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
	"fmt"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/benchmark"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
)

// Function ids for the stock workload. A router built from Functions() serves
// these ids in this order.
const (
	FuncBitrev cfu.FunctionID = iota
	FuncPopcount
	FuncMAC
)

// the number of words processed by each stock case.
const caseLength = 64

// Functions returns the stock functions in function id order.
func Functions() []cfu.Function {
	return []cfu.Function{
		Bitrev{},
		Popcount{},
		MAC{},
	}
}

// Cases returns the stock benchmark cases bound to the supplied system. The
// system's router must serve the stock functions, ie. it should have been
// built from Functions().
//
// Input data is drawn from the system's random stream when Cases() is called.
// A normalised environment therefore produces the same data, and the same
// measurements, on every run.
func Cases(sys *hardware.System) []benchmark.Case {
	return []benchmark.Case{
		bitrevCase(sys),
		popcountCase(sys),
		macCase(sys),
	}
}

// randomWords draws input data from the environment's random stream. the
// stream is seeded by the cycle counter so the counter is stepped between
// draws.
func randomWords(sys *hardware.System, n int) []uint32 {
	words := make([]uint32, n)
	for i := range words {
		hi := uint32(sys.Env.Random.Repeatable(0x10000))
		sys.Backend.Elapse(1)
		lo := uint32(sys.Env.Random.Repeatable(0x10000))
		sys.Backend.Elapse(1)
		words[i] = hi<<16 | lo
	}
	return words
}

// the renditions of a case must produce identical result streams.
func compareDigests(soft string, accel string) error {
	if soft != accel {
		return fmt.Errorf("digest mismatch: software %s, accelerated %s", soft, accel)
	}
	return nil
}
