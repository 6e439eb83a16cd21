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

package random_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/random"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

type ticker struct {
}

func (m *ticker) Now() clock.Snapshot {
	return clock.Snapshot(1024)
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&ticker{})
	b := random.NewRandom(&ticker{})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Repeatable(i), b.Repeatable(i))
	}
}

// the counter types from the clock package satisfy the Ticker interface
func TestCounterIsTicker(t *testing.T) {
	c, err := clock.NewCycles(32)
	test.DemandSuccess(t, err)

	var tick random.Ticker
	test.ExpectImplements(t, c, tick)

	a := random.NewRandom(c)
	a.ZeroSeed = true
	b := random.NewRandom(c)
	b.ZeroSeed = true

	// same counter reading, same number
	test.ExpectEquality(t, a.Repeatable(100), b.Repeatable(100))

	// the return value changes (for almost all ticks) as the counter advances
	// but is still reproducible for the same reading
	c.TickN(500)
	test.ExpectEquality(t, a.Repeatable(100), b.Repeatable(100))
}
