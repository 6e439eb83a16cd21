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

package clock_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

func TestCounterWidths(t *testing.T) {
	// widths outside the supported range are rejected
	_, err := clock.NewCycles(7)
	test.ExpectFailure(t, err)
	_, err = clock.NewCycles(65)
	test.ExpectFailure(t, err)
	_, err = clock.NewCycles(0)
	test.ExpectFailure(t, err)

	// limits of the supported range are fine
	_, err = clock.NewCycles(8)
	test.ExpectSuccess(t, err)
	_, err = clock.NewCycles(64)
	test.ExpectSuccess(t, err)
}

func TestElapsed(t *testing.T) {
	c, err := clock.NewCycles(32)
	test.DemandSuccess(t, err)

	start := c.Now()
	c.TickN(100)
	end := c.Now()
	test.ExpectEquality(t, clock.Elapsed(c, start, end), 100)
}

// a measurement that begins and ends on the same cycle has a zero duration
func TestZeroElapsed(t *testing.T) {
	c, err := clock.NewCycles(16)
	test.DemandSuccess(t, err)

	c.TickN(12345)
	s := c.Now()
	test.ExpectEquality(t, clock.Elapsed(c, s, s), 0)
}

// the example that illustrates wraparound handling: on an 8-bit counter a
// reading of 250 followed by a reading of 10 is an elapsed time of 16 cycles
func TestWraparound(t *testing.T) {
	c, err := clock.NewCycles(8)
	test.DemandSuccess(t, err)

	c.TickN(250)
	start := c.Now()
	test.ExpectEquality(t, uint64(start), 250)

	c.TickN(16)
	end := c.Now()
	test.ExpectEquality(t, uint64(end), 10)

	test.ExpectEquality(t, clock.Elapsed(c, start, end), 16)
}

// Tick and TickN must agree with one another
func TestTick(t *testing.T) {
	c, err := clock.NewCycles(8)
	test.DemandSuccess(t, err)
	d, err := clock.NewCycles(8)
	test.DemandSuccess(t, err)

	for i := 0; i < 300; i++ {
		c.Tick()
	}
	d.TickN(300)
	test.ExpectEquality(t, c.Now(), d.Now())

	// 300 ticks of an 8-bit counter wraps around to 44
	test.ExpectEquality(t, uint64(c.Now()), 44)
}

// a 64-bit counter relies on the natural wrapping of unsigned arithmetic
func TestFullWidthCounter(t *testing.T) {
	c, err := clock.NewCycles(64)
	test.DemandSuccess(t, err)

	c.TickN(^uint64(0))
	start := c.Now()
	c.TickN(20)
	end := c.Now()
	test.ExpectEquality(t, clock.Elapsed(c, start, end), 20)
}

func TestReset(t *testing.T) {
	c, err := clock.NewCycles(32)
	test.DemandSuccess(t, err)

	c.TickN(999)
	c.Reset()
	test.ExpectEquality(t, uint64(c.Now()), 0)
	test.ExpectEquality(t, c.Width(), 32)
}
