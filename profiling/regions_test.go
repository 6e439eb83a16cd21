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

package profiling_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/profiling"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

func TestNestedRegions(t *testing.T) {
	c, err := clock.NewCycles(16)
	test.DemandSuccess(t, err)

	reg := profiling.NewRegions(c)

	outer := reg.Begin("outer")
	c.TickN(10)

	inner := reg.Begin("inner")
	c.TickN(5)

	r, err := reg.End(inner)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Name, "inner")
	test.ExpectEquality(t, r.Elapsed, 5)

	c.TickN(3)

	r, err = reg.End(outer)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Name, "outer")
	test.ExpectEquality(t, r.Elapsed, 18)

	test.ExpectEquality(t, reg.Depth(), 0)
}

// the elapsed count of an enclosing region is never less than the sum of the
// elapsed counts of the regions nested directly within it
func TestContainment(t *testing.T) {
	c, err := clock.NewCycles(32)
	test.DemandSuccess(t, err)

	reg := profiling.NewRegions(c)

	outer := reg.Begin("outer")

	var sum uint64
	for i := 0; i < 5; i++ {
		h := reg.Begin("inner")
		c.TickN(uint64(i * 7))
		r, err := reg.End(h)
		test.ExpectSuccess(t, err)
		sum += r.Elapsed
		c.Tick()
	}

	r, err := reg.End(outer)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, r.Elapsed >= sum)
}

func TestMismatchedEnd(t *testing.T) {
	c, err := clock.NewCycles(16)
	test.DemandSuccess(t, err)

	reg := profiling.NewRegions(c)

	outer := reg.Begin("outer")
	inner := reg.Begin("inner")

	// outer cannot end before inner
	_, err = reg.End(outer)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, profiling.MismatchedRegion))

	// the mismatch has not disturbed the nesting stack
	test.ExpectEquality(t, reg.Depth(), 2)

	_, err = reg.End(inner)
	test.ExpectSuccess(t, err)
	_, err = reg.End(outer)
	test.ExpectSuccess(t, err)
}

func TestEndWithoutBegin(t *testing.T) {
	c, err := clock.NewCycles(16)
	test.DemandSuccess(t, err)

	reg := profiling.NewRegions(c)

	_, err = reg.End(profiling.Handle(1))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, profiling.MismatchedRegion))
}

func TestRegionAcrossWraparound(t *testing.T) {
	c, err := clock.NewCycles(8)
	test.DemandSuccess(t, err)

	// park the counter close to the top of its range
	c.TickN(250)

	reg := profiling.NewRegions(c)

	h := reg.Begin("wrap")
	c.TickN(16)
	r, err := reg.End(h)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Elapsed, 16)
}

func TestMeasure(t *testing.T) {
	c, err := clock.NewCycles(16)
	test.DemandSuccess(t, err)

	reg := profiling.NewRegions(c)

	r, err := reg.Measure("work", func() error {
		c.TickN(7)
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Elapsed, 7)
	test.ExpectEquality(t, reg.Depth(), 0)

	// the region is closed even when the measured function fails
	_, err = reg.Measure("failing", func() error {
		return curated.Errorf("measured function: %s", "deliberate")
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "measured function: %s"))
	test.ExpectEquality(t, reg.Depth(), 0)
}
