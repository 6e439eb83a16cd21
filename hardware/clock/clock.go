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

package clock

import (
	"fmt"
)

// Snapshot is a single reading of a cycle counter.
//
// Snapshots are opaque. In particular, the difference between two snapshots
// must be found with the Elapsed() function and not by direct subtraction.
type Snapshot uint64

// the limits of counter width supported by the package.
const (
	MinWidth = 8
	MaxWidth = 64
)

// Counter implementations provide a monotonically increasing count of
// substrate cycles. The count wraps around to zero when the limit of the
// counter's width is reached.
//
// Counters are read-only from the point of view of the measuring software.
type Counter interface {
	// Now returns the current reading of the counter
	Now() Snapshot

	// Width returns the size of the counter in bits
	Width() uint
}

// mask returns the bitmask for a counter of the given width. a width of 64
// wraps the shift and produces the full mask.
func mask(width uint) uint64 {
	return (uint64(1) << width) - 1
}

// Elapsed returns the number of cycles between two snapshots of a counter,
// accounting for at most one wraparound of the counter between the two
// readings.
//
// The start snapshot must have been taken before the end snapshot on the same
// counter. Elapsed(c, s, s) is zero; a measurement never takes negative time.
func Elapsed(c Counter, start, end Snapshot) uint64 {
	return (uint64(end) - uint64(start)) & mask(c.Width())
}

// Cycles is a software-stepped cycle counter. It implements the Counter
// interface and is the counter type used by the simulated substrate.
//
// The zero value is not usable; use NewCycles().
type Cycles struct {
	width uint
	mask  uint64
	count uint64
}

// NewCycles is the preferred method of initialisation for the Cycles type.
// Width must be in the range MinWidth to MaxWidth.
func NewCycles(width uint) (*Cycles, error) {
	if width < MinWidth || width > MaxWidth {
		return nil, fmt.Errorf("clock: unsupported counter width (%d)", width)
	}
	return &Cycles{
		width: width,
		mask:  mask(width),
	}, nil
}

func (c *Cycles) String() string {
	return fmt.Sprintf("%d (%d-bit)", c.count, c.width)
}

// Now implements the Counter interface.
func (c *Cycles) Now() Snapshot {
	return Snapshot(c.count)
}

// Width implements the Counter interface.
func (c *Cycles) Width() uint {
	return c.width
}

// Tick advances the counter by one cycle, wrapping around at the limit of the
// counter width.
func (c *Cycles) Tick() {
	c.count = (c.count + 1) & c.mask
}

// TickN advances the counter by n cycles, wrapping around at the limit of the
// counter width.
func (c *Cycles) TickN(n uint64) {
	c.count = (c.count + n) & c.mask
}

// Reset the counter to zero, as would happen on substrate power-on.
func (c *Cycles) Reset() {
	c.count = 0
}
