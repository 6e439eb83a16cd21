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

// Package clock defines the substrate cycle counter used for all cycle
// measurement in the project.
//
// A counter is monotonically increasing and wraps around to zero at the limit
// of its width. Counters of widths between 8 and 64 bits are supported; the
// counter on a small soft-core substrate is often much narrower than a
// register on the host.
//
// Individual readings of a counter are represented by the Snapshot type.
// Snapshots are opaque; subtracting one snapshot from another directly gives
// the wrong answer when the counter has wrapped around between the two
// readings. The Elapsed() function performs the modular subtraction that is
// correct in the presence of (at most one) wraparound.
//
// The duration measured between two snapshots is always well defined provided
// the real elapsed cycle count is less than 2^width. Beyond that the counter
// may have wrapped more than once and the measurement is silently short; use
// a wider counter if measurements of that magnitude are expected.
package clock
