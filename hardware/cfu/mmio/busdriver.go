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

package mmio

// Sentinal errors for bus driver problems.
const (
	DriverError = "mmio: driver: %v"
)

// BusDriver provides word access to the unit's register window. Word
// accesses cannot fail, as on the real bus. Anything that can go wrong does
// so when the driver is opened.
//
// Offsets are byte offsets and must be word aligned and within WindowSize.
type BusDriver interface {
	ReadWord(offset int) uint32
	WriteWord(offset int, value uint32)

	// Close releases the window. The driver is unusable afterwards.
	Close() error
}
