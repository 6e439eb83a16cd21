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

//go:build !linux

package mmio

import "github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"

// UIO is only available on linux. The Loopback driver works everywhere.
type UIO struct{}

// OpenUIO always fails on this platform.
func OpenUIO(path string) (*UIO, error) {
	return nil, curated.Errorf(DriverError, "no memory mapped device support on this platform")
}

func (u *UIO) ReadWord(offset int) uint32 {
	return 0
}

func (u *UIO) WriteWord(offset int, value uint32) {
}

func (u *UIO) Close() error {
	return nil
}
