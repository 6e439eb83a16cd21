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

//go:build linux

package mmio

import (
	"sync/atomic"
	"unsafe"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"golang.org/x/sys/unix"
)

// UIO is a BusDriver over a memory mapped device node, typically a UIO
// device exposed by the platform's device tree.
type UIO struct {
	fd    int
	mem   []byte
	words []uint32
}

// OpenUIO maps the register window of the device node at path.
func OpenUIO(path string) (*UIO, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(DriverError, err)
	}

	// the window is much smaller than a page but a page is the smallest
	// mappable extent
	mem, err := unix.Mmap(fd, 0, unix.Getpagesize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, curated.Errorf(DriverError, err)
	}

	u := &UIO{
		fd:  fd,
		mem: mem,
	}
	u.words = unsafe.Slice((*uint32)(unsafe.Pointer(&mem[0])), len(mem)/4)

	return u, nil
}

// ReadWord implements the BusDriver interface. Atomic access keeps the
// compiler from caching or reordering what is really a device register.
func (u *UIO) ReadWord(offset int) uint32 {
	return atomic.LoadUint32(&u.words[offset>>2])
}

// WriteWord implements the BusDriver interface.
func (u *UIO) WriteWord(offset int, value uint32) {
	atomic.StoreUint32(&u.words[offset>>2], value)
}

// Close implements the BusDriver interface.
func (u *UIO) Close() error {
	err := unix.Munmap(u.mem)
	cerr := unix.Close(u.fd)
	if err == nil {
		err = cerr
	}
	u.mem = nil
	u.words = nil
	if err != nil {
		return curated.Errorf(DriverError, err)
	}
	return nil
}
