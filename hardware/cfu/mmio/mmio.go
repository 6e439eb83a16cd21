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

import (
	"fmt"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/logger"
)

// Backend drives a custom function unit through its register window. It
// implements the cfu.Backend interface.
type Backend struct {
	bus   BusDriver
	numFn int
	ctr   *counter
	done  bool
}

// NewBackend is the preferred method of initialisation for the memory mapped
// Backend type.
//
// The bus driver is interrogated for the unit's configuration. Ownership of
// the driver stays with the caller, who should Close it when the backend is
// no longer needed.
func NewBackend(bus BusDriver) (*Backend, error) {
	if bus == nil {
		return nil, curated.Errorf(cfu.ConfigError, "mmio: no bus driver")
	}

	numFn := int(bus.ReadWord(RegNumFn))
	if numFn < 1 {
		return nil, curated.Errorf(cfu.ConfigError, "mmio: device reports no functions")
	}

	width := uint(bus.ReadWord(RegWidth))
	if width < clock.MinWidth || width > clock.MaxWidth {
		return nil, curated.Errorf(cfu.ConfigError, fmt.Sprintf("mmio: device reports a %d-bit counter", width))
	}

	bk := &Backend{
		bus:   bus,
		numFn: numFn,
		ctr: &counter{
			bus:   bus,
			width: width,
		},
	}

	logger.Log(logger.Allow, "mmio", fmt.Sprintf("%d functions, %d-bit counter", numFn, width))

	return bk, nil
}

// BackendID implements the cfu.Backend interface.
func (bk *Backend) BackendID() string {
	return "mmio"
}

// NumFunctions implements the cfu.Backend interface.
func (bk *Backend) NumFunctions() int {
	return bk.numFn
}

// Latch implements the cfu.Backend interface.
func (bk *Backend) Latch(desc cfu.Descriptor) error {
	if desc.Function >= cfu.FunctionID(bk.numFn) {
		return curated.Errorf(cfu.ProtocolViolation, fmt.Sprintf("no function with id %d", desc.Function))
	}

	bk.bus.WriteWord(RegFunc, uint32(desc.Function))
	bk.bus.WriteWord(RegOpA, desc.OperandA)
	bk.bus.WriteWord(RegOpB, desc.OperandB)
	bk.bus.WriteWord(RegCtrl, CtrlIssue)
	bk.done = false

	return nil
}

// StepCycle implements the cfu.Backend interface. The unit runs on its own
// clock so a step is one poll of the status register.
func (bk *Backend) StepCycle() {
	bk.done = bk.bus.ReadWord(RegStatus)&StatusDone == StatusDone
}

// Done implements the cfu.Backend interface.
func (bk *Backend) Done() bool {
	return bk.done
}

// Result implements the cfu.Backend interface.
func (bk *Backend) Result() uint32 {
	return bk.bus.ReadWord(RegResult)
}

// Counter implements the cfu.Backend interface.
func (bk *Backend) Counter() clock.Counter {
	return bk.ctr
}

// Elapse implements the cfu.Backend interface. Real time passes whether or
// not it is declared, so there is nothing to do.
func (bk *Backend) Elapse(cycles int) {
}

// Reset implements the cfu.Backend interface.
func (bk *Backend) Reset() error {
	bk.bus.WriteWord(RegCtrl, CtrlReset)
	bk.done = false
	return nil
}

// counter implements the clock.Counter interface over the unit's free
// running cycle counter registers.
type counter struct {
	bus   BusDriver
	width uint
}

// Now implements the clock.Counter interface. The counter is two words wide
// so the high word is read again after the low word. A change means the low
// word wrapped mid-read and the read is retried.
func (c *counter) Now() clock.Snapshot {
	for {
		hi := c.bus.ReadWord(RegCycHi)
		lo := c.bus.ReadWord(RegCycLo)
		if c.bus.ReadWord(RegCycHi) == hi {
			return clock.Snapshot(uint64(hi)<<32 | uint64(lo))
		}
	}
}

// Width implements the clock.Counter interface.
func (c *counter) Width() uint {
	return c.width
}
