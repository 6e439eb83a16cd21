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
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
)

// Loopback is a BusDriver backed by a software model of the unit's register
// file. It exercises the same register sequencing as a real device and so
// stands in for one in tests and on machines with nothing attached.
//
// The model is functional rather than cycle-accurate. A latched function
// completes after its declared cost in status polls. The free-running
// counter advances once for every bus access, which approximates the access
// cost of a real bus without claiming exactness.
type Loopback struct {
	rt *cfu.Router

	// cost applied when a function declares none of its own
	latency int

	fn     uint32
	opa    uint32
	opb    uint32
	status uint32
	result uint32

	// the number of status polls before the done bit asserts
	remaining int

	// the free-running counter
	cycles uint64
}

// NewLoopback is the preferred method of initialisation for the Loopback
// type. The latency argument is the cost applied to functions that declare
// no cost of their own. Values less than one are clamped to one.
func NewLoopback(rt *cfu.Router, latency int) *Loopback {
	if latency < 1 {
		latency = 1
	}
	return &Loopback{
		rt:      rt,
		latency: latency,
	}
}

// every bus access moves the device clock on by one cycle
func (lb *Loopback) tick() {
	lb.cycles++
}

// ReadWord implements the BusDriver interface.
func (lb *Loopback) ReadWord(offset int) uint32 {
	lb.tick()

	switch offset {
	case RegFunc:
		return lb.fn
	case RegOpA:
		return lb.opa
	case RegOpB:
		return lb.opb
	case RegStatus:
		if lb.remaining > 0 {
			lb.remaining--
			if lb.remaining == 0 {
				lb.status |= StatusDone
			}
		}
		return lb.status
	case RegResult:
		return lb.result
	case RegNumFn:
		return uint32(lb.rt.NumFunctions())
	case RegWidth:
		return 64
	case RegCycLo:
		return uint32(lb.cycles)
	case RegCycHi:
		return uint32(lb.cycles >> 32)
	}

	return 0
}

// WriteWord implements the BusDriver interface.
func (lb *Loopback) WriteWord(offset int, value uint32) {
	lb.tick()

	switch offset {
	case RegFunc:
		lb.fn = value
	case RegOpA:
		lb.opa = value
	case RegOpB:
		lb.opb = value
	case RegCtrl:
		if value&CtrlReset == CtrlReset {
			lb.status = 0
			lb.result = 0
			lb.remaining = 0
			return
		}
		if value&CtrlIssue == CtrlIssue {
			lb.issue()
		}
	}
}

func (lb *Loopback) issue() {
	lb.status &^= StatusDone | StatusFault

	f, err := lb.rt.Lookup(cfu.FunctionID(lb.fn))
	if err != nil {
		// a real unit cannot return an error. it raises its fault line and
		// never asserts done
		lb.status |= StatusFault
		lb.remaining = 0
		return
	}

	cost := f.CycleCost(lb.opa, lb.opb)
	if cost <= 0 {
		cost = lb.latency
	}
	if cost < 1 {
		cost = 1
	}

	lb.result = f.Execute(lb.opa, lb.opb)
	lb.remaining = cost
}

// Close implements the BusDriver interface.
func (lb *Loopback) Close() error {
	return nil
}
