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

// Byte offsets of the unit's registers within the mapped window.
const (
	RegFunc   = 0x00
	RegOpA    = 0x04
	RegOpB    = 0x08
	RegCtrl   = 0x0c
	RegStatus = 0x10
	RegResult = 0x14
	RegNumFn  = 0x18
	RegWidth  = 0x1c
	RegCycLo  = 0x20
	RegCycHi  = 0x24
)

// WindowSize is the extent of the register window in bytes.
const WindowSize = 0x28

// Bits of the CTRL register. The register is write only. The issue bit
// latches the staged descriptor and begins computation. The reset bit
// abandons any computation in progress.
const (
	CtrlIssue = 0x01
	CtrlReset = 0x02
)

// Bits of the STATUS register. The fault bit indicates a descriptor the unit
// could not route. A faulted unit never asserts done.
const (
	StatusDone  = 0x01
	StatusFault = 0x02
)
