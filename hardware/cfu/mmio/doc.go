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

// Package mmio drives a custom function unit attached to the system as a
// memory mapped register window. The register map is fixed:
//
//	0x00  FUNC    function selector
//	0x04  OPA     operand a
//	0x08  OPB     operand b
//	0x0c  CTRL    bit 0 issue, bit 1 reset (write only)
//	0x10  STATUS  bit 0 done, bit 1 fault (read only)
//	0x14  RESULT  result word (read only)
//	0x18  NUMFN   number of routed functions (read only)
//	0x1c  WIDTH   cycle counter width in bits (read only)
//	0x20  CYCLO   cycle counter, low word (read only)
//	0x24  CYCHI   cycle counter, high word (read only)
//
// An invocation stages FUNC, OPA and OPB, pulses the issue bit of CTRL and
// polls STATUS until the done bit asserts. RESULT is then valid until the
// next issue. The cycle counter is free-running and is read low word first
// with a high word consistency check.
//
// Access to the window is through the BusDriver interface. The UIO type maps
// a real device node (a UIO or devmem path on linux). The Loopback type is a
// software model of the register file for use in tests and on machines with
// no device attached.
package mmio
