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

// Package hardware is the base package for the machine being measured. It
// and its sub-packages contain everything required to drive a custom
// function unit: the dispatch protocol, the substrate backends and the
// cycle counter.
//
// The System type is the root of the machine and contains external
// references to all the sub-systems. From here, the substrate can either be
// run continuously (with a callback to check for continuation) or stepped
// cycle by cycle.
package hardware
