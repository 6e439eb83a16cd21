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

// Package debugger is an interactive shell around a hardware.System. It
// walks invocations through the dispatch protocol one cycle at a time,
// which is the view of the machine you want when a function unit
// misbehaves.
//
// The debugging session is started with Start(), which blocks until the
// user quits. Commands arrive through an implementation of the
// terminal.Terminal interface, allowing the same debugger to run against a
// dumb pipe (the plainterm package) or a full ANSI terminal (the colorterm
// package).
//
// An empty command steps the substrate by one cycle. The full command list
// is in the Help map.
package debugger
