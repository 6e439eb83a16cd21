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

package cfu

// Status describes the progress of an invocation through the dispatch
// protocol.
type Status int

// List of valid Status values. A dispatcher with no outstanding invocation
// is Idle.
const (
	Idle Status = iota
	Issued
	Busy
	Done
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Issued:
		return "issued"
	case Busy:
		return "busy"
	case Done:
		return "done"
	}

	panic("unknown dispatch status")
}
