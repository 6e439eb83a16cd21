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

package profiling

import (
	"fmt"
	"io"
	"sort"
)

// ProfileEntry is the accumulated cost of one function of the custom
// function unit.
type ProfileEntry struct {
	Calls  int
	Cycles uint64
}

// CycleProfile attributes completed cycles to the individual functions of
// the custom function unit, keyed by function id. The zero total profile
// prints nothing.
type CycleProfile struct {
	entries map[uint32]*ProfileEntry
}

// NewCycleProfile is the preferred method of initialisation for the
// CycleProfile type.
func NewCycleProfile() *CycleProfile {
	return &CycleProfile{
		entries: make(map[uint32]*ProfileEntry),
	}
}

// Add the cycle count of one completed invocation to the named function's
// entry.
func (p *CycleProfile) Add(id uint32, cycles uint64) {
	e, ok := p.entries[id]
	if !ok {
		e = &ProfileEntry{}
		p.entries[id] = e
	}
	e.Calls++
	e.Cycles += cycles
}

// Reset the profile to empty.
func (p *CycleProfile) Reset() {
	p.entries = make(map[uint32]*ProfileEntry)
}

// Entry returns the accumulated cost of the named function. The second
// return value is false if the function has never completed an invocation.
func (p *CycleProfile) Entry(id uint32) (ProfileEntry, bool) {
	e, ok := p.entries[id]
	if !ok {
		return ProfileEntry{}, false
	}
	return *e, true
}

// TotalCycles accumulated over all functions.
func (p *CycleProfile) TotalCycles() uint64 {
	var t uint64
	for _, e := range p.entries {
		t += e.Cycles
	}
	return t
}

// Write the profile in function id order, one function per line, with each
// function's share of the total.
func (p *CycleProfile) Write(output io.Writer) {
	if len(p.entries) == 0 {
		return
	}

	ids := make([]int, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	total := p.TotalCycles()

	for _, id := range ids {
		e := p.entries[uint32(id)]
		share := 0.0
		if total > 0 {
			share = float64(e.Cycles) / float64(total) * 100
		}
		output.Write([]byte(fmt.Sprintf("fn %02d: %d calls, %d cycles (%.1f%%)\n", id, e.Calls, e.Cycles, share)))
	}
}
