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

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/clock"
)

// Sentinal errors for the Regions type.
const (
	MismatchedRegion = "profiling: mismatched region: %s"
)

// Handle identifies an open region. Handles are only meaningful to the
// Regions instance that issued them.
type Handle int

// Region is the record of a closed measurement region.
type Region struct {
	Name  string
	Start clock.Snapshot
	End   clock.Snapshot

	// the number of cycles between the opening and closing of the region.
	// the elapsed count of an enclosing region includes the elapsed counts
	// of every region nested within it
	Elapsed uint64
}

func (reg Region) String() string {
	return fmt.Sprintf("%s: %d cycles", reg.Name, reg.Elapsed)
}

type openRegion struct {
	name   string
	start  clock.Snapshot
	handle Handle
}

// Regions tracks nested measurement regions over a cycle counter. Nesting
// follows a stack discipline. The region closed by End() must always be the
// most recently opened region.
//
// One Regions instance serves one execution context. Instances are not safe
// for concurrent use.
type Regions struct {
	c     clock.Counter
	stack []openRegion
	next  Handle
}

// NewRegions is the preferred method of initialisation for the Regions type.
func NewRegions(c clock.Counter) *Regions {
	return &Regions{c: c}
}

// Begin a new region, nested within any region already open. Every Begin
// must be paired with exactly one End on every exit path.
func (r *Regions) Begin(name string) Handle {
	r.next++
	r.stack = append(r.stack, openRegion{
		name:   name,
		start:  r.c.Now(),
		handle: r.next,
	})
	return r.next
}

// End the region identified by the handle. The handle must belong to the
// most recently opened region. Ending any other region is a mismatch error
// and the nesting stack is left untouched.
func (r *Regions) End(h Handle) (Region, error) {
	if len(r.stack) == 0 {
		return Region{}, curated.Errorf(MismatchedRegion, "end without begin")
	}

	top := r.stack[len(r.stack)-1]
	if top.handle != h {
		return Region{}, curated.Errorf(MismatchedRegion, fmt.Sprintf("end before end of nested region %s", top.name))
	}

	r.stack = r.stack[:len(r.stack)-1]

	end := r.c.Now()
	return Region{
		Name:    top.name,
		Start:   top.start,
		End:     end,
		Elapsed: clock.Elapsed(r.c, top.start, end),
	}, nil
}

// Depth returns the number of regions currently open.
func (r *Regions) Depth() int {
	return len(r.stack)
}

// Measure the execution of a function inside its own region. The region is
// closed on every exit path, including a panicking fn. An error from fn
// takes precedence over any mismatch error from the close.
func (r *Regions) Measure(name string, fn func() error) (reg Region, err error) {
	h := r.Begin(name)

	defer func() {
		var endErr error
		reg, endErr = r.End(h)
		if err == nil {
			err = endErr
		}
	}()

	err = fn()

	return reg, err
}
