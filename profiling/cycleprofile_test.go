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

package profiling_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/profiling"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

func TestCycleProfile(t *testing.T) {
	p := profiling.NewCycleProfile()

	// empty profile writes nothing
	w := &test.CompareWriter{}
	p.Write(w)
	test.ExpectSuccess(t, w.Compare(""))

	p.Add(0, 16)
	p.Add(0, 32)
	p.Add(1, 2)

	e, ok := p.Entry(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Calls, 2)
	test.ExpectEquality(t, e.Cycles, 48)

	_, ok = p.Entry(2)
	test.ExpectInequality(t, ok, true)

	test.ExpectEquality(t, p.TotalCycles(), 50)

	w.Clear()
	p.Write(w)
	test.ExpectSuccess(t, w.Compare("fn 00: 2 calls, 48 cycles (96.0%)\nfn 01: 1 calls, 2 cycles (4.0%)\n"))

	p.Reset()
	test.ExpectEquality(t, p.TotalCycles(), 0)
}
