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

package benchmark_test

import (
	"strings"
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/benchmark"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

func TestRecordAndList(t *testing.T) {
	t.Chdir(t.TempDir())

	results := []benchmark.Result{
		{CaseName: "bitrev", BaselineCycles: 3200, AcceleratedCycles: 320},
		{CaseName: "popcount", BaselineCycles: 1500, AcceleratedCycles: 300},
	}

	err := benchmark.RecordResults("sim", results)
	test.DemandSuccess(t, err)

	output := &test.CompareWriter{}
	err = benchmark.ListResults(output)
	test.ExpectSuccess(t, err)

	s := output.String()
	test.ExpectSuccess(t, strings.Contains(s, "[sim] "))
	test.ExpectSuccess(t, strings.Contains(s, "bitrev: 3200/320 cycles (speedup 10.00)"))
	test.ExpectSuccess(t, strings.Contains(s, "popcount: 1500/300 cycles (speedup 5.00)"))
	test.ExpectSuccess(t, strings.Contains(s, "Total: 2"))
}

func TestRecordAcrossRuns(t *testing.T) {
	t.Chdir(t.TempDir())

	err := benchmark.RecordResults("sim", []benchmark.Result{
		{CaseName: "mac", BaselineCycles: 800, AcceleratedCycles: 240},
	})
	test.DemandSuccess(t, err)

	// a second run appends to the database rather than replacing it
	err = benchmark.RecordResults("mmio", []benchmark.Result{
		{CaseName: "mac", BaselineCycles: 800, AcceleratedCycles: 260},
	})
	test.DemandSuccess(t, err)

	output := &test.CompareWriter{}
	err = benchmark.ListResults(output)
	test.ExpectSuccess(t, err)

	s := output.String()
	test.ExpectSuccess(t, strings.Contains(s, "[sim] "))
	test.ExpectSuccess(t, strings.Contains(s, "[mmio] "))
	test.ExpectSuccess(t, strings.Contains(s, "Total: 2"))
}

func TestDeleteResults(t *testing.T) {
	t.Chdir(t.TempDir())

	err := benchmark.RecordResults("sim", []benchmark.Result{
		{CaseName: "mac", BaselineCycles: 800, AcceleratedCycles: 240},
	})
	test.DemandSuccess(t, err)

	// declining the confirmation leaves the entry in place
	output := &test.CompareWriter{}
	err = benchmark.DeleteResults(output, strings.NewReader("n\n"), "0")
	test.ExpectSuccess(t, err)

	output.Clear()
	err = benchmark.ListResults(output)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(output.String(), "Total: 1"))

	// accepting the confirmation deletes the entry
	output.Clear()
	err = benchmark.DeleteResults(output, strings.NewReader("y\n"), "0")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(output.String(), "deleted entry #0"))

	output.Clear()
	err = benchmark.ListResults(output)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(output.String(), "database is empty"))
}

func TestDeleteBadKey(t *testing.T) {
	t.Chdir(t.TempDir())

	err := benchmark.RecordResults("sim", []benchmark.Result{
		{CaseName: "mac", BaselineCycles: 800, AcceleratedCycles: 240},
	})
	test.DemandSuccess(t, err)

	output := &test.CompareWriter{}
	err = benchmark.DeleteResults(output, strings.NewReader("y\n"), "not a key")
	test.ExpectFailure(t, err)

	// a key that isn't in the database
	err = benchmark.DeleteResults(output, strings.NewReader("y\n"), "99")
	test.ExpectFailure(t, err)
}
