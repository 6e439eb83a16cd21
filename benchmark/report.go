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

package benchmark

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// speedup as it appears in tables and records. the ratio is undefined when
// the accelerated rendition took no cycles at all.
func speedupString(r Result) string {
	s, ok := r.Speedup()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", s)
}

// WriteTable writes results in a human readable form: one row per case, in
// the order the cases were run.
func WriteTable(output io.Writer, results []Result) error {
	w := tabwriter.NewWriter(output, 0, 0, 3, ' ', 0)

	fmt.Fprintf(w, "case\tbaseline\taccelerated\tspeedup\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.CaseName, r.BaselineCycles, r.AcceleratedCycles, speedupString(r))
	}

	return w.Flush()
}

// WriteRecords writes results in a machine readable form: one record per
// line, fields in a fixed order, comma separated.
//
//	name,baseline,accelerated,speedup
//
// Records appear in the order the cases were run.
func WriteRecords(output io.Writer, results []Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(output, "%s,%d,%d,%s\n", r.CaseName, r.BaselineCycles, r.AcceleratedCycles, speedupString(r))
		if err != nil {
			return err
		}
	}
	return nil
}
