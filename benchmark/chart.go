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
	"os"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Sentinal errors.
const (
	// ChartError is returned when the HTML chart cannot be written.
	ChartError = "benchmark: chart: %v"
)

// WriteChart renders results as a bar chart of speedup ratios, written as an
// HTML page to the named file. Cases with an undefined speedup are charted
// with a value of zero.
func WriteChart(path string, results []Result) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "cfubench",
			Subtitle: "speedup by case (higher is better)",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "speedup",
		}),
	)

	names := make([]string, 0, len(results))
	data := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		s, _ := r.Speedup()
		names = append(names, r.CaseName)
		data = append(data, opts.BarData{Value: s})
	}
	bar.SetXAxis(names).AddSeries("speedup", data)

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(ChartError, err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return curated.Errorf(ChartError, err)
	}

	return nil
}
