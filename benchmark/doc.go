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

// Package benchmark measures the effect of moving a computation from software
// into a custom function unit.
//
// The unit of work is the Case: two renditions of the same computation, one
// running entirely on the CPU (the baseline) and one making use of the
// function unit (the accelerated rendition). The Runner times both renditions
// against the same system and reports the cycle counts side by side, along
// with the speedup ratio of the accelerated rendition over the baseline.
//
// Cases can be written in Go, as the workload package does, or scripted at
// runtime with a small starlark program loaded with LoadScript().
//
// Results can be written out for people with WriteTable(); for machine
// consumption with WriteRecords(); or as an HTML chart with WriteChart().
// RecordResults() stores results in the benchmark database so that runs can
// be compared across sessions (and across backends).
package benchmark
