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

// Package profiling measures where cycles go.
//
// The Regions type provides nestable measurement regions over a cycle
// counter. A region is opened with Begin() and closed with End(). Regions
// close in strict reverse order of opening. Closing them in any other order
// is an error, never silently tolerated, because a mismatched close would
// desynchronise every measurement that follows. The Measure() function wraps
// a function call in a region and guarantees the close on every exit path.
//
// The CycleProfile type attributes completed cycles to individual functions
// of the custom function unit. It is accumulated by the dispatcher and
// reported at the end of a benchmark run.
//
// The ProfileCPU and ProfileMem functions are conveniences for running the
// Go profiler alongside a benchmark.
package profiling
