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

// Package workload provides the stock functions and benchmark cases for the
// harness: bit reversal, population count and multiply-accumulate.
//
// Each case processes the same randomly drawn input data through a software
// rendition and through the function unit, verifying with a digest that the
// two renditions agree. The software renditions perform the computation for
// real; the cycle cost of each step is modelled with Elapse().
//
// The stock functions are deliberately small. They are the kind of bit level
// operation that is awkward on a simple CPU and trivial in gateware, which
// makes them good probes for the dispatch overhead of the unit itself.
package workload
