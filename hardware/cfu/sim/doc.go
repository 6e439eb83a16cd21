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

// Package sim is the simulated substrate for the custom function unit. The
// unit's timing is a declared model rather than a property of real silicon,
// which makes the backend exact, repeatable and suitable for tests and CI
// runs on machines with no accelerator attached.
//
// A latched function occupies the unit for the number of cycles declared by
// its CycleCost() function. Functions that declare no cost of their own take
// the default latency from the hardware preferences. The optional jitter
// model adds a small counter-seeded variation to every cost, standing in for
// the cycle-level noise of attached hardware while keeping runs reproducible.
//
// The simulated cycle counter only advances when the substrate is stepped.
// CPU-side work must be declared to the backend through Elapse().
package sim
