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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package, taking a formatting pattern and placeholder
// values, and returning an error.
//
// The pattern string doubles as the identity of the error. The Is() function
// checks whether an error was created with a specific pattern:
//
//	err := curated.Errorf(cfu.ProtocolViolation, "issue")
//
//	if curated.Is(err, cfu.ProtocolViolation) {
//		fmt.Println("protocol error")
//	}
//
// By convention, patterns that are tested for in this way are declared as
// const strings in the package that creates the error.
//
// The Has() function is similar to Is() but checks for the pattern anywhere in
// the error chain, not just at the head. The IsAny() function answers whether
// the error is curated at all; an uncurated error is one that has come from
// outside of the project and which probably indicates a genuinely unexpected
// condition.
package curated
