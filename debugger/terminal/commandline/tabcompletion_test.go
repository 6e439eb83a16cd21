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

package commandline_test

import (
	"testing"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal/commandline"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/test"
)

func TestCompletion(t *testing.T) {
	commands := commandline.Commands{
		"STEP":   nil,
		"STATUS": nil,
		"RESET":  nil,
		"HELP":   []string{"RESET", "STATUS", "STEP"},
	}
	tc := commandline.NewTabCompletion(commands)

	// unambiguous completion. the completed word is left in upper case and
	// followed by a space, ready for an argument
	test.ExpectEquality(t, tc.Complete("re"), "RESET ")

	// repeating a completion with a single option changes nothing
	test.ExpectEquality(t, tc.Complete("RESET "), "RESET ")

	// ambiguous completion formed from the first option in alphabetical
	// order. repeated attempts cycle through the other options and wrap
	// around
	test.ExpectEquality(t, tc.Complete("st"), "STATUS ")
	test.ExpectEquality(t, tc.Complete("STATUS "), "STEP ")
	test.ExpectEquality(t, tc.Complete("STEP "), "STATUS ")

	// completion of a keyword argument. the words already on the line are
	// left untouched
	test.ExpectEquality(t, tc.Complete("help st"), "help STATUS ")

	// no candidates leaves the input unchanged
	test.ExpectEquality(t, tc.Complete("xyz"), "xyz")

	// a word followed by a space is finished. there is nothing to complete
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("STEP "), "STEP ")

	// empty input
	test.ExpectEquality(t, tc.Complete(""), "")
}
