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

package debugger

import (
	"strings"
)

// tokens is a scanner over the whitespace separated parts of a command.
type tokens struct {
	parts []string
	idx   int
}

func tokeniseInput(input string) *tokens {
	return &tokens{parts: strings.Fields(input)}
}

// Get returns the next token and advances the scanner. The second return
// value is false when the tokens have been exhausted.
func (tk *tokens) Get() (string, bool) {
	if tk.idx >= len(tk.parts) {
		return "", false
	}
	s := tk.parts[tk.idx]
	tk.idx++
	return s, true
}
