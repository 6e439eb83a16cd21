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

// Package commandline provides tab completion for a set of debugger
// commands. The TabCompletion type implements the terminal.TabCompletion
// interface.
package commandline

import (
	"sort"
)

// Commands is the set of commands that can be tab completed. The map value
// lists the keyword arguments that can follow the command, if any. Numeric
// and filename arguments cannot be completed and are not listed.
type Commands map[string][]string

// Keywords returns the command keywords in alphabetical order.
func (cmds Commands) Keywords() []string {
	k := make([]string, 0, len(cmds))
	for c := range cmds {
		k = append(k, c)
	}
	sort.Strings(k)
	return k
}
