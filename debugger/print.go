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
	"fmt"
	"io"
	"strings"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal"
)

// printLine sends the formatted string to the attached terminal.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) == 0 {
		dbg.term.TermPrintLine(sty, s)
		return
	}
	dbg.term.TermPrintLine(sty, fmt.Sprintf(s, a...))
}

// printSection relays the output of the supplied function to the terminal,
// one TermPrintLine per line. Functions that write nothing produce a
// placeholder instead.
func (dbg *Debugger) printSection(sty terminal.Style, f func(io.Writer)) {
	b := &strings.Builder{}
	f(b)

	if b.Len() == 0 {
		dbg.printLine(terminal.StyleFeedback, "nothing to show")
		return
	}

	for _, l := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}
