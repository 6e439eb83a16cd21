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

//go:build !windows

package colorterm

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal/colorterm/easyterm"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user
	// wants to resume where they left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	promptStr := prompt.String()

	// the method for cursor placement is as follows:
	//
	//	for each iteration of the loop
	//	 1. store the current cursor position
	//	 2. clear the current line
	//	 3. output the prompt
	//	 4. output the input buffer
	//	 5. restore the cursor position
	//
	// for this to work the cursor must first be placed at the end of the
	// prompt
	ct.EasyTerm.TermPrint("\r%s", ansi.CursorMove(len(promptStr)))

	for {
		// the echo of the input buffer is clipped to the width of the
		// terminal. a wrapped line would break the cursor arithmetic
		echo := input[:n]
		if w, _ := ct.Geometry(); w > 0 {
			if m := w - len(promptStr) - 1; m >= 0 && m < n {
				echo = input[:m]
			}
		}

		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(prompt.Style(), fmt.Sprintf("%s%s", ansi.ClearLine, promptStr))
		ct.EasyTerm.TermPrint(string(echo))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		// the interrupt signal may have fired while we were waiting for a
		// keypress
		if events != nil {
			select {
			case <-events.IntEvents:
				ct.EasyTerm.TermPrint("\n")
				return 0, curated.Errorf(terminal.UserInterrupt)
			default:
			}
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		// a keypress other than tab ends the current completion session
		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in length between the new input and the
				// old input
				d := len(s) - cursor

				if n+d <= len(input) {
					// append everything after the cursor to the new string
					// and copy into the input buffer
					s += string(input[cursor:n])
					copy(input, []byte(s))

					// advance cursor to the end of the completed word
					ct.EasyTerm.TermPrint(ansi.CursorMove(d))
					cursor += d
					n += d
				}
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return n, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			// the terminal must be in canonical mode before the process is
			// stopped. raw mode is restored when the process resumes
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			// add a new history entry unless the input is empty or the same
			// as the most recent entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				newEntry = !bytes.Equal(ct.commandHistory[len(ct.commandHistory)-1].input, input[:n])
			}
			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			switch r {
			case easyterm.EscCursor:
				// CURSOR KEY
				r, _, err := ct.reader.ReadRune()
				if err != nil {
					return n, err
				}

				switch r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for possible
						// later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscDelete:
					// DELETE the character under the cursor
					if cursor < n {
						copy(input[cursor:], input[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDel:
			// BACKSPACE
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m <= len(input) {
					ct.EasyTerm.TermPrint("%c", r)
					copy(input[cursor+m:], input[cursor:])
					copy(input[cursor:], er[:m])
					cursor += m
					n += m
					history = len(ct.commandHistory)
				}
			}
		}
	}
}
