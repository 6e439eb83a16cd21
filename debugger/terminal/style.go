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

package terminal

// Style is used to identify the category of text being sent to the
// Output.TermPrintLine() function. The terminal implementation is free to
// interpret the style however is appropriate, including ignoring it.
type Style int

// List of terminal styles.
const (
	// the prompt ahead of a period of user input
	StylePromptStep Style = iota
	StylePromptRun
	StylePromptConfirm

	// non-error responses to a command
	StyleFeedback

	// help text
	StyleHelp

	// the result of a single dispatch step
	StyleDispatchStep

	// information read from the hardware. counter values, dispatch results,
	// profiles
	StyleInstrument

	// lines replayed from the log
	StyleLog

	// error messages
	StyleError
)

// IsPrompt returns true if the style is one of the prompt styles. Prompts
// are not terminated with a newline.
func (sty Style) IsPrompt() bool {
	switch sty {
	case StylePromptStep, StylePromptRun, StylePromptConfirm:
		return true
	}
	return false
}
