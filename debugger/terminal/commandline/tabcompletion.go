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

package commandline

import (
	"strings"
	"time"
)

// the time allowed between completion attempts for the second attempt to be
// treated as part of the same completion session.
const cycleDuration = 500 * time.Millisecond

// TabCompletion keeps track of the most recent tab completion attempt.
// Repeated attempts within cycleDuration cycle through the available
// options.
type TabCompletion struct {
	commands Commands

	// keywords are sorted so that cycling visits the options in a stable
	// order
	keywords []string

	options    []string
	lastOption int

	// lastGuess is the last string returned by Complete(). used to decide
	// whether the current attempt is a continuation of the last one
	lastGuess string
	lastTime  time.Time
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(commands Commands) *TabCompletion {
	tc := &TabCompletion{
		commands: commands,
		keywords: commands.Keywords(),
	}
	tc.options = make([]string, 0, len(tc.keywords))
	return tc
}

// Complete transforms the input such that the last word is expanded to the
// closest match among the registered commands. Repeated calls with the
// returned string cycle through the possible expansions.
func (tc *TabCompletion) Complete(input string) string {
	p := strings.Fields(input)
	if len(p) == 0 {
		return input
	}

	if input == tc.lastGuess && time.Since(tc.lastTime) < cycleDuration {
		// the input is the string we returned last time. cycle to the next
		// option, removing the previous completion effort from the input
		if len(tc.options) <= 1 {
			return input
		}

		p = p[:len(p)-1]
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		// a trailing space means the last word is finished. there is
		// nothing to complete
		if strings.HasSuffix(input, " ") {
			return input
		}

		// this is a new completion session
		tc.options = tc.options[:0]
		tc.lastOption = 0

		// trigger is the word we're trying to complete. the first word of
		// the input completes to a command keyword, subsequent words
		// complete to the keyword arguments of that command
		trigger := strings.ToUpper(p[len(p)-1])
		p = p[:len(p)-1]

		candidates := tc.keywords
		if len(p) > 0 {
			candidates = tc.commands[strings.ToUpper(p[0])]
		}

		for _, k := range candidates {
			if strings.HasPrefix(k, trigger) {
				tc.options = append(tc.options, k)
			}
		}

		if len(tc.options) == 0 {
			return input
		}
	}

	// add the guessed word to the end of the input and rejoin to form the
	// output
	p = append(p, tc.options[tc.lastOption])
	tc.lastGuess = strings.Join(p, " ") + " "
	tc.lastTime = time.Now()

	return tc.lastGuess
}

// Reset forgets the current completion session.
func (tc *TabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.lastOption = 0
	tc.lastGuess = ""
}
