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

import (
	"strings"
)

// Prompt specifies the prompt text and the prompt type.
type Prompt struct {
	Type PromptType

	// the content of the prompt
	Content string
}

// PromptType identifies the state the debugger is in when asking for input.
type PromptType int

// List of prompt types. PromptTypeRun is used when an invocation is in
// flight.
const (
	PromptTypeStep PromptType = iota
	PromptTypeRun
	PromptTypeConfirm
)

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	if p.Type == PromptTypeConfirm {
		return p.Content
	}

	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")

	switch p.Type {
	case PromptTypeStep:
		s.WriteString(" >> ")
	case PromptTypeRun:
		s.WriteString(" > ")
	}

	return s.String()
}

// Style returns the terminal style that corresponds to the prompt type.
func (p Prompt) Style() Style {
	switch p.Type {
	case PromptTypeRun:
		return StylePromptRun
	case PromptTypeConfirm:
		return StylePromptConfirm
	}
	return StylePromptStep
}
