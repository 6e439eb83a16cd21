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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal/commandline"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
)

// Debugger is the basic debugger and its connection to the system under
// inspection.
type Debugger struct {
	sys  *hardware.System
	term terminal.Terminal

	// events are monitored by the terminal while it waits for input
	events *terminal.ReadEvents

	// buffer for user input
	input [255]byte

	// the debugging session continues while this is true
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The terminal is not touched until Start().
func NewDebugger(sys *hardware.System, term terminal.Terminal) (*Debugger, error) {
	if sys == nil {
		return nil, curated.Errorf("debugger: no system to inspect")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		sys:  sys,
		term: term,
	}

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(completions()))

	dbg.events = &terminal.ReadEvents{
		IntEvents: make(chan os.Signal, 1),
	}

	return dbg, nil
}

// Start the main debugging loop. The function returns when the user ends
// the session.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	// interrupt signals are relayed to the terminal through the ReadEvents.
	// while a command is executing, rather than the terminal waiting for
	// input, the signal stays in the channel. the RUN command polls for it
	signal.Notify(dbg.events.IntEvents, syscall.SIGINT)
	defer signal.Stop(dbg.events.IntEvents)

	dbg.printLine(terminal.StyleFeedback, "%s backend with %d functions. %s for the command list",
		dbg.sys.Backend.BackendID(), dbg.sys.Backend.NumFunctions(), KeywordHelp)

	dbg.running = true
	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		n, err := dbg.term.TermRead(dbg.input[:], dbg.buildPrompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.confirmQuit()
				continue
			}
			if errors.Is(err, io.EOF) {
				// the end of piped input ends the session
				dbg.running = false
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseInput(string(dbg.input[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// buildPrompt composes the prompt from the current counter value and the
// dispatch status.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	s := strings.Builder{}
	s.WriteString(dbg.counterString())
	s.WriteString(" ")
	s.WriteString(dbg.sys.Dispatcher.Status().String())

	p := terminal.Prompt{
		Content: s.String(),
		Type:    terminal.PromptTypeStep,
	}
	if dbg.sys.Dispatcher.Status() != cfu.Idle {
		p.Type = terminal.PromptTypeRun
	}

	return p
}

// counterString formats the counter value to the width of the counter.
func (dbg *Debugger) counterString() string {
	c := dbg.sys.Backend.Counter()
	return fmt.Sprintf("%0*x", int(c.Width())/4, uint64(c.Now()))
}

// confirmQuit is called when the user has interrupted the session. The
// session ends only on confirmation.
func (dbg *Debugger) confirmQuit() {
	confirm := make([]byte, 32)

	prompt := terminal.Prompt{
		Content: "really quit (y/n) ",
		Type:    terminal.PromptTypeConfirm,
	}
	if _, ok := dbg.sys.Dispatcher.Pending(); ok {
		prompt.Content = "really quit, abandoning the invocation in flight (y/n) "
	}

	n, err := dbg.term.TermRead(confirm, prompt, dbg.events)
	if err != nil {
		// a second interrupt while we were asking is a firm yes
		dbg.running = false
		return
	}

	if n > 0 && strings.EqualFold(strings.TrimSpace(string(confirm[:n])), "y") {
		dbg.running = false
	}
}
