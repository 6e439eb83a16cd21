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
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/debugger/terminal/commandline"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/hardware/cfu"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/logger"
)

// debugger keywords.
const (
	KeywordStep     = "STEP"
	KeywordIssue    = "ISSUE"
	KeywordRun      = "RUN"
	KeywordResult   = "RESULT"
	KeywordStatus   = "STATUS"
	KeywordCounter  = "COUNTER"
	KeywordRegions  = "REGIONS"
	KeywordReset    = "RESET"
	KeywordWatchdog = "WATCHDOG"
	KeywordDump     = "DUMP"
	KeywordLast     = "LAST"
	KeywordLog      = "LOG"
	KeywordHelp     = "HELP"
	KeywordQuit     = "QUIT"
)

// Help text for the debugger commands.
var Help = map[string]string{
	KeywordStep:     "step the substrate one cycle, or the number of cycles given",
	KeywordIssue:    "issue an invocation: ISSUE <function> <operand a> [operand b]",
	KeywordRun:      "step until the invocation in flight is done",
	KeywordResult:   "read the result word of a done invocation",
	KeywordStatus:   "show the state of the dispatch protocol",
	KeywordCounter:  "show the substrate's cycle counter",
	KeywordRegions:  "show the cycle attribution for each function",
	KeywordReset:    "reset the unit, abandoning the invocation in flight",
	KeywordWatchdog: "show or set the watchdog bound: WATCHDOG [cycles]",
	KeywordDump:     "write a graphviz dump of the live system to a file: DUMP [file]",
	KeywordLast:     "show the details of the last completed invocation",
	KeywordLog:      "show the most recent log entries",
	KeywordHelp:     "list the debugger commands",
	KeywordQuit:     "end the debugging session",
}

// the default filename for the DUMP command.
const dumpFilename = "system.dot"

// completions creates the table used for tab completion. Only the HELP
// command takes a keyword argument.
func completions() commandline.Commands {
	commands := make(commandline.Commands, len(Help))
	for k := range Help {
		commands[k] = nil
	}
	commands[KeywordHelp] = commands.Keywords()
	return commands
}

// parseInput splits the input into individual commands on the ";"
// separator and runs each in turn.
func (dbg *Debugger) parseInput(input string) error {
	for _, cmd := range strings.Split(input, ";") {
		err := dbg.parseCommand(cmd)
		if err != nil {
			return err
		}
	}
	return nil
}

// parseCommand tokenises a single command and acts on it. An empty command
// steps the substrate one cycle.
func (dbg *Debugger) parseCommand(input string) error {
	tk := tokeniseInput(input)

	command, ok := tk.Get()
	if !ok {
		return dbg.stepCommand(1)
	}

	switch strings.ToUpper(command) {
	case KeywordStep:
		n := 1
		if arg, ok := tk.Get(); ok {
			var err error
			n, err = strconv.Atoi(arg)
			if err != nil || n < 1 {
				return fmt.Errorf("not a step count (%s)", arg)
			}
		}
		return dbg.stepCommand(n)

	case KeywordIssue:
		desc, err := parseDescriptor(tk)
		if err != nil {
			return err
		}
		err = dbg.sys.Dispatcher.Issue(desc)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "issued: %s", desc)

	case KeywordRun:
		return dbg.runCommand()

	case KeywordResult:
		v, err := dbg.sys.Dispatcher.ReadResult()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "result: %#08x", v)

	case KeywordStatus:
		s := strings.Builder{}
		s.WriteString(dbg.sys.Dispatcher.Status().String())
		if desc, ok := dbg.sys.Dispatcher.Pending(); ok {
			s.WriteString(fmt.Sprintf(": %s", desc))
		}
		dbg.printLine(terminal.StyleInstrument, s.String())

	case KeywordCounter:
		c := dbg.sys.Backend.Counter()
		dbg.printLine(terminal.StyleInstrument, "%s (%d-bit counter)", dbg.counterString(), c.Width())

	case KeywordRegions:
		dbg.printSection(terminal.StyleInstrument, dbg.sys.Dispatcher.Profile().Write)

	case KeywordReset:
		err := dbg.sys.Reset()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "unit reset")

	case KeywordWatchdog:
		return dbg.watchdogCommand(tk)

	case KeywordDump:
		filename := dumpFilename
		if arg, ok := tk.Get(); ok {
			filename = arg
		}
		return dbg.dumpCommand(filename)

	case KeywordLast:
		inv, ok := dbg.sys.Dispatcher.LastInvocation()
		if !ok {
			return fmt.Errorf("no invocation has completed yet")
		}
		dbg.printLine(terminal.StyleInstrument, "%s", inv)

	case KeywordLog:
		dbg.printSection(terminal.StyleLog, func(output io.Writer) {
			logger.Tail(output, 10)
		})

	case KeywordHelp:
		dbg.helpCommand(tk)

	case KeywordQuit:
		dbg.running = false

	default:
		return fmt.Errorf("%s is not a debugging command", command)
	}

	return nil
}

// stepCommand advances the substrate, reporting the protocol state after
// every cycle.
func (dbg *Debugger) stepCommand(cycles int) error {
	for i := 0; i < cycles; i++ {
		err := dbg.sys.Step()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleDispatchStep, "%s", dbg.stepReport())
	}
	return nil
}

// stepReport summarises the substrate state after a step.
func (dbg *Debugger) stepReport() string {
	s := strings.Builder{}
	s.WriteString(dbg.counterString())
	s.WriteString(" ")
	s.WriteString(dbg.sys.Dispatcher.Status().String())
	if desc, ok := dbg.sys.Dispatcher.Pending(); ok {
		s.WriteString(fmt.Sprintf(" %s", desc))
	}
	return s.String()
}

// runCommand steps the substrate until the invocation in flight is done, an
// error occurs, or the user interrupts the run.
func (dbg *Debugger) runCommand() error {
	switch dbg.sys.Dispatcher.Status() {
	case cfu.Idle:
		return fmt.Errorf("nothing in flight. %s an invocation first", KeywordIssue)
	case cfu.Done:
		dbg.printLine(terminal.StyleFeedback, "already done. read it with %s", KeywordResult)
		return nil
	}

	err := dbg.sys.Run(func() (bool, error) {
		// a ctrl-c during the run stops the run, not the session
		select {
		case <-dbg.events.IntEvents:
			return false, nil
		default:
		}
		return !dbg.sys.Dispatcher.Done(), nil
	})
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleDispatchStep, "%s", dbg.stepReport())
	return nil
}

// watchdogCommand shows the watchdog bound or, with an argument, sets it.
// The new bound applies from the next issue. A bound of zero disables the
// watchdog.
func (dbg *Debugger) watchdogCommand(tk *tokens) error {
	arg, ok := tk.Get()
	if !ok {
		w := dbg.sys.Env.Prefs.Watchdog.Get().(int)
		if w == 0 {
			dbg.printLine(terminal.StyleInstrument, "watchdog disabled")
		} else {
			dbg.printLine(terminal.StyleInstrument, "watchdog after %d cycles", w)
		}
		return nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return fmt.Errorf("not a watchdog bound (%s)", arg)
	}

	err = dbg.sys.Env.Prefs.Watchdog.Set(n)
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "watchdog bound set. it applies from the next %s", KeywordIssue)
	return nil
}

// dumpCommand writes a graphviz visualisation of the live System to a
// file. Render it with, for example:
//
//	dot -Tsvg system.dot -o system.svg
func (dbg *Debugger) dumpCommand(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	memviz.Map(f, dbg.sys)

	err = f.Close()
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	dbg.printLine(terminal.StyleFeedback, "system graph written to %s", filename)
	return nil
}

// helpCommand prints the help text for a single command or, with no
// argument, for every command.
func (dbg *Debugger) helpCommand(tk *tokens) {
	if arg, ok := tk.Get(); ok {
		keyword := strings.ToUpper(arg)
		txt, ok := Help[keyword]
		if !ok {
			dbg.printLine(terminal.StyleError, "no help for %s", arg)
			return
		}
		dbg.printLine(terminal.StyleHelp, "%s: %s", keyword, txt)
		return
	}

	keywords := make([]string, 0, len(Help))
	for k := range Help {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	for _, k := range keywords {
		dbg.printLine(terminal.StyleHelp, "%-10s %s", k, Help[k])
	}
}

// parseDescriptor reads a function id and up to two operands from the
// remaining tokens. Numbers are parsed in the bases understood by
// strconv.ParseUint, most usefully decimal and "0x" prefixed hexadecimal.
func parseDescriptor(tk *tokens) (cfu.Descriptor, error) {
	arg, ok := tk.Get()
	if !ok {
		return cfu.Descriptor{}, fmt.Errorf("%s requires a function id", KeywordIssue)
	}
	fn, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return cfu.Descriptor{}, fmt.Errorf("not a function id (%s)", arg)
	}

	desc := cfu.Descriptor{Function: cfu.FunctionID(fn)}

	arg, ok = tk.Get()
	if !ok {
		return cfu.Descriptor{}, fmt.Errorf("%s requires at least one operand", KeywordIssue)
	}
	a, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return cfu.Descriptor{}, fmt.Errorf("not an operand (%s)", arg)
	}
	desc.OperandA = uint32(a)

	if arg, ok = tk.Get(); ok {
		b, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return cfu.Descriptor{}, fmt.Errorf("not an operand (%s)", arg)
		}
		desc.OperandB = uint32(b)
	}

	return desc, nil
}
