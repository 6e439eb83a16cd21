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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the main type for the easyterm package. Usually embedded in
// another type, as it is in the colorterm package.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// terminal attributes for each of the modes the terminal can be put
	// into. canAttr is a copy of the attributes in effect when Initialise()
	// was called.
	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// geometry is updated from the signal handler goroutine so access is
	// protected with the critical section mutex
	crit     sync.Mutex
	geometry unix.Winsize

	// sig/ack channels to control the signal handler goroutine
	endHandlerSig chan bool
	endHandlerAck chan bool
}

// Initialise the fields in the EasyTerm struct. The attributes of the input
// terminal are recorded so that CanonicalMode() can restore them.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: an input file is required")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: an output file is required")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be
	// using. raw and cbreak attributes are derived from the current
	// attributes rather than from empty instances, meaning that settings not
	// touched by Cfmakeraw()/Cfmakecbreak() survive the mode change.
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.rawAttr = et.canAttr
	et.cbreakAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)
	termios.Cfmakecbreak(&et.cbreakAttr)

	// prime geometry information before the signal handler takes over
	_ = et.UpdateGeometry()

	// set up sig/ack channels for the signal handler
	et.endHandlerSig = make(chan bool)
	et.endHandlerAck = make(chan bool)

	// kickstart signal handler. geometry is updated whenever the window
	// size changes
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.endHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.endHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (et *EasyTerm) CleanUp() {
	et.endHandlerSig <- true
	<-et.endHandlerAck
}

// TermPrint writes the formatted string to the output file without any
// buffering.
func (et *EasyTerm) TermPrint(s string, a ...any) {
	_, _ = et.output.WriteString(fmt.Sprintf(s, a...))
	_ = et.output.Sync()
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	et.crit.Lock()
	defer et.crit.Unlock()

	w, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.geometry = *w

	return nil
}

// Geometry returns the dimensions, in characters, of the output terminal.
func (et *EasyTerm) Geometry() (int, int) {
	et.crit.Lock()
	defer et.crit.Unlock()
	return int(et.geometry.Col), int(et.geometry.Row)
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
