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

// Package ansi defines ANSI control codes for styling terminal output.
// The sequence tables are built during package initialisation and are
// intended to be used directly.
//
//	fmt.Print(ansi.Pens["red"], "error", ansi.NormalPen)
//
// Only terminals that understand ANSI escape sequences should be fed
// from these tables. The colorterm package checks for a tty before
// making use of the package.
package ansi

import (
	"fmt"
	"strings"
)

// the SGR parameters for the eight base colors. the order is defined by the
// ANSI standard, the offset from the base attribute (30 for pens, 40 for
// papers) gives the final parameter.
var colors = []string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
}

// SGR parameters for text attributes.
var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
	"italic":    3,
	"strike":    9,
}

const (
	penBase   = 30
	paperBase = 40

	// adding brightOffset to a pen or paper parameter selects the high
	// intensity version of the color.
	brightOffset = 60
)

// Pens is the table of regular pen colors.
var Pens map[string]string

// DimPens is the table of dimmed pen colors.
var DimPens map[string]string

// PenStyles is the table of pen styles.
var PenStyles map[string]string

// NormalPen is the sequence that returns the terminal to its default pen.
var NormalPen string

func init() {
	NormalPen = csi("0")

	Pens = make(map[string]string, len(colors))
	DimPens = make(map[string]string, len(colors))
	for i, col := range colors {
		Pens[col] = csi(fmt.Sprintf("0;%d", penBase+i))
		DimPens[col] = csi(fmt.Sprintf("2;%d", penBase+i))
	}

	PenStyles = make(map[string]string, len(attributes))
	for sty, p := range attributes {
		PenStyles[sty] = csi(fmt.Sprintf("%d", p))
	}
}

// csi wraps the parameter string in a control sequence introducer and the
// final byte that marks an SGR sequence.
func csi(param string) string {
	return fmt.Sprintf("\033[%sm", param)
}

// ColorBuild creates a single sequence from a pen color, a paper color and a
// text attribute. Any of the three may be left empty. The bright flags select
// the high intensity version of the corresponding color.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}

	if pen != "" {
		p, err := colorParam(pen, penBase, brightPen)
		if err != nil {
			return "", err
		}
		s.WriteString(fmt.Sprintf("%d;", p))
	}

	if paper != "" {
		p, err := colorParam(paper, paperBase, brightPaper)
		if err != nil {
			return "", err
		}
		s.WriteString(fmt.Sprintf("%d;", p))
	}

	if attribute != "" {
		p, ok := attributes[attribute]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		s.WriteString(fmt.Sprintf("%d;", p))
	}

	if s.Len() == 0 {
		return "", nil
	}

	return csi(strings.TrimSuffix(s.String(), ";")), nil
}

func colorParam(col string, base int, bright bool) (int, error) {
	for i, c := range colors {
		if c == col {
			if bright {
				return base + i + brightOffset, nil
			}
			return base + i, nil
		}
	}
	return 0, fmt.Errorf("ansi: unknown color (%s)", col)
}

// ClearLine erases the entire line containing the cursor.
const ClearLine = "\033[2K"

// CursorStore saves the current cursor position.
const CursorStore = "\033[s"

// CursorRestore returns the cursor to the stored position.
const CursorRestore = "\033[u"

// CursorForwardOne moves the cursor forward one character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne moves the cursor backward one character.
const CursorBackwardOne = "\033[1D"

// CursorMove moves the cursor n characters forward (positive n) or backward
// (negative n).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
