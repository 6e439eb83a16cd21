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

package easyterm

// Input bytes of interest when the terminal is in raw mode. Terminal
// emulators disagree about the backspace key. Most send KeyDel, a few send
// KeyBackspace, so both should be handled.
const (
	KeyInterrupt      = 3
	KeyBackspace      = 8
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeySuspend        = 26
	KeyEsc            = 27
	KeyDel            = 127
)

// Bytes that can follow KeyEsc.
const (
	EscCursor = 91
	EscDelete = 51
)

// Bytes that can follow EscCursor.
const (
	CursorUp       = 65
	CursorDown     = 66
	CursorForward  = 67
	CursorBackward = 68
)
