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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// A program mode is simply a non-flag argument that changes what the program
// does and what further flags are accepted. For example, these two command
// lines run the same program in two different modes, each mode with a flag of
// its own:
//
//	cfubench bench -reps 5
//	cfubench debug -backend sim
//
// The Modes type records the modes encountered during parsing. A new parsing
// session begins with the NewArgs() function:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("bench", "debug", "version")
//
// The AddSubModes() function specifies which modes are valid for the next
// call to Parse(). The first sub-mode in the list is the default and is
// selected when the command line names no mode explicitly. After a successful
// parse, the selected mode is available through the Mode() function:
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "BENCH":
//		bench(md)
//	case "DEBUG":
//		debug(md)
//	case "VERSION":
//		showVersion(md)
//	}
//
// Note that mode names are case insensitive on the command line but are
// normalised to upper case by the Modes type.
//
// Each mode handler can then call NewMode(), add flags and sub-modes of its
// own and call Parse() again. Modes can be chained in this way as deep as
// required. The Path() function returns the series of modes encountered so
// far, which is useful for error and help messages.
package modalflag
