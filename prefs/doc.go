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

// Package prefs facilitates the storage of preference values alongside the
// live values used by the rest of the application.
//
// Preference values are instances of the Bool, String, Int or Float types.
// These types can be read and updated concurrently; the current value is
// always available through the Get() function and the type's Stringer
// implementation.
//
// The Disk type connects preference values to a file on disk. Values are
// registered with the Add() function and the group is then saved and loaded
// as one with the Save() and Load() functions. More than one Disk instance
// can use the same file; saving one group will not clobber the values of
// another.
//
// The Generic type is a general purpose preference type, useful for values
// that cannot be represented by a single live value.
package prefs
