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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
)

// sentinal errors.
const (
	// NoPrefsFile is returned by the Load() function if the prefs file does
	// not exist.
	NoPrefsFile = "prefs: no prefs file (%s)"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "cfubench.prefs"

// WarningBoilerPlate is the first line in a prefs file. A file without this
// line as the first line is not a valid prefs file.
const WarningBoilerPlate = "*** do not modify this file ***"

// the string that separates the key from the value on a prefs file line.
const keySep = " :: "

// Disk represents a group of preference values as stored on disk.
//
// More than one Disk instance can use the same file. Saving one instance will
// not clobber the values registered with another.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to the list of values to save/load to/from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: key cannot contain %q (%s)", keySep, key)
	}
	if strings.ContainsAny(key, "\n") {
		return curated.Errorf("prefs: key cannot contain newline characters (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// HasEntry returns true if the key has been added to this Disk instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// load the entirety of a prefs file into a map of strings. the function does
// not care whether any key is registered with any Disk instance.
func loadEntries(path string) (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, curated.Errorf(NoPrefsFile, path)
		}
		return entries, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() {
		// an empty file is a valid prefs file
		return entries, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return entries, curated.Errorf("prefs: not a valid prefs file (%s)", path)
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) != 2 {
			return entries, curated.Errorf("prefs: not a valid prefs file (%s)", path)
		}
		entries[s[0]] = s[1]
	}

	return entries, nil
}

// Save current preference values to disk. Values on disk that are not
// registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load the file as it currently exists on disk. keys not registered with
	// this instance must survive the save
	entries, err := loadEntries(dsk.path)
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
	}

	// update with the values registered with this instance
	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	// the prefs file is sorted by key to keep the output stable
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	fmt.Fprintln(f, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(f, "%s%s%s\n", k, keySep, entries[k])
	}

	return nil
}

// Load preference values from disk. Keys in the file that are not registered
// with this Disk instance are left alone.
//
// If saveOnFirstUse is true then a missing prefs file will be created using
// the current values of the registered preferences.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	entries, err := loadEntries(dsk.path)
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFirstUse {
			return dsk.Save()
		}
		return err
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			err = p.Set(v)
			if err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// Reset all preferences registered with this Disk instance to their zero
// values. The file on disk is not changed until the next Save().
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		err := p.Reset()
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns all the preferences registered with this Disk instance, one
// per line, sorted by key.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}
