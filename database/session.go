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

package database

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
)

// sentinal errors.
const (
	// NotAvailable is returned by StartSession() if the database file could
	// not be opened for the specified activity.
	NotAvailable = "database: not available (%s)"
)

// Activity represents the type of work that will be performed during the
// database session.
type Activity string

// a list of valid Activity values.
const (
	ActivityReading   Activity = "reading"
	ActivityCreating  Activity = "creating"
	ActivityModifying Activity = "modifying"
)

// Session keeps track of a database session. A session is opened with
// StartSession() and must be concluded with a call to EndSession().
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession starts/initialises a new database session. The init function is
// called before the database file is read; use it to register the entry types
// that are expected in the database.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	case ActivityModifying:
		flags = os.O_RDWR | os.O_CREATE
	}

	f, err := os.OpenFile(db.path, flags, 0644)
	if err != nil {
		return nil, curated.Errorf(NotAvailable, db.path)
	}
	defer f.Close()

	if err := db.readDBFile(f); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) readDBFile(f io.Reader) error {
	buffer, err := io.ReadAll(f)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	lines := strings.Split(string(buffer), entrySep)
	for i := range lines {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		fields := strings.Split(lines[i], fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: invalid entry (line %d)", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (line %d)", i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (line %d)", i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	return nil
}

// EndSession concludes the database session, writing any changes to disk if
// commitChanges is true.
func (db *Session) EndSession(commitChanges bool) error {
	if commitChanges {
		if db.activity == ActivityReading {
			return curated.Errorf("database: cannot commit to a reading session")
		}

		f, err := os.Create(db.path)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
		defer f.Close()

		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, ent.ID()))
			for _, field := range ser {
				s.WriteString(fieldSep)
				s.WriteString(field)
			}
			s.WriteString(entrySep)

			if _, err := io.WriteString(f, s.String()); err != nil {
				return curated.Errorf("database: %v", err)
			}
		}
	}

	// end session by forgetting about the database entries
	db.entries = nil
	db.entryTypes = nil

	return nil
}
