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

package benchmark

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/curated"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/database"
	"github.com/Nandini-Gajula/AI-Hardware-Codesign-Project/resources"
)

// the name of the benchmark database file. the file lives alongside the
// preferences file.
const benchmarkDBFile = "benchmarkDB"

const resultEntryID = "benchmark"

// the order of the serialised fields of a ResultEntry.
const (
	resultFieldTimestamp int = iota
	resultFieldBackend
	resultFieldName
	resultFieldBaseline
	resultFieldAccelerated
	numResultFields
)

// ResultEntry is a benchmark result as stored in the benchmark database. All
// results from the same run share a timestamp and a backend label, allowing
// runs to be compared across sessions and across backends.
type ResultEntry struct {
	Timestamp time.Time
	Backend   string
	Result
}

func deserialiseResultEntry(fields database.SerialisedEntry) (database.Entry, error) {
	ent := ResultEntry{}

	// basic sanity check
	if len(fields) != numResultFields {
		return nil, curated.Errorf("benchmark: database: wrong number of fields in entry")
	}

	var err error

	ent.Timestamp, err = time.Parse(time.RFC3339, fields[resultFieldTimestamp])
	if err != nil {
		return nil, curated.Errorf("benchmark: database: %v", err)
	}

	ent.Backend = fields[resultFieldBackend]
	ent.CaseName = fields[resultFieldName]

	ent.BaselineCycles, err = strconv.ParseUint(fields[resultFieldBaseline], 10, 64)
	if err != nil {
		return nil, curated.Errorf("benchmark: database: %v", err)
	}

	ent.AcceleratedCycles, err = strconv.ParseUint(fields[resultFieldAccelerated], 10, 64)
	if err != nil {
		return nil, curated.Errorf("benchmark: database: %v", err)
	}

	return ent, nil
}

// ID implements the database.Entry interface.
func (e ResultEntry) ID() string {
	return resultEntryID
}

// String implements the database.Entry interface.
func (e ResultEntry) String() string {
	return fmt.Sprintf("[%s] %s %s", e.Backend, e.Timestamp.Format(time.DateTime), e.Result.String())
}

// Serialise implements the database.Entry interface.
func (e ResultEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		e.Timestamp.Format(time.RFC3339),
		e.Backend,
		e.CaseName,
		strconv.FormatUint(e.BaselineCycles, 10),
		strconv.FormatUint(e.AcceleratedCycles, 10),
	}, nil
}

// CleanUp implements the database.Entry interface.
func (e ResultEntry) CleanUp() error {
	return nil
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(resultEntryID, deserialiseResultEntry)
}

// RecordResults adds the results of a benchmark run to the benchmark
// database. The backend argument labels the entries with the backend the run
// was performed against.
func RecordResults(backend string, results []Result) error {
	if len(results) == 0 {
		return nil
	}

	path, err := resources.JoinPath(benchmarkDBFile)
	if err != nil {
		return curated.Errorf("benchmark: database: %v", err)
	}

	db, err := database.StartSession(path, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, r := range results {
		ent := ResultEntry{
			Timestamp: now,
			Backend:   backend,
			Result:    r,
		}
		if err := db.Add(ent); err != nil {
			// changes so far are not committed
			_ = db.EndSession(false)
			return err
		}
	}

	return db.EndSession(true)
}

// ListResults writes all entries in the benchmark database to output.
func ListResults(output io.Writer) error {
	path, err := resources.JoinPath(benchmarkDBFile)
	if err != nil {
		return curated.Errorf("benchmark: database: %v", err)
	}

	db, err := database.StartSession(path, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// DeleteResults removes an entry from the benchmark database. The deletion
// must be confirmed through the confirmation reader before it takes place.
func DeleteResults(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("benchmark: database: invalid key (%s)", key)
	}

	path, err := resources.JoinPath(benchmarkDBFile)
	if err != nil {
		return curated.Errorf("benchmark: database: %v", err)
	}

	db, err := database.StartSession(path, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	ent, err := db.Get(v)
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		_ = db.EndSession(false)
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			_ = db.EndSession(false)
			return err
		}
		fmt.Fprintf(output, "deleted entry #%s from the benchmark database\n", key)
		return db.EndSession(true)
	}

	return db.EndSession(false)
}
