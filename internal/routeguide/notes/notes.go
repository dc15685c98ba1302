// Package notes keeps the append-only chat log keyed by location.
package notes

import (
	"sync"

	"github.com/louisbranch/routeguide/internal/routeguide/geo"
)

// Note is one chat message attached to a location.
type Note struct {
	Location geo.Point
	Message  string
}

// Log stores route notes grouped by location. Appends at one location are
// serialized by a per-location lock, so concurrent chat sessions at
// unrelated locations do not contend. Entries are append-only and live for
// the process lifetime.
type Log struct {
	mu      sync.Mutex
	threads map[geo.Point]*thread
}

type thread struct {
	mu    sync.Mutex
	notes []Note
}

// NewLog creates an empty note log.
func NewLog() *Log {
	return &Log{threads: make(map[geo.Point]*thread)}
}

// Append records note at its location and returns a snapshot of the notes
// already stored there, in insertion order, excluding the note just
// appended. Snapshot and append happen under the location's lock, so two
// racing appends each observe a consistent prefix and neither note is lost.
func (l *Log) Append(note Note) []Note {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	th, ok := l.threads[note.Location]
	if !ok {
		th = &thread{}
		l.threads[note.Location] = th
	}
	l.mu.Unlock()

	th.mu.Lock()
	defer th.mu.Unlock()
	snapshot := make([]Note, len(th.notes))
	copy(snapshot, th.notes)
	th.notes = append(th.notes, note)
	return snapshot
}
