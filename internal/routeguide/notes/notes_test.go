package notes

import (
	"fmt"
	"sync"
	"testing"

	"github.com/louisbranch/routeguide/internal/routeguide/geo"
)

func TestAppend_SnapshotExcludesOwnNote(t *testing.T) {
	log := NewLog()
	location := geo.Point{Latitude: 1, Longitude: 1}

	first := log.Append(Note{Location: location, Message: "n1"})
	if len(first) != 0 {
		t.Fatalf("first snapshot = %v, want empty", first)
	}

	second := log.Append(Note{Location: location, Message: "n2"})
	if len(second) != 1 || second[0].Message != "n1" {
		t.Fatalf("second snapshot = %v, want [n1]", second)
	}
}

func TestAppend_LocationsAreIsolated(t *testing.T) {
	log := NewLog()
	x := geo.Point{Latitude: 1, Longitude: 1}
	y := geo.Point{Latitude: 2, Longitude: 2}

	log.Append(Note{Location: x, Message: "n1"})
	log.Append(Note{Location: x, Message: "n2"})

	snapshot := log.Append(Note{Location: y, Message: "n3"})
	if len(snapshot) != 0 {
		t.Fatalf("snapshot at y = %v, want empty", snapshot)
	}
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	log := NewLog()
	location := geo.Point{Latitude: 3, Longitude: 3}

	for i := 0; i < 5; i++ {
		log.Append(Note{Location: location, Message: fmt.Sprintf("n%d", i)})
	}

	snapshot := log.Append(Note{Location: location, Message: "last"})
	if len(snapshot) != 5 {
		t.Fatalf("snapshot length = %d, want 5", len(snapshot))
	}
	for i, note := range snapshot {
		if want := fmt.Sprintf("n%d", i); note.Message != want {
			t.Fatalf("snapshot[%d] = %q, want %q", i, note.Message, want)
		}
	}
}

func TestAppend_SnapshotIsDetached(t *testing.T) {
	log := NewLog()
	location := geo.Point{Latitude: 4, Longitude: 4}

	log.Append(Note{Location: location, Message: "n1"})
	snapshot := log.Append(Note{Location: location, Message: "n2"})
	snapshot[0].Message = "mutated"

	latest := log.Append(Note{Location: location, Message: "n3"})
	if latest[0].Message != "n1" {
		t.Fatalf("stored note = %q, want %q", latest[0].Message, "n1")
	}
}

func TestAppend_ConcurrentSameLocation(t *testing.T) {
	log := NewLog()
	location := geo.Point{Latitude: 5, Longitude: 5}
	const writers = 32

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			snapshot := log.Append(Note{Location: location, Message: fmt.Sprintf("n%d", i)})
			// Each snapshot must be a consistent prefix: no gaps, no
			// duplicates, length below the total number of writers.
			if len(snapshot) >= writers {
				t.Errorf("snapshot length = %d, want < %d", len(snapshot), writers)
			}
		}(i)
	}
	wg.Wait()

	final := log.Append(Note{Location: location, Message: "sentinel"})
	if len(final) != writers {
		t.Fatalf("final count = %d, want %d", len(final), writers)
	}
	seen := make(map[string]bool, writers)
	for _, note := range final {
		if seen[note.Message] {
			t.Fatalf("duplicate note %q", note.Message)
		}
		seen[note.Message] = true
	}
}

func TestAppend_ConcurrentDistinctLocations(t *testing.T) {
	log := NewLog()
	const locations = 16
	const perLocation = 8

	var wg sync.WaitGroup
	for loc := 0; loc < locations; loc++ {
		point := geo.Point{Latitude: int32(loc), Longitude: int32(loc)}
		for n := 0; n < perLocation; n++ {
			wg.Add(1)
			go func(point geo.Point, n int) {
				defer wg.Done()
				log.Append(Note{Location: point, Message: fmt.Sprintf("n%d", n)})
			}(point, n)
		}
	}
	wg.Wait()

	for loc := 0; loc < locations; loc++ {
		point := geo.Point{Latitude: int32(loc), Longitude: int32(loc)}
		snapshot := log.Append(Note{Location: point, Message: "sentinel"})
		if len(snapshot) != perLocation {
			t.Fatalf("location %d count = %d, want %d", loc, len(snapshot), perLocation)
		}
	}
}
