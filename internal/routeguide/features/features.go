// Package features holds the immutable feature dataset served by the
// route guide.
package features

import "github.com/louisbranch/routeguide/internal/routeguide/geo"

// Feature is a named point of interest. An empty name marks a placeholder
// entry with no feature at its location.
type Feature struct {
	Name     string
	Location geo.Point
}

// Named reports whether the feature represents a real entry rather than a
// placeholder.
func (f Feature) Named() bool {
	return f.Name != ""
}

// Store is an ordered, read-only collection of features. It is populated
// once at construction and is safe to share across any number of
// concurrent readers without locking.
type Store struct {
	entries []Feature
}

// NewStore builds a store from the loaded dataset. The input slice is
// copied, so later mutation by the caller does not affect the store.
func NewStore(entries []Feature) *Store {
	copied := make([]Feature, len(entries))
	copy(copied, entries)
	return &Store{entries: copied}
}

// Len returns the number of stored entries, placeholders included.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Lookup returns the feature stored exactly at point. When no entry
// matches, it returns an unnamed feature carrying the queried point, so
// callers always receive a feature with a location.
func (s *Store) Lookup(point geo.Point) Feature {
	if s != nil {
		for _, feature := range s.entries {
			if feature.Location == point {
				return feature
			}
		}
	}
	return Feature{Location: point}
}

// Query visits, in store order, every named feature contained in the
// rectangle spanned by lo and hi. The corners may arrive in any order.
// Placeholder entries are never visited, even when their location falls
// inside the rectangle. Visiting stops at the first emit error, which is
// returned unchanged so streaming callers keep transport semantics.
func (s *Store) Query(lo, hi geo.Point, emit func(Feature) error) error {
	if s == nil || emit == nil {
		return nil
	}
	bounds := geo.Normalize(lo, hi)
	for _, feature := range s.entries {
		if !feature.Named() {
			continue
		}
		if !bounds.Contains(feature.Location) {
			continue
		}
		if err := emit(feature); err != nil {
			return err
		}
	}
	return nil
}
