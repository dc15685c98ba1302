// Package jsonfile loads the feature dataset from a JSON database file.
//
// The file format matches the canonical route guide database: a top-level
// object with a "feature" array of {name, location{latitude, longitude}}
// records. A default dataset is embedded so the server can start without
// any external file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "embed"

	"github.com/louisbranch/routeguide/internal/routeguide/features"
	"github.com/louisbranch/routeguide/internal/routeguide/geo"
	"github.com/louisbranch/routeguide/internal/routeguide/storage"
)

//go:embed route_guide_db.json
var defaultDB []byte

type dbFile struct {
	Feature []dbFeature `json:"feature"`
}

type dbFeature struct {
	Name     string     `json:"name"`
	Location dbLocation `json:"location"`
}

type dbLocation struct {
	Latitude  int32 `json:"latitude"`
	Longitude int32 `json:"longitude"`
}

// Source reads features from a JSON database file. An empty path selects
// the embedded default dataset.
type Source struct {
	path string
}

// NewSource creates a JSON file source for the given path. Pass an empty
// path to use the embedded default dataset.
func NewSource(path string) Source {
	return Source{path: strings.TrimSpace(path)}
}

// LoadFeatures parses the database file into ordered feature records.
func (s Source) LoadFeatures(ctx context.Context) ([]features.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := defaultDB
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read feature db: %w", err)
		}
		raw = data
	}
	return Parse(raw)
}

// Parse decodes raw JSON database content into ordered feature records.
// A database with no features is reported as storage.ErrEmptyDataset,
// matching the SQLite source.
func Parse(raw []byte) ([]features.Feature, error) {
	var db dbFile
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("parse feature db: %w", err)
	}
	if len(db.Feature) == 0 {
		return nil, storage.ErrEmptyDataset
	}

	loaded := make([]features.Feature, 0, len(db.Feature))
	for _, record := range db.Feature {
		loaded = append(loaded, features.Feature{
			Name: record.Name,
			Location: geo.Point{
				Latitude:  record.Location.Latitude,
				Longitude: record.Location.Longitude,
			},
		})
	}
	return loaded, nil
}
