// Package storage defines the feature dataset source contract.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/routeguide/internal/routeguide/features"
)

// ErrEmptyDataset indicates a source produced no feature records.
var ErrEmptyDataset = errors.New("feature dataset is empty")

// Source loads the ordered feature dataset the route guide serves. The
// dataset is read once at startup; sources are not consulted afterwards.
type Source interface {
	LoadFeatures(ctx context.Context) ([]features.Feature, error)
}
