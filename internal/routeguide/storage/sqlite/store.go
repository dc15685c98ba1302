// Package sqlite provides a SQLite-backed feature dataset source.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/routeguide/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/routeguide/internal/routeguide/features"
	"github.com/louisbranch/routeguide/internal/routeguide/geo"
	"github.com/louisbranch/routeguide/internal/routeguide/storage"
	"github.com/louisbranch/routeguide/internal/routeguide/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store reads and writes the feature dataset in SQLite. Serving reads the
// dataset once at startup; writes happen only through the importer.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite feature store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadFeatures returns the stored dataset in import order.
func (s *Store) LoadFeatures(ctx context.Context) ([]features.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT latitude, longitude, name FROM features ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}
	defer rows.Close()

	var loaded []features.Feature
	for rows.Next() {
		var latitude, longitude int32
		var name string
		if err := rows.Scan(&latitude, &longitude, &name); err != nil {
			return nil, fmt.Errorf("scan feature row: %w", err)
		}
		loaded = append(loaded, features.Feature{
			Name:     name,
			Location: geo.Point{Latitude: latitude, Longitude: longitude},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feature rows: %w", err)
	}
	if len(loaded) == 0 {
		return nil, storage.ErrEmptyDataset
	}
	return loaded, nil
}

// ImportFeatures replaces the stored dataset with the given records,
// preserving their order. The swap happens in one transaction.
func (s *Store) ImportFeatures(ctx context.Context, dataset []features.Feature) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if len(dataset) == 0 {
		return storage.ErrEmptyDataset
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM features`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear features: %w", err)
	}
	for position, feature := range dataset {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO features (position, latitude, longitude, name) VALUES (?, ?, ?, ?)`,
			position,
			feature.Location.Latitude,
			feature.Location.Longitude,
			feature.Name,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert feature %d: %w", position, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}
