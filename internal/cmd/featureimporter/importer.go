// Package featureimporter loads a JSON feature database into the SQLite
// feature store used by the server.
package featureimporter

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	entrypoint "github.com/louisbranch/routeguide/internal/platform/cmd"
	"github.com/louisbranch/routeguide/internal/routeguide/storage/jsonfile"
	featuresqlite "github.com/louisbranch/routeguide/internal/routeguide/storage/sqlite"
)

// Config holds feature importer configuration.
type Config struct {
	DBPath       string `env:"ROUTEGUIDE_DB_PATH" envDefault:"data/routeguide.db"`
	FeaturesPath string `env:"ROUTEGUIDE_FEATURES_PATH"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite feature database")
	fs.StringVar(&cfg.FeaturesPath, "features", cfg.FeaturesPath, "Path to the JSON feature database (embedded default when empty)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run imports the JSON dataset into the SQLite store.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceImporter, func(context.Context) error {
		return runImport(ctx, cfg)
	})
}

func runImport(ctx context.Context, cfg Config) error {
	dataset, err := jsonfile.NewSource(cfg.FeaturesPath).LoadFeatures(ctx)
	if err != nil {
		return fmt.Errorf("load features: %w", err)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := featuresqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open feature db: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close feature db: %v", err)
		}
	}()

	if err := store.ImportFeatures(ctx, dataset); err != nil {
		return fmt.Errorf("import features: %w", err)
	}
	log.Printf("imported %d features into %s", len(dataset), cfg.DBPath)
	return nil
}
