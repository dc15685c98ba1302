// Package server parses route guide server flags and launches the service.
package server

import (
	"context"
	"flag"

	app "github.com/louisbranch/routeguide/internal/app/server"
	entrypoint "github.com/louisbranch/routeguide/internal/platform/cmd"
)

// Config holds server command configuration.
type Config struct {
	Port int `env:"ROUTEGUIDE_PORT" envDefault:"8980"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The route guide gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the route guide gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(context.Context) error {
		return app.Run(ctx, cfg.Port)
	})
}
