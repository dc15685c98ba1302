package main

import (
	"context"
	"flag"
	"os"

	importercmd "github.com/louisbranch/routeguide/internal/cmd/featureimporter"
	"github.com/louisbranch/routeguide/internal/platform/config"
)

func main() {
	cfg, err := importercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := importercmd.Run(context.Background(), cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}
