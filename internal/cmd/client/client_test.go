package client

import (
	"flag"
	"testing"
)

func TestParseConfig_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ServerAddr != "localhost:8980" {
		t.Fatalf("server addr = %q, want localhost:8980", cfg.ServerAddr)
	}
	if cfg.RoutePoints != 10 {
		t.Fatalf("route points = %d, want 10", cfg.RoutePoints)
	}
}

func TestParseConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("ROUTEGUIDE_SERVER_ADDR", "env-host:1234")

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-server-addr", "flag-host:5678", "-route-points", "3"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ServerAddr != "flag-host:5678" {
		t.Fatalf("server addr = %q, want flag-host:5678", cfg.ServerAddr)
	}
	if cfg.RoutePoints != 3 {
		t.Fatalf("route points = %d, want 3", cfg.RoutePoints)
	}
}
