package config

import "testing"

func TestParseEnv_PopulatesTarget(t *testing.T) {
	t.Setenv("ROUTEGUIDE_TEST_PORT", "9000")
	t.Setenv("ROUTEGUIDE_TEST_NAME", "guide")

	var cfg struct {
		Port int    `env:"ROUTEGUIDE_TEST_PORT"`
		Name string `env:"ROUTEGUIDE_TEST_NAME"`
	}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Name != "guide" {
		t.Fatalf("name = %q, want %q", cfg.Name, "guide")
	}
}

func TestParseEnv_AppliesDefaults(t *testing.T) {
	var cfg struct {
		Port int `env:"ROUTEGUIDE_TEST_UNSET_PORT" envDefault:"8980"`
	}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8980 {
		t.Fatalf("port = %d, want 8980", cfg.Port)
	}
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("ROUTEGUIDE_TEST_BAD_PORT", "not-a-number")

	var cfg struct {
		Port int `env:"ROUTEGUIDE_TEST_BAD_PORT"`
	}
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected error for invalid value")
	}
}
