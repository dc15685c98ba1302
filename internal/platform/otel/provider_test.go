package otel

import (
	"context"
	"testing"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	t.Setenv("ROUTEGUIDE_OTEL_ENDPOINT", "")
	t.Setenv("ROUTEGUIDE_OTEL_ENABLED", "true")

	shutdown, err := Setup(context.Background(), "server")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown func is nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetup_DisabledOverridesEndpoint(t *testing.T) {
	t.Setenv("ROUTEGUIDE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("ROUTEGUIDE_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "server")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetup_MalformedEnabledIsError(t *testing.T) {
	t.Setenv("ROUTEGUIDE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("ROUTEGUIDE_OTEL_ENABLED", "maybe")

	if _, err := Setup(context.Background(), "server"); err == nil {
		t.Fatal("expected error for malformed enabled flag")
	}
}
