package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthRetryDelay    = 150 * time.Millisecond
	healthRetryDelayMax = 2 * time.Second
)

// WaitForHealth subscribes to the server's health stream for the named
// service and returns once it reports SERVING. Interrupted streams are
// reopened with growing delays until the context ends, so callers can
// start before the server finishes coming up.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return errors.New("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	delay := healthRetryDelay
	for {
		err := watchUntilServing(ctx, healthClient, service, logf)
		if err == nil {
			logf("health check for %q is SERVING", service)
			return nil
		}
		if ctx.Err() != nil {
			return fmt.Errorf("wait for %q health: %w", service, ctx.Err())
		}
		logf("health stream for %q interrupted: %v", service, err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for %q health: %w", service, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
		if delay > healthRetryDelayMax {
			delay = healthRetryDelayMax
		}
	}
}

// watchUntilServing drains one health watch stream until the service
// reports SERVING or the stream breaks.
func watchUntilServing(ctx context.Context, client grpc_health_v1.HealthClient, service string, logf func(string, ...any)) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	watch, err := client.Watch(watchCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return err
	}
	for {
		update, err := watch.Recv()
		if err != nil {
			return err
		}
		if update.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			return nil
		}
		logf("health check for %q reports %s", service, update.GetStatus())
	}
}
