// Package grpc provides shared gRPC client plumbing for route guide
// commands.
package grpc

import (
	"context"
	"fmt"

	routeguidev1 "github.com/louisbranch/routeguide/api/gen/go/routeguide/v1"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultClientDialOptions returns standard dial options for route guide
// clients. Includes the OTel gRPC stats handler so that every outbound
// call propagates trace context when a TracerProvider is registered.
func DefaultClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// DialWithHealth connects to a route guide server and waits until the
// routeguide.v1.RouteGuideService health check reports SERVING, so a
// listening socket whose service is still loading its dataset is not
// treated as ready. The connection is closed when the health check fails
// or the context ends first.
func DialWithHealth(ctx context.Context, addr string, logf func(string, ...any), opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(opts) == 0 {
		opts = DefaultClientDialOptions()
	}

	conn, err := gogrpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if err := WaitForHealth(ctx, conn, routeguidev1.RouteGuideService_ServiceDesc.ServiceName, logf); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
