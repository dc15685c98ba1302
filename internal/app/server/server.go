// Package server wires the route guide runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	routeguidev1 "github.com/louisbranch/routeguide/api/gen/go/routeguide/v1"
	routeguideservice "github.com/louisbranch/routeguide/internal/api/grpc/routeguide"
	"github.com/louisbranch/routeguide/internal/platform/config"
	"github.com/louisbranch/routeguide/internal/routeguide/features"
	"github.com/louisbranch/routeguide/internal/routeguide/notes"
	"github.com/louisbranch/routeguide/internal/routeguide/storage"
	"github.com/louisbranch/routeguide/internal/routeguide/storage/jsonfile"
	featuresqlite "github.com/louisbranch/routeguide/internal/routeguide/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath       string `env:"ROUTEGUIDE_DB_PATH"`
	FeaturesPath string `env:"ROUTEGUIDE_FEATURES_PATH"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	return cfg
}

// Server hosts the route guide gRPC API.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
}

// New creates a configured route guide server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured route guide server for the provided
// address. The feature dataset is loaded once here; the serving path never
// touches storage again.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	dataset, err := loadDataset(context.Background(), env)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	log.Printf("loaded %d features", len(dataset))

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := routeguideservice.NewService(features.NewStore(dataset), notes.NewLog())
	healthServer := health.NewServer()
	routeguidev1.RegisterRouteGuideServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(routeguidev1.RouteGuideService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a route guide server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("route guide server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

// loadDataset reads the feature dataset from SQLite when a database path is
// configured, otherwise from the JSON file source (embedded default when no
// path is set).
func loadDataset(ctx context.Context, env serverEnv) ([]features.Feature, error) {
	if env.DBPath != "" {
		store, err := featuresqlite.Open(env.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open feature db: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close feature db: %v", err)
			}
		}()
		dataset, err := store.LoadFeatures(ctx)
		if err != nil {
			return nil, fmt.Errorf("load features from db: %w", err)
		}
		return dataset, nil
	}

	var source storage.Source = jsonfile.NewSource(env.FeaturesPath)
	dataset, err := source.LoadFeatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("load features: %w", err)
	}
	return dataset, nil
}
