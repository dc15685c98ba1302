// Package client parses client flags and runs a route guide tour against
// a server: one feature hit, one miss, a spatial query, a recorded route,
// and a chat exchange.
package client

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	routeguidev1 "github.com/louisbranch/routeguide/api/gen/go/routeguide/v1"
	rgclient "github.com/louisbranch/routeguide/internal/client"
	entrypoint "github.com/louisbranch/routeguide/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/routeguide/internal/platform/grpc"
	"github.com/louisbranch/routeguide/internal/routeguide/storage/jsonfile"
	"google.golang.org/protobuf/proto"
)

// Config holds client command configuration.
type Config struct {
	ServerAddr   string `env:"ROUTEGUIDE_SERVER_ADDR" envDefault:"localhost:8980"`
	FeaturesPath string `env:"ROUTEGUIDE_FEATURES_PATH"`
	RoutePoints  int    `env:"ROUTEGUIDE_ROUTE_POINTS" envDefault:"10"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.ServerAddr, "server-addr", cfg.ServerAddr, "The route guide server address")
	fs.IntVar(&cfg.RoutePoints, "route-points", cfg.RoutePoints, "Number of random points sent to RecordRoute")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// logObserver prints every inbound message and RPC error.
type logObserver struct{}

func (logObserver) OnMessage(msg proto.Message) {
	switch m := msg.(type) {
	case *routeguidev1.Feature:
		if m.GetName() == "" {
			log.Printf("no feature at (%d, %d)", m.GetLocation().GetLatitude(), m.GetLocation().GetLongitude())
			return
		}
		log.Printf("feature %q at (%d, %d)", m.GetName(), m.GetLocation().GetLatitude(), m.GetLocation().GetLongitude())
	case *routeguidev1.RouteSummary:
		log.Printf("route summary: %d points, %d features, %dm in %ds",
			m.GetPointCount(), m.GetFeatureCount(), m.GetDistance(), m.GetElapsedTime())
	case *routeguidev1.RouteNote:
		log.Printf("note %q at (%d, %d)", m.GetMessage(), m.GetLocation().GetLatitude(), m.GetLocation().GetLongitude())
	default:
		log.Printf("message: %v", msg)
	}
}

func (logObserver) OnRPCError(err error) {
	log.Printf("RPC failed: %v", err)
}

// Run connects to the server and exercises all four RPCs.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceClient, func(context.Context) error {
		return runTour(ctx, cfg)
	})
}

func runTour(ctx context.Context, cfg Config) error {
	conn, err := platformgrpc.DialWithHealth(ctx, cfg.ServerAddr, log.Printf)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.ServerAddr, err)
	}
	defer conn.Close()

	guide, err := rgclient.New(conn, logObserver{})
	if err != nil {
		return err
	}

	// Known feature, then a miss.
	if err := guide.GetFeature(ctx, 407838351, -746143763); err != nil {
		return err
	}
	if err := guide.GetFeature(ctx, 0, 0); err != nil {
		return err
	}

	if err := guide.ListFeatures(ctx,
		&routeguidev1.Point{Latitude: 400000000, Longitude: -750000000},
		&routeguidev1.Point{Latitude: 420000000, Longitude: -730000000},
	); err != nil {
		return err
	}

	points, err := randomRoute(ctx, cfg)
	if err != nil {
		return err
	}
	if err := guide.RecordRoute(ctx, points); err != nil {
		return err
	}

	return guide.RouteChat(ctx, []*routeguidev1.RouteNote{
		{Location: &routeguidev1.Point{Latitude: 0, Longitude: 0}, Message: "First message"},
		{Location: &routeguidev1.Point{Latitude: 0, Longitude: 1}, Message: "Second message"},
		{Location: &routeguidev1.Point{Latitude: 1, Longitude: 0}, Message: "Third message"},
		{Location: &routeguidev1.Point{Latitude: 0, Longitude: 0}, Message: "Fourth message"},
	})
}

// randomRoute picks random locations from the feature dataset, matching
// the canonical route guide client behavior.
func randomRoute(ctx context.Context, cfg Config) ([]*routeguidev1.Point, error) {
	dataset, err := jsonfile.NewSource(cfg.FeaturesPath).LoadFeatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("load route candidates: %w", err)
	}
	if len(dataset) == 0 {
		return nil, fmt.Errorf("no route candidates available")
	}

	count := cfg.RoutePoints
	if count <= 0 {
		count = 1
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	points := make([]*routeguidev1.Point, 0, count)
	for i := 0; i < count; i++ {
		feature := dataset[rng.Intn(len(dataset))]
		points = append(points, &routeguidev1.Point{
			Latitude:  feature.Location.Latitude,
			Longitude: feature.Location.Longitude,
		})
	}
	return points, nil
}
