// Package routeguide implements the routeguide.v1 gRPC service.
package routeguide

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	routeguidev1 "github.com/louisbranch/routeguide/api/gen/go/routeguide/v1"
	"github.com/louisbranch/routeguide/internal/routeguide/features"
	"github.com/louisbranch/routeguide/internal/routeguide/geo"
	"github.com/louisbranch/routeguide/internal/routeguide/notes"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service exposes routeguide.v1 gRPC operations over an immutable feature
// store and a shared note log.
type Service struct {
	routeguidev1.UnimplementedRouteGuideServiceServer
	store *features.Store
	notes *notes.Log
	clock func() time.Time
}

// NewService creates a route guide service over the loaded feature store.
func NewService(store *features.Store, noteLog *notes.Log) *Service {
	return &Service{
		store: store,
		notes: noteLog,
		clock: time.Now,
	}
}

// GetFeature returns the feature stored at the requested point. A feature
// with an empty name signals that nothing is stored there; the lookup
// itself never fails.
func (s *Service) GetFeature(ctx context.Context, in *routeguidev1.Point) (*routeguidev1.Feature, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "point is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "feature store is not configured")
	}

	found := s.store.Lookup(pointFromProto(in))
	return featureToProto(found), nil
}

// ListFeatures streams every named feature inside the requested rectangle,
// in store order. Placeholder entries are never sent.
func (s *Service) ListFeatures(in *routeguidev1.Rectangle, stream grpc.ServerStreamingServer[routeguidev1.Feature]) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "rectangle is required")
	}
	if s == nil || s.store == nil {
		return status.Error(codes.Internal, "feature store is not configured")
	}

	return s.store.Query(pointFromProto(in.GetLo()), pointFromProto(in.GetHi()), func(f features.Feature) error {
		return stream.Send(featureToProto(f))
	})
}

// RecordRoute consumes a stream of points and, once the client finishes
// sending, replies with the aggregated route summary. A failed inbound
// stream abandons the session without a response.
func (s *Service) RecordRoute(stream grpc.ClientStreamingServer[routeguidev1.Point, routeguidev1.RouteSummary]) error {
	if s == nil || s.store == nil {
		return status.Error(codes.Internal, "feature store is not configured")
	}

	var pointCount, featureCount, distance int
	var previous geo.Point
	var hasPrevious bool
	start := s.clock()

	for {
		in, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			elapsed := s.clock().Sub(start) / time.Second
			return stream.SendAndClose(&routeguidev1.RouteSummary{
				PointCount:   int32(pointCount),
				FeatureCount: int32(featureCount),
				Distance:     int32(distance),
				ElapsedTime:  int32(elapsed),
			})
		}
		if err != nil {
			log.Printf("record route aborted: %v", err)
			return nil
		}

		point := pointFromProto(in)
		pointCount++
		if s.store.Lookup(point).Named() {
			featureCount++
		}
		// The first point of a session has no predecessor and adds no
		// distance.
		if hasPrevious {
			distance += geo.Distance(previous, point)
		}
		previous = point
		hasPrevious = true
	}
}

// RouteChat receives route notes and answers each with the notes already
// recorded at the same location, in insertion order. The incoming note is
// visible to later calls but never echoed back to its own sender. A failed
// inbound stream abandons the session; notes already appended stay.
func (s *Service) RouteChat(stream grpc.BidiStreamingServer[routeguidev1.RouteNote, routeguidev1.RouteNote]) error {
	if s == nil || s.notes == nil {
		return status.Error(codes.Internal, "note log is not configured")
	}

	for {
		in, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Printf("route chat aborted: %v", err)
			return nil
		}

		snapshot := s.notes.Append(notes.Note{
			Location: pointFromProto(in.GetLocation()),
			Message:  in.GetMessage(),
		})
		for _, prior := range snapshot {
			if err := stream.Send(noteToProto(prior)); err != nil {
				return err
			}
		}
	}
}
