// Package client drives the four route guide RPCs on behalf of scripts
// and verification tooling. Every inbound message and terminal RPC error
// is reported through an injected Observer, so callers decide how results
// are consumed.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	routeguidev1 "github.com/louisbranch/routeguide/api/gen/go/routeguide/v1"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

// Observer receives every inbound RPC message and terminal error.
type Observer interface {
	OnMessage(msg proto.Message)
	OnRPCError(err error)
}

// Client wraps the route guide stub with observer reporting. It is not
// part of the serving path.
type Client struct {
	rg       routeguidev1.RouteGuideServiceClient
	observer Observer
}

// New creates a client over an established gRPC connection.
func New(conn grpc.ClientConnInterface, observer Observer) (*Client, error) {
	if conn == nil {
		return nil, errors.New("gRPC connection is required")
	}
	if observer == nil {
		return nil, errors.New("observer is required")
	}
	return &Client{
		rg:       routeguidev1.NewRouteGuideServiceClient(conn),
		observer: observer,
	}, nil
}

// GetFeature looks up the feature at one point and reports the response.
func (c *Client) GetFeature(ctx context.Context, latitude, longitude int32) error {
	feature, err := c.rg.GetFeature(ctx, &routeguidev1.Point{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		c.observer.OnRPCError(err)
		return fmt.Errorf("get feature: %w", err)
	}
	c.observer.OnMessage(feature)
	return nil
}

// ListFeatures streams every named feature in the rectangle spanned by the
// two corners and reports each response.
func (c *Client) ListFeatures(ctx context.Context, lo, hi *routeguidev1.Point) error {
	stream, err := c.rg.ListFeatures(ctx, &routeguidev1.Rectangle{Lo: lo, Hi: hi})
	if err != nil {
		c.observer.OnRPCError(err)
		return fmt.Errorf("list features: %w", err)
	}
	for {
		feature, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			c.observer.OnRPCError(err)
			return fmt.Errorf("list features recv: %w", err)
		}
		c.observer.OnMessage(feature)
	}
}

// RecordRoute sends the given points as one route and reports the summary.
func (c *Client) RecordRoute(ctx context.Context, points []*routeguidev1.Point) error {
	stream, err := c.rg.RecordRoute(ctx)
	if err != nil {
		c.observer.OnRPCError(err)
		return fmt.Errorf("record route: %w", err)
	}
	for _, point := range points {
		if err := stream.Send(point); err != nil {
			c.observer.OnRPCError(err)
			return fmt.Errorf("record route send: %w", err)
		}
	}
	summary, err := stream.CloseAndRecv()
	if err != nil {
		c.observer.OnRPCError(err)
		return fmt.Errorf("record route close: %w", err)
	}
	c.observer.OnMessage(summary)
	return nil
}

// RouteChat sends the given notes and reports every note echoed back.
func (c *Client) RouteChat(ctx context.Context, routeNotes []*routeguidev1.RouteNote) error {
	stream, err := c.rg.RouteChat(ctx)
	if err != nil {
		c.observer.OnRPCError(err)
		return fmt.Errorf("route chat: %w", err)
	}

	recvDone := make(chan error, 1)
	go func() {
		for {
			note, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				recvDone <- nil
				return
			}
			if err != nil {
				c.observer.OnRPCError(err)
				recvDone <- fmt.Errorf("route chat recv: %w", err)
				return
			}
			c.observer.OnMessage(note)
		}
	}()

	for _, note := range routeNotes {
		if err := stream.Send(note); err != nil {
			c.observer.OnRPCError(err)
			return fmt.Errorf("route chat send: %w", err)
		}
	}
	if err := stream.CloseSend(); err != nil {
		c.observer.OnRPCError(err)
		return fmt.Errorf("route chat close send: %w", err)
	}
	return <-recvDone
}
