package client

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

type nopObserver struct{}

func (nopObserver) OnMessage(proto.Message) {}
func (nopObserver) OnRPCError(error)        {}

type nopConn struct{}

func (nopConn) Invoke(context.Context, string, any, any, ...grpc.CallOption) error {
	return nil
}

func (nopConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, nil
}

func TestNew_RequiresConnection(t *testing.T) {
	if _, err := New(nil, nopObserver{}); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

func TestNew_RequiresObserver(t *testing.T) {
	if _, err := New(nopConn{}, nil); err == nil {
		t.Fatal("expected error for nil observer")
	}
}

func TestNew_ValidArguments(t *testing.T) {
	client, err := New(nopConn{}, nopObserver{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client == nil {
		t.Fatal("expected client")
	}
}
