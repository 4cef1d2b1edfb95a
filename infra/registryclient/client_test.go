package registryclient

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "supplyfinder/api/pb"
	"supplyfinder/domain/supply"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubRegistry struct {
	pb.UnimplementedRegistryServer
	listed   map[uint32][]*pb.ProviderInfo
	breakAt  int
	register error
}

func (s *stubRegistry) Discover(req *pb.ItemID, stream grpc.ServerStreamingServer[pb.ProviderInfo]) error {
	list, ok := s.listed[req.GetItemId()]
	if !ok {
		return status.Errorf(codes.NotFound, "item %d unknown", req.GetItemId())
	}
	for i, p := range list {
		if s.breakAt > 0 && i == s.breakAt {
			return status.Error(codes.Internal, "registry crashed")
		}
		if err := stream.Send(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *stubRegistry) Register(_ context.Context, p *pb.ProviderInfo) (*pb.RegisterAck, error) {
	if s.register != nil {
		return nil, s.register
	}
	return &pb.RegisterAck{Address: p.GetAddress(), Registered: 1}, nil
}

func dialStub(t *testing.T, stub *stubRegistry) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterRegistryServer(srv, stub)
	go func() { _ = srv.Serve(lis) }()

	c, err := Dial("passthrough:///registry", zerolog.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c
}

func infos(addrs ...string) []*pb.ProviderInfo {
	out := make([]*pb.ProviderInfo, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, &pb.ProviderInfo{Address: a, Name: "n-" + a, Location: "l-" + a})
	}
	return out
}

func TestDiscoverReadsWholeStream(t *testing.T) {
	c := dialStub(t, &stubRegistry{listed: map[uint32][]*pb.ProviderInfo{
		7: infos("a:1", "b:2", "c:3"),
	}})

	got, err := c.Discover(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, supply.ProviderDescriptor{Address: "a:1", Name: "n-a:1", Location: "l-a:1"}, got[0])
	assert.Equal(t, "c:3", got[2].Address)
}

func TestDiscoverNotFound(t *testing.T) {
	c := dialStub(t, &stubRegistry{})

	_, err := c.Discover(context.Background(), 99)
	assert.ErrorIs(t, err, supply.ErrNotFound)
}

func TestDiscoverDiscardsPartialStream(t *testing.T) {
	c := dialStub(t, &stubRegistry{
		listed:  map[uint32][]*pb.ProviderInfo{1: infos("a", "b", "c", "d")},
		breakAt: 2,
	})

	got, err := c.Discover(context.Background(), 1)
	assert.ErrorIs(t, err, supply.ErrRegistryUnavailable)
	assert.Nil(t, got)
}

func TestStreamStopsEarly(t *testing.T) {
	c := dialStub(t, &stubRegistry{listed: map[uint32][]*pb.ProviderInfo{
		2: infos("a", "b", "c"),
	}})

	var seen []string
	for p, err := range c.Stream(context.Background(), 2) {
		require.NoError(t, err)
		seen = append(seen, p.Address)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)

	// A fresh stream enumerates from the start again.
	again, err := c.Discover(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, again, 3)
}

func TestDiscoverUnreachableRegistry(t *testing.T) {
	c, err := Dial("passthrough:///down", zerolog.Nop(),
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		}),
	)
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = c.Discover(ctx, 1)
	assert.ErrorIs(t, err, supply.ErrRegistryUnavailable)
}

func TestDiscoverCallerCancelled(t *testing.T) {
	c := dialStub(t, &stubRegistry{listed: map[uint32][]*pb.ProviderInfo{1: infos("a")}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Discover(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegisterErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"conflict", status.Error(codes.AlreadyExists, "dup"), supply.ErrConflict},
		{"capacity", status.Error(codes.OutOfRange, "full"), supply.ErrCapacityExceeded},
		{"invalid", status.Error(codes.InvalidArgument, "empty address"), supply.ErrInvalidProvider},
		{"other", status.Error(codes.Internal, "boom"), supply.ErrRegistryUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := dialStub(t, &stubRegistry{register: tc.err})
			_, err := c.Register(context.Background(), supply.ProviderDescriptor{Address: "a"})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegisterOK(t *testing.T) {
	c := dialStub(t, &stubRegistry{})

	n, err := c.Register(context.Background(), supply.ProviderDescriptor{Address: "a"})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)
}
