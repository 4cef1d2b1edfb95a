package grpcserver

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	pb "supplyfinder/api/pb"
	"supplyfinder/domain/supply"
	"supplyfinder/infra/providerpool"
	"supplyfinder/infra/registryclient"
	"supplyfinder/infra/sequence"
	"supplyfinder/provider"
	"supplyfinder/registry"
	"supplyfinder/service"
)

// network is a set of in-memory listeners addressed by name.
type network struct {
	mu        sync.Mutex
	listeners map[string]*bufconn.Listener
	dials     atomic.Int32
}

func newNetwork() *network {
	return &network{listeners: make(map[string]*bufconn.Listener)}
}

func (n *network) serve(t testing.TB, name string, register func(*grpc.Server)) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(zerolog.Nop())
	register(srv)
	EnableHealth(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	n.mu.Lock()
	n.listeners[name] = lis
	n.mu.Unlock()
}

func (n *network) contextDialer(ctx context.Context, name string) (net.Conn, error) {
	n.mu.Lock()
	lis, ok := n.listeners[name]
	n.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("dial %s: connection refused", name)
	}
	return lis.DialContext(ctx)
}

func (n *network) conn(t testing.TB, name string) *grpc.ClientConn {
	t.Helper()
	cc, err := n.dial(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })
	return cc
}

func (n *network) dial(name string) (*grpc.ClientConn, error) {
	n.dials.Add(1)
	return grpc.NewClient("passthrough:///"+name,
		grpc.WithContextDialer(n.contextDialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
}

// countingProvider records every stock query it answers.
type countingProvider struct {
	pb.ProviderServer
	calls *atomic.Int32
	hang  bool
}

func (c countingProvider) CheckStock(ctx context.Context, req *pb.ItemID) (*pb.StockInfo, error) {
	c.calls.Add(1)
	if c.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return c.ProviderServer.CheckStock(ctx, req)
}

type cluster struct {
	net    *network
	store  *registry.Store
	pool   *providerpool.Pool
	finder pb.FinderClient
	calls  atomic.Int32
}

type shop struct {
	addr  string
	stock map[uint32]supply.StockRecord
	hang  bool
	down  bool
}

// newCluster starts a registry, the given shops and a finder, all over
// in-memory connections. Shops are registered in the order given.
func newCluster(t testing.TB, shops ...shop) *cluster {
	t.Helper()

	c := &cluster{net: newNetwork()}

	store, err := registry.Open(registry.Options{Capacity: 10, Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	c.store = store

	c.net.serve(t, "registry", func(s *grpc.Server) {
		pb.RegisterRegistryServer(s, NewRegistryServer(store, zerolog.Nop()))
	})

	for _, sh := range shops {
		_, err := store.Register(supply.ProviderDescriptor{Address: sh.addr, Name: "shop " + sh.addr})
		require.NoError(t, err)
		if sh.down {
			continue
		}
		impl := countingProvider{
			ProviderServer: NewProviderServer(provider.NewStaticInventory(sh.stock)),
			calls:          &c.calls,
			hang:           sh.hang,
		}
		c.net.serve(t, sh.addr, func(s *grpc.Server) {
			pb.RegisterProviderServer(s, impl)
		})
	}

	reg, err := registryclient.Dial("passthrough:///registry", zerolog.Nop(),
		grpc.WithContextDialer(c.net.contextDialer))
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })

	c.pool = providerpool.New(c.net.dial, zerolog.Nop())
	t.Cleanup(func() { _ = c.pool.Close() })

	agg := service.NewAggregator(c.pool, service.AggregatorConfig{
		ProviderTimeout:      time.Minute,
		MaxConcurrentQueries: 4,
	}, nil, zerolog.Nop())
	svc := service.NewLookupService(reg, agg, sequence.New(0), nil, zerolog.Nop())

	c.net.serve(t, "finder", func(s *grpc.Server) {
		pb.RegisterFinderServer(s, NewFinderServer(svc, zerolog.Nop()))
	})
	c.finder = pb.NewFinderClient(c.net.conn(t, "finder"))
	return c
}

// chickenShops lists item 7 at A (5.0 x 3) and B (2.0 x 10).
func chickenShops() []shop {
	return []shop{
		{addr: "A", stock: map[uint32]supply.StockRecord{7: {Price: 5, Quantity: 3}}},
		{addr: "B", stock: map[uint32]supply.StockRecord{7: {Price: 2, Quantity: 10}}},
	}
}

// drop makes name unreachable for new connections.
func (n *network) drop(name string) {
	n.mu.Lock()
	delete(n.listeners, name)
	n.mu.Unlock()
}
