package providerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"supplyfinder/domain/supply"
)

var ErrClosed = errors.New("provider pool closed")

// Dialer builds the connection for a provider address.
type Dialer func(address string) (*grpc.ClientConn, error)

// GRPCDialer dials address with insecure transport credentials plus opts.
// Connections are lazy; nothing touches the network until the first RPC.
func GRPCDialer(opts ...grpc.DialOption) Dialer {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return func(address string) (*grpc.ClientConn, error) {
		return grpc.NewClient(address, opts...)
	}
}

// Pool maps provider address to client handle.
type Pool struct {
	handles sync.Map // address -> *Client
	group   singleflight.Group
	dial    Dialer
	size    atomic.Int64
	closed  atomic.Bool
	log     zerolog.Logger
}

func New(dial Dialer, log zerolog.Logger) *Pool {
	if dial == nil {
		dial = GRPCDialer()
	}
	return &Pool{dial: dial, log: log}
}

// GetOrCreate returns the handle for address, building it on first use.
func (p *Pool) GetOrCreate(address string) (*Client, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}
	if v, ok := p.handles.Load(address); ok {
		return v.(*Client), nil
	}

	v, err, _ := p.group.Do(address, func() (any, error) {
		if v, ok := p.handles.Load(address); ok {
			return v, nil
		}
		conn, err := p.dial(address)
		if err != nil {
			return nil, fmt.Errorf("%w: dial %s: %v", supply.ErrProviderUnavailable, address, err)
		}
		c := newClient(address, conn)

		actual, loaded := p.handles.LoadOrStore(address, c)
		if loaded {
			_ = c.Close()
		} else {
			p.size.Add(1)
			p.log.Debug().Str("provider", address).Msg("client created")
		}
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Client), nil
}

// CheckStock resolves the handle for address and queries it.
func (p *Pool) CheckStock(ctx context.Context, address string, itemID uint32) (supply.StockRecord, error) {
	c, err := p.GetOrCreate(address)
	if err != nil {
		return supply.StockRecord{}, err
	}
	return c.CheckStock(ctx, itemID)
}

// Len is the number of handles held.
func (p *Pool) Len() int {
	return int(p.size.Load())
}

// Close releases every connection. The pool is unusable afterwards.
func (p *Pool) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	var errs []error
	p.handles.Range(func(key, value any) bool {
		if err := value.(*Client).Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", key, err))
		}
		return true
	})
	return errors.Join(errs...)
}
