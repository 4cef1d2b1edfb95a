// Package registryclient talks to the registry: discovery for the finder,
// registration for providers.
package registryclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "supplyfinder/api/pb"
	"supplyfinder/domain/supply"
)

type Client struct {
	conn *grpc.ClientConn
	api  pb.RegistryClient
	log  zerolog.Logger
}

// Dial creates a client for the registry at target. The connection is lazy:
// an unreachable registry surfaces on the first call as
// ErrRegistryUnavailable.
func Dial(target string, log zerolog.Logger, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("registry %s: %w", target, err)
	}
	return &Client{
		conn: conn,
		api:  pb.NewRegistryClient(conn),
		log:  log,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// -------------------- Discovery --------------------

// Stream yields the providers listed for itemID as the registry sends them.
// A failure is yielded once, as the last element. The sequence is single
// use; range over a fresh Stream to enumerate again.
func (c *Client) Stream(ctx context.Context, itemID uint32) iter.Seq2[supply.ProviderDescriptor, error] {
	return func(yield func(supply.ProviderDescriptor, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stream, err := c.api.Discover(ctx, &pb.ItemID{ItemId: itemID})
		if err != nil {
			yield(supply.ProviderDescriptor{}, toError(ctx, err))
			return
		}
		for {
			info, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(supply.ProviderDescriptor{}, toError(ctx, err))
				return
			}
			if !yield(FromInfo(info), nil) {
				return
			}
		}
	}
}

// Discover reads the whole stream for itemID. If the stream ends with an
// error, whatever was received before it is discarded.
func (c *Client) Discover(ctx context.Context, itemID uint32) ([]supply.ProviderDescriptor, error) {
	var out []supply.ProviderDescriptor
	for p, err := range c.Stream(ctx, itemID) {
		if err != nil {
			if len(out) > 0 {
				c.log.Warn().Err(err).
					Uint32("item", itemID).
					Int("discarded", len(out)).
					Msg("discovery stream broke")
			}
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// -------------------- Registration --------------------

// Register announces p and returns how many providers the registry holds.
func (c *Client) Register(ctx context.Context, p supply.ProviderDescriptor) (uint32, error) {
	ack, err := c.api.Register(ctx, ToInfo(p))
	if err != nil {
		return 0, toError(ctx, err)
	}
	return ack.GetRegistered(), nil
}

// -------------------- Converters --------------------

func FromInfo(info *pb.ProviderInfo) supply.ProviderDescriptor {
	return supply.ProviderDescriptor{
		Address:  info.GetAddress(),
		Name:     info.GetName(),
		Location: info.GetLocation(),
	}
}

func ToInfo(p supply.ProviderDescriptor) *pb.ProviderInfo {
	return &pb.ProviderInfo{
		Address:  p.Address,
		Name:     p.Name,
		Location: p.Location,
	}
}

func toError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	st := status.Convert(err)
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", supply.ErrNotFound, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", supply.ErrConflict, st.Message())
	case codes.OutOfRange:
		return fmt.Errorf("%w: %s", supply.ErrCapacityExceeded, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", supply.ErrInvalidProvider, st.Message())
	default:
		return fmt.Errorf("%w: %s: %s", supply.ErrRegistryUnavailable, st.Code(), st.Message())
	}
}
