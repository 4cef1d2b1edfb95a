package grpcserver

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	pb "supplyfinder/api/pb"
	"supplyfinder/registry"
)

// RegistryServer adapts registry.Store to gRPC.
type RegistryServer struct {
	pb.UnimplementedRegistryServer
	store *registry.Store
	log   zerolog.Logger
}

func NewRegistryServer(store *registry.Store, log zerolog.Logger) *RegistryServer {
	return &RegistryServer{store: store, log: log}
}

// -------------------- Commands --------------------

func (s *RegistryServer) Register(
	ctx context.Context,
	req *pb.ProviderInfo,
) (*pb.RegisterAck, error) {
	n, err := s.store.Register(toDescriptor(req))
	if err != nil {
		s.log.Info().Err(err).Str("address", req.GetAddress()).Msg("[gRPC] Register rejected")
		return nil, toStatus(err)
	}

	return &pb.RegisterAck{
		Address:    req.GetAddress(),
		Registered: uint32(n),
	}, nil
}

// -------------------- Queries --------------------

func (s *RegistryServer) Discover(
	req *pb.ItemID,
	stream grpc.ServerStreamingServer[pb.ProviderInfo],
) error {
	providers, err := s.store.Providers(req.GetItemId())
	if err != nil {
		return toStatus(err)
	}

	for _, p := range providers {
		if err := stream.Send(fromDescriptor(p)); err != nil {
			return err
		}
	}

	s.log.Debug().
		Uint32("item_id", req.GetItemId()).
		Int("providers", len(providers)).
		Msg("[gRPC] Discover")

	return nil
}
