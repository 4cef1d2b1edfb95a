package grpcserver

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	pb "supplyfinder/api/pb"
	"supplyfinder/domain/supply"
	"supplyfinder/service"
)

// FinderServer adapts LookupService to gRPC.
type FinderServer struct {
	pb.UnimplementedFinderServer
	svc *service.LookupService
	log zerolog.Logger
}

func NewFinderServer(svc *service.LookupService, log zerolog.Logger) *FinderServer {
	return &FinderServer{svc: svc, log: log}
}

// -------------------- Queries --------------------

func (s *FinderServer) Lookup(
	ctx context.Context,
	req *pb.LookupRequest,
) (*pb.LookupResponse, error) {
	res, err := s.svc.Lookup(ctx, toQuery(req))
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.LookupResponse{
		LookupId: res.LookupID,
		Entries:  make([]*pb.ShopEntry, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		resp.Entries = append(resp.Entries, fromShopEntry(e))
	}

	s.log.Debug().
		Uint64("lookup", res.LookupID).
		Str("item", req.GetItemName()).
		Uint32("item_id", res.ItemID).
		Int64("quantity", req.GetQuantity()).
		Int("entries", len(resp.Entries)).
		Msg("[gRPC] Lookup")

	return resp, nil
}

func (s *FinderServer) LookupStream(
	req *pb.LookupRequest,
	stream grpc.ServerStreamingServer[pb.ShopEntry],
) error {
	res, err := s.svc.Stream(stream.Context(), toQuery(req), func(e supply.ShopEntry) error {
		return stream.Send(fromShopEntry(e))
	})
	if err != nil {
		return toStatus(err)
	}

	s.log.Debug().
		Uint64("lookup", res.LookupID).
		Uint32("item_id", res.ItemID).
		Int("entries", len(res.Entries)).
		Msg("[gRPC] LookupStream")

	return nil
}
