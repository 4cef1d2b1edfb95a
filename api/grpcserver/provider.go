package grpcserver

import (
	"context"

	pb "supplyfinder/api/pb"
	"supplyfinder/provider"
)

// ProviderServer adapts an Inventory to gRPC.
type ProviderServer struct {
	pb.UnimplementedProviderServer
	inv *provider.Inventory
}

func NewProviderServer(inv *provider.Inventory) *ProviderServer {
	return &ProviderServer{inv: inv}
}

func (s *ProviderServer) CheckStock(
	ctx context.Context,
	req *pb.ItemID,
) (*pb.StockInfo, error) {
	rec, err := s.inv.CheckStock(req.GetItemId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.StockInfo{
		Price:    rec.Price,
		Quantity: rec.Quantity,
	}, nil
}
