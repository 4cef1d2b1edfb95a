package grpcserver

import (
	pb "supplyfinder/api/pb"
	"supplyfinder/domain/supply"
)

// -------------------- Converters --------------------

func toQuery(req *pb.LookupRequest) supply.ItemQuery {
	return supply.ItemQuery{
		ItemID:            req.GetItemId(),
		ItemName:          req.GetItemName(),
		RequestedQuantity: req.GetQuantity(),
	}
}

func toDescriptor(p *pb.ProviderInfo) supply.ProviderDescriptor {
	return supply.ProviderDescriptor{
		Address:  p.GetAddress(),
		Name:     p.GetName(),
		Location: p.GetLocation(),
	}
}

func fromDescriptor(p supply.ProviderDescriptor) *pb.ProviderInfo {
	return &pb.ProviderInfo{
		Address:  p.Address,
		Name:     p.Name,
		Location: p.Location,
	}
}

func fromShopEntry(e supply.ShopEntry) *pb.ShopEntry {
	return &pb.ShopEntry{
		Provider: fromDescriptor(e.Provider),
		Stock: &pb.StockInfo{
			Price:    e.Stock.Price,
			Quantity: e.Stock.Quantity,
		},
	}
}
