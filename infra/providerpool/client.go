package providerpool

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "supplyfinder/api/pb"
	"supplyfinder/domain/supply"
)

// Client is the handle for one provider.
type Client struct {
	address string
	conn    *grpc.ClientConn
	api     pb.ProviderClient
}

func newClient(address string, conn *grpc.ClientConn) *Client {
	return &Client{
		address: address,
		conn:    conn,
		api:     pb.NewProviderClient(conn),
	}
}

func (c *Client) Address() string {
	return c.address
}

// CheckStock asks the provider for its stock of itemID. A provider that does
// not carry the item yields ErrNotCarried; anything else that goes wrong
// yields ErrProviderUnavailable.
func (c *Client) CheckStock(ctx context.Context, itemID uint32) (supply.StockRecord, error) {
	resp, err := c.api.CheckStock(ctx, &pb.ItemID{ItemId: itemID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return supply.StockRecord{}, fmt.Errorf("%w: %s: item %d", supply.ErrNotCarried, c.address, itemID)
		}
		return supply.StockRecord{}, fmt.Errorf("%w: %s: %v", supply.ErrProviderUnavailable, c.address, err)
	}
	return supply.StockRecord{
		Price:    resp.GetPrice(),
		Quantity: resp.GetQuantity(),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
