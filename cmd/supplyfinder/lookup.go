package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "supplyfinder/api/pb"
	"supplyfinder/config"
)

func newLookupCmd() *cobra.Command {
	var stream bool

	cmd := &cobra.Command{
		Use:   "lookup <item> <quantity>",
		Short: "Ask the finder which providers to buy from",
		Long: `Ask the finder which providers to buy from.

<item> is a catalog name (apple, egg, milk, flour, water, butter, cheese,
chicken, yeast) or a numeric item id.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, config.LoadLookup)
			if err != nil {
				return err
			}
			req, err := parseLookup(args[0], args[1])
			if err != nil {
				return err
			}

			conn, err := grpc.NewClient(cfg.FinderAddress,
				grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("finder %s: %w", cfg.FinderAddress, err)
			}
			defer func() { _ = conn.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			entries, err := lookup(ctx, pb.NewFinderClient(conn), req, stream)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}
	config.AddLookupFlags(cmd)
	cmd.Flags().BoolVar(&stream, "stream", false, "Use the streaming RPC")
	return cmd
}

// parseLookup builds the request for an item name or id and a quantity.
func parseLookup(item, quantity string) (*pb.LookupRequest, error) {
	q, err := strconv.ParseInt(quantity, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", quantity, err)
	}
	if q <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", q)
	}

	req := &pb.LookupRequest{Quantity: q}
	if id, err := strconv.ParseUint(item, 10, 32); err == nil {
		req.ItemId = uint32(id)
	} else {
		req.ItemName = strings.TrimSpace(item)
	}
	return req, nil
}

func lookup(ctx context.Context, client pb.FinderClient, req *pb.LookupRequest, stream bool) ([]*pb.ShopEntry, error) {
	if !stream {
		resp, err := client.Lookup(ctx, req)
		if err != nil {
			return nil, err
		}
		return resp.GetEntries(), nil
	}

	s, err := client.LookupStream(ctx, req)
	if err != nil {
		return nil, err
	}
	var out []*pb.ShopEntry
	for {
		e, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func printEntries(w io.Writer, entries []*pb.ShopEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDRESS\tNAME\tLOCATION\tPRICE\tQUANTITY")
	for _, e := range entries {
		p, s := e.GetProvider(), e.GetStock()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d\n",
			p.GetAddress(), p.GetName(), p.GetLocation(), s.GetPrice(), s.GetQuantity())
	}
	return tw.Flush()
}
