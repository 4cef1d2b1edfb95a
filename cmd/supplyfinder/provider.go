package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"supplyfinder/api/grpcserver"
	pb "supplyfinder/api/pb"
	"supplyfinder/config"
	"supplyfinder/domain/supply"
	"supplyfinder/infra/logging"
	"supplyfinder/infra/registryclient"
	"supplyfinder/provider"
)

const announceTimeout = 5 * time.Second

func newProviderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Run a reference provider with a generated inventory",
		Args:  cobra.NoArgs,
		RunE:  runProvider,
	}
	config.AddProviderFlags(cmd)
	return cmd
}

func runProvider(cmd *cobra.Command, _ []string) error {
	cfg, err := load(cmd, config.LoadProvider)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg.Log, "provider")
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	// ---------------- Inventory ----------------

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	inv := provider.NewInventory(seed)
	self := provider.Profile(seed, supply.ProviderDescriptor{
		Address:  cfg.Advertise(),
		Name:     cfg.Name,
		Location: cfg.Location,
	})

	log.Info().
		Uint64("seed", seed).
		Str("name", self.Name).
		Str("location", self.Location).
		Interface("items", inv.Items()).
		Msg("inventory stocked")

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.SelfAddress)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.SelfAddress, err)
	}

	srv := grpcserver.NewGRPCServer(log)
	pb.RegisterProviderServer(srv, grpcserver.NewProviderServer(inv))
	grpcserver.EnableHealth(srv)

	// ---------------- Registration ----------------

	reg, err := registryclient.Dial(cfg.RegistryAddress, logging.Component(log, "registry-client"))
	if err != nil {
		_ = lis.Close()
		return err
	}
	defer func() { _ = reg.Close() }()

	go func() {
		actx, cancel := context.WithTimeout(ctx, announceTimeout)
		defer cancel()
		if err := provider.Announce(actx, reg, self, log); err != nil {
			log.Error().Err(err).Str("registry", cfg.RegistryAddress).Msg("registration failed")
		}
	}()

	return serve(ctx, srv, lis, log)
}
