package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"supplyfinder/api/grpcserver"
	pb "supplyfinder/api/pb"
	"supplyfinder/config"
	"supplyfinder/infra/logging"
	"supplyfinder/jobs/broadcaster"
	"supplyfinder/registry"
)

func newRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Run the reference provider registry",
		Args:  cobra.NoArgs,
		RunE:  runRegistry,
	}
	config.AddRegistryFlags(cmd)
	return cmd
}

func runRegistry(cmd *cobra.Command, _ []string) error {
	cfg, err := load(cmd, config.LoadRegistry)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg.Log, "registry")
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	// ---------------- Store ----------------

	store, err := registry.Open(registry.Options{
		Capacity: cfg.Capacity,
		Announce: cfg.Kafka.Enabled(),
		Logger:   logging.Component(log, "store"),
	})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	// ---------------- Announcements ----------------

	if cfg.Kafka.Enabled() {
		producer, err := broadcaster.NewSyncProducer(cfg.Kafka.Brokers)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		bc := broadcaster.New(store, producer, cfg.Kafka.Topic, 0, logging.Component(log, "broadcaster"))
		defer func() { _ = bc.Close() }()
		go bc.Run(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.SelfAddress)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.SelfAddress, err)
	}

	srv := grpcserver.NewGRPCServer(log)
	pb.RegisterRegistryServer(srv, grpcserver.NewRegistryServer(store, log))
	grpcserver.EnableHealth(srv)

	log.Info().Int("capacity", cfg.Capacity).Bool("kafka", cfg.Kafka.Enabled()).Msg("registry ready")

	return serve(ctx, srv, lis, log)
}
