package main

import (
	"context"
	"fmt"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"supplyfinder/api/grpcserver"
	pb "supplyfinder/api/pb"
	"supplyfinder/config"
	"supplyfinder/infra/kafka"
	"supplyfinder/infra/logging"
	"supplyfinder/infra/providerpool"
	"supplyfinder/infra/registryclient"
	"supplyfinder/infra/sequence"
	"supplyfinder/infra/telemetry"
	"supplyfinder/service"
)

func newFinderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finder",
		Short: "Serve lookups over gRPC",
		Args:  cobra.NoArgs,
		RunE:  runFinder,
	}
	config.AddFinderFlags(cmd)
	return cmd
}

func runFinder(cmd *cobra.Command, _ []string) error {
	cfg, err := load(cmd, config.LoadFinder)
	if err != nil {
		return err
	}

	// ---------------- Logging ----------------

	log, err := newLogger(cmd, cfg.Log, "finder")
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	// ---------------- Tracing ----------------

	var tpOpts []sdktrace.TracerProviderOption
	if cfg.TraceStdout {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)
	defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()

	observers := service.Observers{telemetry.NewTracer(tp)}

	// ---------------- Metrics ----------------

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := telemetry.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	observers = append(observers, metrics)

	if cfg.MetricsAddress != "" {
		go func() {
			if err := telemetry.ServeMetrics(ctx, cfg.MetricsAddress, reg, log); err != nil {
				log.Error().Err(err).Msg("metrics server exited")
			}
		}()
	}

	// ---------------- Lookup events ----------------

	if cfg.Kafka.Enabled() {
		kafkaLog := logging.Component(log, "kafka")
		w := kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic, func(err error) {
			kafkaLog.Warn().Err(err).Msg("lookup event not delivered")
		})
		pub := kafka.NewEventPublisher(w, kafkaLog)
		defer func() { _ = pub.Close() }()
		observers = append(observers, pub)
	}

	// ---------------- Clients ----------------

	registry, err := registryclient.Dial(cfg.RegistryAddress, logging.Component(log, "registry-client"))
	if err != nil {
		return err
	}
	defer func() { _ = registry.Close() }()

	pool := providerpool.New(providerpool.GRPCDialer(), logging.Component(log, "provider-pool"))
	defer func() { _ = pool.Close() }()

	// ---------------- Service ----------------

	aggregator := service.NewAggregator(pool, service.AggregatorConfig{
		ProviderTimeout:      cfg.ProviderTimeout,
		MaxConcurrentQueries: cfg.MaxConcurrentQueries,
	}, observers, log)

	svc := service.NewLookupService(
		registry,
		aggregator,
		sequence.New(0),
		observers,
		log,
	)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.SelfAddress)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.SelfAddress, err)
	}

	srv := grpcserver.NewGRPCServer(log)
	pb.RegisterFinderServer(srv, grpcserver.NewFinderServer(svc, log))
	grpcserver.EnableHealth(srv)

	log.Info().
		Str("registry", cfg.RegistryAddress).
		Dur("provider_timeout", cfg.ProviderTimeout).
		Int("max_concurrent_queries", cfg.MaxConcurrentQueries).
		Bool("kafka", cfg.Kafka.Enabled()).
		Msg("finder ready")

	return serve(ctx, srv, lis, log)
}
