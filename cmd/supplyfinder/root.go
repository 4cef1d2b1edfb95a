package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"supplyfinder/config"
	"supplyfinder/infra/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "supplyfinder",
		Short:         "Find the cheapest providers that together cover a quantity of an item",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	config.AddLogFlags(root)

	root.AddCommand(
		newFinderCmd(),
		newRegistryCmd(),
		newProviderCmd(),
		newLookupCmd(),
	)
	return root
}

// load binds cmd's flags and the environment, then reads the role config.
func load[T any](cmd *cobra.Command, read func(*viper.Viper) (T, error)) (T, error) {
	v := config.New()
	if err := config.Bind(v, cmd); err != nil {
		var zero T
		return zero, err
	}
	return read(v)
}

func newLogger(cmd *cobra.Command, c config.Log, component string) (zerolog.Logger, error) {
	log, err := logging.New(logging.Options{
		Level:  c.Level,
		Format: c.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return log, err
	}
	return logging.Component(log, component), nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// serve runs srv on lis until ctx is done, then stops it gracefully.
func serve(ctx context.Context, srv *grpc.Server, lis net.Listener, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	log.Info().Str("addr", lis.Addr().String()).Msg("listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	srv.GracefulStop()
	if err := <-errCh; err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
