package grpcserver

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// NewGRPCServer builds a server that logs every RPC through log.
func NewGRPCServer(log zerolog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryLogger(log)),
		grpc.ChainStreamInterceptor(StreamLogger(log)),
	}, opts...)
	return grpc.NewServer(opts...)
}

// EnableHealth registers the health and reflection services and marks every
// service already registered on srv as serving. Call it after the role's
// own services are registered.
func EnableHealth(srv *grpc.Server) *health.Server {
	hs := health.NewServer()
	for name := range srv.GetServiceInfo() {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return hs
}

// -------------------- Interceptors --------------------

func UnaryLogger(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logRPC(log, info.FullMethod, start, err)
		return resp, err
	}
}

func StreamLogger(log zerolog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()
		err := handler(srv, ss)
		logRPC(log, info.FullMethod, start, err)
		return err
	}
}

func logRPC(log zerolog.Logger, method string, start time.Time, err error) {
	ev := log.Info()
	if strings.HasPrefix(method, "/grpc.") {
		ev = log.Debug()
	}
	ev.Str("method", method).
		Stringer("code", status.Code(err)).
		Dur("took", time.Since(start)).
		Msg("[gRPC]")
}
