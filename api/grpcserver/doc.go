// Package grpcserver adapts the finder, registry and provider to their gRPC
// services. Domain errors become status codes here and nowhere else.
package grpcserver
