package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"supplyfinder/domain/supply"
)

// toStatus maps a domain error to the status the caller sees.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, supply.ErrNotFound), errors.Is(err, supply.ErrNotCarried):
		return codes.NotFound
	case errors.Is(err, supply.ErrRegistryUnavailable), errors.Is(err, supply.ErrProviderUnavailable):
		return codes.Unavailable
	case errors.Is(err, supply.ErrInvalidQuantity), errors.Is(err, supply.ErrInvalidProvider):
		return codes.InvalidArgument
	case errors.Is(err, supply.ErrCapacityExceeded):
		return codes.OutOfRange
	case errors.Is(err, supply.ErrConflict):
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}
