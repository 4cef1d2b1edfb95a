package telemetry

import (
	"context"
	"errors"

	"supplyfinder/domain/supply"
)

// Outcome buckets a lookup result for labels and attributes.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, supply.ErrNotFound):
		return "not_found"
	case errors.Is(err, supply.ErrRegistryUnavailable):
		return "unavailable"
	case errors.Is(err, supply.ErrInvalidQuantity):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
