package provider

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"supplyfinder/domain/supply"
)

// Registrar is the registration side of the registry client.
type Registrar interface {
	Register(ctx context.Context, p supply.ProviderDescriptor) (uint32, error)
}

// Announce registers p with the registry. A registry that already knows p is
// not an error.
func Announce(ctx context.Context, r Registrar, p supply.ProviderDescriptor, log zerolog.Logger) error {
	n, err := r.Register(ctx, p)
	switch {
	case errors.Is(err, supply.ErrConflict):
		log.Info().Str("address", p.Address).Msg("already registered")
		return nil
	case err != nil:
		return err
	}
	log.Info().
		Str("address", p.Address).
		Str("name", p.Name).
		Uint32("registered", n).
		Msg("registered with registry")
	return nil
}
