package supply

import "errors"

var (
	// ErrNotFound: unknown item, unresolvable name, or nothing usable.
	ErrNotFound = errors.New("not found")

	// ErrRegistryUnavailable means discovery could not complete.
	ErrRegistryUnavailable = errors.New("registry unavailable")

	// ErrProviderUnavailable covers one failed provider query. It is
	// recovered inside the aggregator and never reaches a caller.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNotCarried is returned by a provider that does not stock the item.
	ErrNotCarried = errors.New("item not carried")

	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCapacityExceeded = errors.New("registry capacity exceeded")
	ErrConflict         = errors.New("provider already registered")
	ErrInvalidProvider  = errors.New("invalid provider descriptor")
)
