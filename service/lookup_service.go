package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"supplyfinder/domain/allocation"
	"supplyfinder/domain/supply"
	"supplyfinder/infra/sequence"
)

// Discoverer lists the providers the registry knows for an item.
type Discoverer interface {
	Discover(ctx context.Context, itemID uint32) ([]supply.ProviderDescriptor, error)
}

// Result is a completed lookup.
type Result struct {
	LookupID uint64
	ItemID   uint32
	Entries  []supply.ShopEntry
}

/*
LookupService is the only entry point for lookups.

Per request it runs
- discovery (registry)
- aggregation (providers, concurrently)
- allocation (cheapest first)
and hands the selection to the transport. The provider pool behind the
aggregator is the only state shared between requests.
*/
type LookupService struct {
	registry   Discoverer
	aggregator *Aggregator
	seq        *sequence.Sequencer
	obs        Observer
	log        zerolog.Logger
}

// NewLookupService wires all dependencies.
// No globals. No magic.
func NewLookupService(
	registry Discoverer,
	aggregator *Aggregator,
	seq *sequence.Sequencer,
	obs Observer,
	log zerolog.Logger,
) *LookupService {
	if obs == nil {
		obs = NopObserver{}
	}
	return &LookupService{
		registry:   registry,
		aggregator: aggregator,
		seq:        seq,
		obs:        obs,
		log:        log,
	}
}

// -------------------- Queries --------------------

// Lookup answers q with one batch.
func (s *LookupService) Lookup(ctx context.Context, q supply.ItemQuery) (Result, error) {
	return s.run(ctx, q, nil)
}

// Stream answers q entry by entry through emit, cheapest first. An emit
// error aborts the lookup and is returned as is.
func (s *LookupService) Stream(
	ctx context.Context,
	q supply.ItemQuery,
	emit func(supply.ShopEntry) error,
) (Result, error) {
	return s.run(ctx, q, emit)
}

// -------------------- State machine --------------------

type lookup struct {
	id    uint64
	state State
	log   zerolog.Logger
}

func (l *lookup) advance(to State) {
	if !CanTransition(l.state, to) {
		l.log.Error().
			Stringer("from", l.state).
			Stringer("to", to).
			Msg("illegal lookup transition")
	}
	l.log.Trace().Stringer("from", l.state).Stringer("to", to).Msg("transition")
	l.state = to
}

func (s *LookupService) run(
	ctx context.Context,
	q supply.ItemQuery,
	emit func(supply.ShopEntry) error,
) (res Result, err error) {
	start := time.Now()
	l := &lookup{id: s.seq.Next(), state: StateIdle}
	l.log = s.log.With().Uint64("lookup", l.id).Logger()
	res.LookupID = l.id

	sum := Summary{LookupID: l.id, Quantity: q.RequestedQuantity}
	defer func() {
		if err != nil {
			l.advance(StateErrored)
			res.Entries = nil
		} else {
			l.advance(StateDone)
		}
		sum.Selected = len(res.Entries)
		sum.Duration = time.Since(start)
		sum.Err = err
		s.finish(ctx, l, sum)
	}()

	// Idle
	if q.RequestedQuantity <= 0 {
		return res, fmt.Errorf("%w: %d", supply.ErrInvalidQuantity, q.RequestedQuantity)
	}
	itemID, err := supply.ResolveQuery(q)
	if err != nil {
		return res, err
	}
	res.ItemID, sum.ItemID = itemID, itemID

	// Discovering
	l.advance(StateDiscovering)
	providers, err := s.discover(ctx, l.id, itemID)
	if err != nil {
		return res, err
	}
	sum.Discovered = len(providers)

	// Aggregating
	l.advance(StateAggregating)
	pctx := s.obs.PhaseStarted(ctx, l.id, PhaseAggregating)
	entries, err := s.aggregator.Collect(pctx, l.id, itemID, providers)
	s.obs.PhaseFinished(pctx, l.id, PhaseAggregating, err)
	if err != nil {
		return res, err
	}
	sum.Collected = len(entries)

	// Allocating
	l.advance(StateAllocating)
	pctx = s.obs.PhaseStarted(ctx, l.id, PhaseAllocating)
	selected := allocation.Select(entries, q.RequestedQuantity)
	s.obs.PhaseFinished(pctx, l.id, PhaseAllocating, nil)

	// Responding
	l.advance(StateResponding)
	if len(selected) == 0 {
		return res, fmt.Errorf("%w: no provider has item %d in stock", supply.ErrNotFound, itemID)
	}
	res.Entries = selected
	if emit != nil {
		pctx = s.obs.PhaseStarted(ctx, l.id, PhaseResponding)
		err = s.respond(selected, emit)
		s.obs.PhaseFinished(pctx, l.id, PhaseResponding, err)
	}
	return res, err
}

func (s *LookupService) discover(
	ctx context.Context,
	lookupID uint64,
	itemID uint32,
) ([]supply.ProviderDescriptor, error) {
	pctx := s.obs.PhaseStarted(ctx, lookupID, PhaseDiscovering)

	providers, err := s.registry.Discover(pctx, itemID)
	if err == nil {
		providers = dedupe(providers)
		if len(providers) == 0 {
			err = fmt.Errorf("%w: no provider listed for item %d", supply.ErrNotFound, itemID)
		}
	}

	s.obs.PhaseFinished(pctx, lookupID, PhaseDiscovering, err)
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *LookupService) respond(selected []supply.ShopEntry, emit func(supply.ShopEntry) error) error {
	for _, e := range selected {
		if err := emit(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *LookupService) finish(ctx context.Context, l *lookup, sum Summary) {
	ev := l.log.Info()
	if sum.Err != nil {
		ev = l.log.Warn().Err(sum.Err)
	}
	ev.Uint32("item", sum.ItemID).
		Int64("quantity", sum.Quantity).
		Int("discovered", sum.Discovered).
		Int("collected", sum.Collected).
		Int("selected", sum.Selected).
		Dur("took", sum.Duration).
		Msg("lookup finished")

	s.obs.LookupFinished(ctx, sum)
}

// dedupe keeps the first descriptor per address and drops empty addresses.
func dedupe(providers []supply.ProviderDescriptor) []supply.ProviderDescriptor {
	seen := make(map[string]struct{}, len(providers))
	out := make([]supply.ProviderDescriptor, 0, len(providers))
	for _, p := range providers {
		if p.Address == "" {
			continue
		}
		if _, ok := seen[p.Address]; ok {
			continue
		}
		seen[p.Address] = struct{}{}
		out = append(out, p)
	}
	return out
}
