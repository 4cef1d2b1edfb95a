package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"supplyfinder/domain/supply"
)

const (
	DefaultProviderTimeout      = 2 * time.Second
	DefaultMaxConcurrentQueries = 16
)

// StockSource answers one stock query against the provider at address.
// The provider client pool is the production implementation.
type StockSource interface {
	CheckStock(ctx context.Context, address string, itemID uint32) (supply.StockRecord, error)
}

// AggregatorConfig bounds the fan-out.
type AggregatorConfig struct {
	ProviderTimeout      time.Duration
	MaxConcurrentQueries int
}

// Aggregator queries every discovered provider for one item and keeps the
// answers that can be allocated.
type Aggregator struct {
	source  StockSource
	timeout time.Duration
	limit   int
	obs     Observer
	log     zerolog.Logger
}

func NewAggregator(
	source StockSource,
	cfg AggregatorConfig,
	obs Observer,
	log zerolog.Logger,
) *Aggregator {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultProviderTimeout
	}
	if cfg.MaxConcurrentQueries <= 0 {
		cfg.MaxConcurrentQueries = DefaultMaxConcurrentQueries
	}
	if obs == nil {
		obs = NopObserver{}
	}
	return &Aggregator{
		source:  source,
		timeout: cfg.ProviderTimeout,
		limit:   cfg.MaxConcurrentQueries,
		obs:     obs,
		log:     log,
	}
}

// Collect asks each provider for itemID and returns the usable answers in
// the order the providers were given. It waits for every dispatched query.
//
// A failing provider is logged and skipped. The only error is the caller's
// own cancellation, in which case nothing is returned.
func (a *Aggregator) Collect(
	ctx context.Context,
	lookupID uint64,
	itemID uint32,
	providers []supply.ProviderDescriptor,
) ([]supply.ShopEntry, error) {
	stock := make([]supply.StockRecord, len(providers))

	var g errgroup.Group
	g.SetLimit(a.limit)

	for i, p := range providers {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			stock[i] = a.query(ctx, lookupID, itemID, p)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]supply.ShopEntry, 0, len(providers))
	for i, p := range providers {
		if stock[i].Usable() {
			out = append(out, supply.ShopEntry{Provider: p, Stock: stock[i]})
		}
	}
	return out, nil
}

// query never fails: any problem collapses to the NotCarried sentinel.
func (a *Aggregator) query(
	ctx context.Context,
	lookupID uint64,
	itemID uint32,
	p supply.ProviderDescriptor,
) supply.StockRecord {
	qctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	rec, err := a.source.CheckStock(qctx, p.Address, itemID)
	if err == nil && !rec.Usable() {
		err = unusable(rec)
	}
	if err != nil {
		if ctx.Err() == nil {
			a.fail(ctx, lookupID, p, err)
		}
		return supply.StockRecord{Price: supply.NotCarried}
	}
	return rec
}

func (a *Aggregator) fail(ctx context.Context, lookupID uint64, p supply.ProviderDescriptor, err error) {
	ev := a.log.Warn()
	if errors.Is(err, supply.ErrNotCarried) {
		ev = a.log.Debug()
	}
	ev.Err(err).
		Uint64("lookup", lookupID).
		Str("provider", p.Address).
		Msg("provider skipped")

	a.obs.ProviderFailed(ctx, lookupID, p, err)
}

func unusable(rec supply.StockRecord) error {
	if rec.Quantity > 0 {
		return fmt.Errorf("%w: price %v", supply.ErrProviderUnavailable, rec.Price)
	}
	return fmt.Errorf("%w: quantity %d", supply.ErrNotCarried, rec.Quantity)
}
