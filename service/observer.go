package service

import (
	"context"
	"time"

	"supplyfinder/domain/supply"
)

// Phase is a step of a lookup. Observers are told when each one starts and
// finishes.
type Phase uint8

const (
	PhaseDiscovering Phase = iota + 1
	PhaseAggregating
	PhaseAllocating
	PhaseResponding
)

func (p Phase) String() string {
	switch p {
	case PhaseDiscovering:
		return "discovering"
	case PhaseAggregating:
		return "aggregating"
	case PhaseAllocating:
		return "allocating"
	case PhaseResponding:
		return "responding"
	default:
		return "unknown"
	}
}

// Summary describes a finished lookup.
type Summary struct {
	LookupID   uint64
	ItemID     uint32
	Quantity   int64
	Discovered int
	Collected  int
	Selected   int
	Duration   time.Duration
	Err        error
}

// Observer is called at phase boundaries. Implementations must be safe for
// concurrent use and must not block the lookup.
//
// PhaseStarted returns the context the phase runs under, so an observer can
// attach a span; PhaseFinished receives that same context.
type Observer interface {
	PhaseStarted(ctx context.Context, lookupID uint64, phase Phase) context.Context
	PhaseFinished(ctx context.Context, lookupID uint64, phase Phase, err error)
	ProviderFailed(ctx context.Context, lookupID uint64, provider supply.ProviderDescriptor, err error)
	LookupFinished(ctx context.Context, s Summary)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) PhaseStarted(ctx context.Context, _ uint64, _ Phase) context.Context {
	return ctx
}

func (NopObserver) PhaseFinished(context.Context, uint64, Phase, error) {}

func (NopObserver) ProviderFailed(context.Context, uint64, supply.ProviderDescriptor, error) {}

func (NopObserver) LookupFinished(context.Context, Summary) {}

// Observers fans every call out to each member in order.
type Observers []Observer

func (o Observers) PhaseStarted(ctx context.Context, lookupID uint64, phase Phase) context.Context {
	for _, ob := range o {
		ctx = ob.PhaseStarted(ctx, lookupID, phase)
	}
	return ctx
}

func (o Observers) PhaseFinished(ctx context.Context, lookupID uint64, phase Phase, err error) {
	for _, ob := range o {
		ob.PhaseFinished(ctx, lookupID, phase, err)
	}
}

func (o Observers) ProviderFailed(ctx context.Context, lookupID uint64, provider supply.ProviderDescriptor, err error) {
	for _, ob := range o {
		ob.ProviderFailed(ctx, lookupID, provider, err)
	}
}

func (o Observers) LookupFinished(ctx context.Context, s Summary) {
	for _, ob := range o {
		ob.LookupFinished(ctx, s)
	}
}
