package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"supplyfinder/domain/supply"
)

type fakeRegistry struct {
	providers map[uint32][]supply.ProviderDescriptor
	err       error
	calls     atomic.Int32
}

func (f *fakeRegistry) Discover(ctx context.Context, itemID uint32) ([]supply.ProviderDescriptor, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ps, ok := f.providers[itemID]
	if !ok {
		return nil, supply.ErrNotFound
	}
	return append([]supply.ProviderDescriptor(nil), ps...), nil
}

type stockAnswer struct {
	rec   supply.StockRecord
	err   error
	delay time.Duration
}

type fakeStock struct {
	answers map[string]stockAnswer

	mu       sync.Mutex
	calls    map[string]int
	inFlight int
	peak     int
}

func newFakeStock(answers map[string]stockAnswer) *fakeStock {
	return &fakeStock{answers: answers, calls: make(map[string]int)}
}

func (f *fakeStock) CheckStock(ctx context.Context, address string, _ uint32) (supply.StockRecord, error) {
	f.mu.Lock()
	f.calls[address]++
	f.inFlight++
	f.peak = max(f.peak, f.inFlight)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	a, ok := f.answers[address]
	if !ok {
		return supply.StockRecord{}, supply.ErrProviderUnavailable
	}
	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			return supply.StockRecord{}, ctx.Err()
		}
	}
	return a.rec, a.err
}

func (f *fakeStock) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeStock) callsFor(address string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[address]
}

type event struct {
	kind  string
	phase Phase
	addr  string
	err   error
}

type recordingObserver struct {
	mu      sync.Mutex
	events  []event
	summary []Summary
}

func (r *recordingObserver) add(e event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recordingObserver) PhaseStarted(ctx context.Context, _ uint64, phase Phase) context.Context {
	r.add(event{kind: "start", phase: phase})
	return ctx
}

func (r *recordingObserver) PhaseFinished(_ context.Context, _ uint64, phase Phase, err error) {
	r.add(event{kind: "finish", phase: phase, err: err})
}

func (r *recordingObserver) ProviderFailed(_ context.Context, _ uint64, p supply.ProviderDescriptor, err error) {
	r.add(event{kind: "provider", addr: p.Address, err: err})
}

func (r *recordingObserver) LookupFinished(_ context.Context, s Summary) {
	r.mu.Lock()
	r.summary = append(r.summary, s)
	r.mu.Unlock()
}

func (r *recordingObserver) phases() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.kind != "provider" {
			out = append(out, e.kind+":"+e.phase.String())
		}
	}
	return out
}

func (r *recordingObserver) failedProviders() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.kind == "provider" {
			out = append(out, e.addr)
		}
	}
	return out
}
