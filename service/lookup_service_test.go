package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplyfinder/domain/supply"
	"supplyfinder/infra/sequence"
)

type fixture struct {
	registry *fakeRegistry
	stock    *fakeStock
	obs      *recordingObserver
	svc      *LookupService
}

func newFixture(reg map[uint32][]supply.ProviderDescriptor, answers map[string]stockAnswer) *fixture {
	f := &fixture{
		registry: &fakeRegistry{providers: reg},
		stock:    newFakeStock(answers),
		obs:      &recordingObserver{},
	}
	agg := NewAggregator(f.stock, AggregatorConfig{ProviderTimeout: time.Second}, f.obs, zerolog.Nop())
	f.svc = NewLookupService(f.registry, agg, sequence.New(0), f.obs, zerolog.Nop())
	return f
}

// Item 7 is listed at A (5.0 x 3) and B (2.0 x 10).
func chickenFixture() *fixture {
	return newFixture(
		map[uint32][]supply.ProviderDescriptor{7: providers("A", "B")},
		map[string]stockAnswer{"A": stock(5, 3), "B": stock(2, 10)},
	)
}

func entryAddrs(entries []supply.ShopEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Provider.Address)
	}
	return out
}

func TestLookupSingleProviderCovers(t *testing.T) {
	f := chickenFixture()

	res, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 7, RequestedQuantity: 8})
	require.NoError(t, err)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "B", res.Entries[0].Provider.Address)
	assert.Equal(t, supply.StockRecord{Price: 2, Quantity: 10}, res.Entries[0].Stock)
	assert.Equal(t, uint32(7), res.ItemID)
}

func TestLookupUndersupplyReturnsAll(t *testing.T) {
	f := chickenFixture()

	res, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemName: "Chicken", RequestedQuantity: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, entryAddrs(res.Entries))
}

func TestLookupUnknownItemSkipsProviders(t *testing.T) {
	f := chickenFixture()

	_, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 99, RequestedQuantity: 1})
	require.ErrorIs(t, err, supply.ErrNotFound)
	assert.Zero(t, f.stock.totalCalls())
}

func TestLookupUnreachableProviderIgnored(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{3: providers("gone", "up")},
		map[string]stockAnswer{"up": stock(1.5, 4)},
	)

	res, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 3, RequestedQuantity: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"up"}, entryAddrs(res.Entries))
	assert.Equal(t, []string{"gone"}, f.obs.failedProviders())
}

func TestLookupNothingUsableIsNotFound(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{3: providers("x", "y")},
		map[string]stockAnswer{"y": stock(supply.NotCarried, 9)},
	)

	_, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 3, RequestedQuantity: 1})
	require.ErrorIs(t, err, supply.ErrNotFound)
	assert.Equal(t, 2, f.stock.totalCalls())
}

func TestLookupEmptyDiscoveryIsNotFound(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{3: {{Address: ""}}},
		nil,
	)

	_, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 3, RequestedQuantity: 1})
	require.ErrorIs(t, err, supply.ErrNotFound)
	assert.Zero(t, f.stock.totalCalls())
}

func TestLookupRejectsQueriesBeforeDiscovery(t *testing.T) {
	f := chickenFixture()

	_, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 7, RequestedQuantity: 0})
	require.ErrorIs(t, err, supply.ErrInvalidQuantity)

	_, err = f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 7, RequestedQuantity: -4})
	require.ErrorIs(t, err, supply.ErrInvalidQuantity)

	_, err = f.svc.Lookup(context.Background(), supply.ItemQuery{ItemName: "caviar", RequestedQuantity: 1})
	require.ErrorIs(t, err, supply.ErrNotFound)

	assert.Zero(t, f.registry.calls.Load())
}

func TestLookupRegistryUnavailable(t *testing.T) {
	f := chickenFixture()
	f.registry.err = fmt.Errorf("%w: connection refused", supply.ErrRegistryUnavailable)

	res, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 7, RequestedQuantity: 1})
	require.ErrorIs(t, err, supply.ErrRegistryUnavailable)
	assert.Empty(t, res.Entries)
	assert.Zero(t, f.stock.totalCalls())
}

func TestLookupDeduplicatesProviders(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{1: providers("A", "B", "A", "B", "A")},
		map[string]stockAnswer{"A": stock(1, 1), "B": stock(2, 1)},
	)

	res, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 1, RequestedQuantity: 50})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, entryAddrs(res.Entries))
	assert.Equal(t, 1, f.stock.callsFor("A"))
	assert.Equal(t, 1, f.stock.callsFor("B"))
}

func TestLookupCancelledDuringAggregation(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{2: providers("slow")},
		map[string]stockAnswer{"slow": {rec: supply.StockRecord{Price: 1, Quantity: 5}, delay: time.Minute}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	res, err := f.svc.Lookup(ctx, supply.ItemQuery{ItemID: 2, RequestedQuantity: 1})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Entries)
}

func TestLookupIsRepeatable(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{4: providers("t1", "t2", "t3", "cheap")},
		map[string]stockAnswer{
			"t1":    stock(3, 2),
			"t2":    stock(3, 2),
			"t3":    stock(3, 2),
			"cheap": stock(1, 1),
		},
	)
	q := supply.ItemQuery{ItemID: 4, RequestedQuantity: 4}

	first, err := f.svc.Lookup(context.Background(), q)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := f.svc.Lookup(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, first.Entries, again.Entries)
		assert.Greater(t, again.LookupID, first.LookupID)
	}
	assert.Equal(t, []string{"cheap", "t1", "t2"}, entryAddrs(first.Entries))
}

func TestStreamEmitsCheapestFirst(t *testing.T) {
	f := chickenFixture()

	var got []string
	res, err := f.svc.Stream(context.Background(), supply.ItemQuery{ItemID: 7, RequestedQuantity: 20},
		func(e supply.ShopEntry) error {
			got = append(got, e.Provider.Address)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, got)
	assert.Equal(t, got, entryAddrs(res.Entries))

	assert.Equal(t, []string{
		"start:discovering", "finish:discovering",
		"start:aggregating", "finish:aggregating",
		"start:allocating", "finish:allocating",
		"start:responding", "finish:responding",
	}, f.obs.phases())
}

func TestStreamEmitErrorAborts(t *testing.T) {
	f := chickenFixture()
	broken := errors.New("client went away")

	calls := 0
	_, err := f.svc.Stream(context.Background(), supply.ItemQuery{ItemID: 7, RequestedQuantity: 20},
		func(supply.ShopEntry) error {
			calls++
			return broken
		})
	require.ErrorIs(t, err, broken)
	assert.Equal(t, 1, calls)

	require.Len(t, f.obs.summary, 1)
	assert.ErrorIs(t, f.obs.summary[0].Err, broken)
	assert.Zero(t, f.obs.summary[0].Selected)
}

func TestLookupSummary(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{7: providers("A", "B", "C")},
		map[string]stockAnswer{"A": stock(5, 3), "B": stock(2, 10)},
	)

	_, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: 7, RequestedQuantity: 8})
	require.NoError(t, err)

	require.Len(t, f.obs.summary, 1)
	s := f.obs.summary[0]
	assert.Equal(t, uint64(1), s.LookupID)
	assert.Equal(t, uint32(7), s.ItemID)
	assert.Equal(t, 3, s.Discovered)
	assert.Equal(t, 2, s.Collected)
	assert.Equal(t, 1, s.Selected)
	assert.NoError(t, s.Err)
}

func TestConcurrentLookupsAreIndependent(t *testing.T) {
	f := newFixture(
		map[uint32][]supply.ProviderDescriptor{
			1: providers("egg-a", "egg-b"),
			2: providers("milk-a"),
		},
		map[string]stockAnswer{
			"egg-a":  stock(1, 5),
			"egg-b":  stock(0.5, 5),
			"milk-a": stock(3, 100),
		},
	)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := uint32(1 + i%2)
			res, err := f.svc.Lookup(context.Background(), supply.ItemQuery{ItemID: item, RequestedQuantity: 7})
			if !assert.NoError(t, err) {
				return
			}
			if item == 1 {
				assert.Equal(t, []string{"egg-b", "egg-a"}, entryAddrs(res.Entries))
			} else {
				assert.Equal(t, []string{"milk-a"}, entryAddrs(res.Entries))
			}
		}()
	}
	wg.Wait()
}
