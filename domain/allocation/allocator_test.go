package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplyfinder/domain/supply"
)

func entry(addr string, price float64, qty int64) supply.ShopEntry {
	return supply.ShopEntry{
		Provider: supply.ProviderDescriptor{Address: addr},
		Stock:    supply.StockRecord{Price: price, Quantity: qty},
	}
}

func addresses(entries []supply.ShopEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Provider.Address)
	}
	return out
}

func TestSelectSingleCheapestCovers(t *testing.T) {
	a := entry("A", 5, 3)
	b := entry("B", 2, 10)

	got := Select([]supply.ShopEntry{a, b}, 8)

	require.Len(t, got, 1)
	assert.Equal(t, b, got[0])
}

func TestSelectUndersupplyReturnsEverything(t *testing.T) {
	a := entry("A", 5, 3)
	b := entry("B", 2, 10)

	got := Select([]supply.ShopEntry{a, b}, 20)

	assert.Equal(t, []supply.ShopEntry{b, a}, got)
}

func TestSelectExactCoverStops(t *testing.T) {
	got := Select([]supply.ShopEntry{
		entry("A", 1, 4),
		entry("B", 2, 4),
		entry("C", 3, 4),
	}, 8)

	assert.Equal(t, []string{"A", "B"}, addresses(got))
}

func TestSelectTiesKeepInputOrder(t *testing.T) {
	in := []supply.ShopEntry{
		entry("first", 3, 1),
		entry("cheap", 1, 1),
		entry("second", 3, 1),
		entry("third", 3, 1),
	}

	got := Select(in, 3)

	assert.Equal(t, []string{"cheap", "first", "second"}, addresses(got))
}

func TestSelectSkipsUnusable(t *testing.T) {
	in := []supply.ShopEntry{
		entry("sentinel", supply.NotCarried, 50),
		entry("empty", 0.5, 0),
		entry("ok", 9, 2),
	}

	got := Select(in, 10)

	assert.Equal(t, []string{"ok"}, addresses(got))
}

func TestSelectEmpty(t *testing.T) {
	assert.Empty(t, Select(nil, 5))
	assert.Empty(t, Select([]supply.ShopEntry{entry("A", 1, 1)}, 0))
	assert.Empty(t, Select([]supply.ShopEntry{entry("A", 1, 1)}, -3))
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	in := []supply.ShopEntry{entry("A", 5, 3), entry("B", 2, 10)}
	snapshot := append([]supply.ShopEntry(nil), in...)

	_ = Select(in, 20)

	assert.Equal(t, snapshot, in)
}

func TestLadderLevels(t *testing.T) {
	l := NewLadder()
	assert.True(t, l.Add(entry("A", 2, 1)))
	assert.True(t, l.Add(entry("B", 1, 4)))
	assert.True(t, l.Add(entry("C", 2, 6)))
	assert.False(t, l.Add(entry("D", -1, 6)))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Levels())

	var prices []float64
	var totals []int64
	l.Walk(func(price float64, qty int64) bool {
		prices = append(prices, price)
		totals = append(totals, qty)
		return true
	})
	assert.Equal(t, []float64{1, 2}, prices)
	assert.Equal(t, []int64{4, 7}, totals)

	e, ok := l.PopBest()
	require.True(t, ok)
	assert.Equal(t, "B", e.Provider.Address)
	assert.Equal(t, 1, l.Levels())

	e, _ = l.PopBest()
	assert.Equal(t, "A", e.Provider.Address)
	e, _ = l.PopBest()
	assert.Equal(t, "C", e.Provider.Address)

	_, ok = l.PopBest()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
}
