package allocation

import (
	"github.com/google/btree"

	"supplyfinder/domain/supply"
)

const ladderDegree = 8

// Ladder indexes usable entries by price, cheapest first.
// It is single-owner and not safe for concurrent use.
type Ladder struct {
	levels *btree.BTreeG[*level]
	size   int
}

func NewLadder() *Ladder {
	return &Ladder{
		levels: btree.NewG(ladderDegree, func(a, b *level) bool {
			return a.price < b.price
		}),
	}
}

// Add places e at the tail of its price level. Entries that can never be
// allocated (negative price, no quantity) are ignored; Add reports whether e
// was kept.
func (l *Ladder) Add(e supply.ShopEntry) bool {
	if !e.Stock.Usable() {
		return false
	}
	l.getOrCreate(e.Stock.Price).enqueue(e)
	l.size++
	return true
}

// Len is the number of entries still on the ladder.
func (l *Ladder) Len() int {
	return l.size
}

// Levels is the number of distinct prices on the ladder.
func (l *Ladder) Levels() int {
	return l.levels.Len()
}

// Walk visits each level from the cheapest up with its price and total
// quantity. Returning false stops the walk.
func (l *Ladder) Walk(fn func(price float64, quantity int64) bool) {
	l.levels.Ascend(func(lv *level) bool {
		return fn(lv.price, lv.totalQty)
	})
}

// PopBest removes and returns the oldest entry of the cheapest level.
func (l *Ladder) PopBest() (supply.ShopEntry, bool) {
	best, ok := l.levels.Min()
	if !ok {
		return supply.ShopEntry{}, false
	}
	e, _ := best.popHead()
	if best.empty() {
		l.levels.DeleteMin()
	}
	l.size--
	return e, true
}

func (l *Ladder) getOrCreate(price float64) *level {
	if lv, ok := l.levels.Get(&level{price: price}); ok {
		return lv
	}
	lv := &level{price: price}
	l.levels.ReplaceOrInsert(lv)
	return lv
}
