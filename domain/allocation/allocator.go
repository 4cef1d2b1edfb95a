package allocation

import "supplyfinder/domain/supply"

// Select returns the shortest cheapest-first run of entries whose quantities
// reach requested, or every usable entry when the total falls short.
//
// Ordering is price ascending with ties kept in input order. Entries with a
// negative price or no quantity are never selected. A non-positive demand
// selects nothing.
func Select(entries []supply.ShopEntry, requested int64) []supply.ShopEntry {
	if requested <= 0 || len(entries) == 0 {
		return nil
	}

	ladder := NewLadder()
	for _, e := range entries {
		ladder.Add(e)
	}

	out := make([]supply.ShopEntry, 0, min(ladder.Len(), 8))
	remaining := requested
	for remaining > 0 {
		e, ok := ladder.PopBest()
		if !ok {
			break
		}
		out = append(out, e)
		remaining -= e.Stock.Quantity
	}
	return out
}
