// Package provider is the reference provider: a fixed, seeded inventory that
// answers stock queries and announces itself to the registry.
package provider

import (
	"fmt"
	"sort"

	"github.com/brianvoe/gofakeit/v7"

	"supplyfinder/domain/supply"
)

const (
	// CarriedItems is how many catalog items one provider stocks.
	CarriedItems = supply.CatalogSize / 2

	maxPriceTenths = 200 // prices are in [0, 20) in steps of 0.1
	maxQuantity    = 99
)

// Inventory is read-only after construction.
type Inventory struct {
	stock map[uint32]supply.StockRecord
}

// NewInventory stocks CarriedItems random catalog items. The same seed
// always yields the same inventory.
func NewInventory(seed uint64) *Inventory {
	f := gofakeit.New(seed)

	ids := make([]int, supply.CatalogSize)
	for i := range ids {
		ids[i] = i
	}
	f.ShuffleInts(ids)

	stock := make(map[uint32]supply.StockRecord, CarriedItems)
	for _, id := range ids[:CarriedItems] {
		stock[uint32(id)] = supply.StockRecord{
			Price:    float64(f.IntN(maxPriceTenths)) / 10,
			Quantity: int64(f.IntRange(0, maxQuantity)),
		}
	}
	return &Inventory{stock: stock}
}

// NewStaticInventory serves exactly the given stock.
func NewStaticInventory(stock map[uint32]supply.StockRecord) *Inventory {
	cp := make(map[uint32]supply.StockRecord, len(stock))
	for id, rec := range stock {
		cp[id] = rec
	}
	return &Inventory{stock: cp}
}

// CheckStock returns the record for itemID or ErrNotCarried.
func (inv *Inventory) CheckStock(itemID uint32) (supply.StockRecord, error) {
	rec, ok := inv.stock[itemID]
	if !ok {
		return supply.StockRecord{}, fmt.Errorf("%w: item %d", supply.ErrNotCarried, itemID)
	}
	return rec, nil
}

// Items lists the carried item ids in ascending order.
func (inv *Inventory) Items() []uint32 {
	ids := make([]uint32, 0, len(inv.stock))
	for id := range inv.stock {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Profile fills in a display name and location for a provider that was not
// given one.
func Profile(seed uint64, p supply.ProviderDescriptor) supply.ProviderDescriptor {
	f := gofakeit.New(seed)
	if p.Name == "" {
		p.Name = f.Company()
	}
	if p.Location == "" {
		p.Location = f.City()
	}
	return p
}
