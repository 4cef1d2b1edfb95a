package supply

// NotCarried is the price a provider query resolves to when it failed or the
// provider does not stock the item. It never leaves the finder process.
const NotCarried = -1.0

// ItemQuery is one inbound lookup. A non-empty ItemName wins over ItemID.
type ItemQuery struct {
	ItemID            uint32
	ItemName          string
	RequestedQuantity int64
}

// ProviderDescriptor identifies a provider. Address is the natural key.
type ProviderDescriptor struct {
	Address  string
	Name     string
	Location string
}

// StockRecord is a provider's live stock for one item.
type StockRecord struct {
	Price    float64
	Quantity int64
}

// Usable reports whether the record may take part in an allocation.
func (s StockRecord) Usable() bool {
	return s.Price >= 0 && s.Quantity > 0
}

// ShopEntry pairs a provider with the stock it reported.
type ShopEntry struct {
	Provider ProviderDescriptor
	Stock    StockRecord
}
