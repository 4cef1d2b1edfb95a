package supply

import (
	"fmt"
	"strings"
)

// CatalogSize is the number of item ids the registry indexes.
// Id 9 exists but has no public name.
const CatalogSize = 10

var catalog = map[string]uint32{
	"apple":   0,
	"egg":     1,
	"milk":    2,
	"flour":   3,
	"water":   4,
	"butter":  5,
	"cheese":  6,
	"chicken": 7,
	"yeast":   8,
}

// Resolve maps a human-facing item name to its id. Matching ignores case and
// surrounding whitespace.
func Resolve(name string) (uint32, error) {
	id, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown item %q", ErrNotFound, name)
	}
	return id, nil
}

// InCatalog reports whether id is one the registry can index.
func InCatalog(id uint32) bool {
	return id < CatalogSize
}

// ItemName returns the catalog name for id, or "" when it has none.
func ItemName(id uint32) string {
	for name, v := range catalog {
		if v == id {
			return name
		}
	}
	return ""
}

// ResolveQuery returns the item id a query refers to.
func ResolveQuery(q ItemQuery) (uint32, error) {
	if strings.TrimSpace(q.ItemName) != "" {
		return Resolve(q.ItemName)
	}
	return q.ItemID, nil
}
