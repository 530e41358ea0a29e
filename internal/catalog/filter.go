package catalog

import (
	"sort"
	"strings"

	"apex-store/internal/model"
)

// Sort orders for filtered product listings.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Filter narrows and orders a product listing. Zero values mean "no
// constraint": an empty or "All" category matches everything, an empty
// search matches everything, a zero MaxPrice means no upper bound, and an
// empty sort keeps the featured (insertion) order.
type Filter struct {
	Category string
	Search   string
	MinPrice float64
	MaxPrice float64
	Sort     string
}

// Apply returns the products matching the filter, in the requested order.
// It is a pure function: the input slice is never modified.
func Apply(products []model.Product, f Filter) []model.Product {
	search := strings.ToLower(f.Search)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p.Clone())
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}
