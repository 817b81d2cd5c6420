package catalog

import (
	"sort"

	"ecogrocer/models"
)

// ApplyView narrows a product list to an optional exact-match category and
// an optional price sort ("asc" or "desc"). Without a sort the insertion
// order is preserved; the sort itself is stable.
func ApplyView(products []models.Product, category, priceSort string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	switch priceSort {
	case "asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}
