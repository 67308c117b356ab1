package core

import (
	"github.com/samber/lo"
	"gwi.com/neon-marketplace/internal/store"
)

const DefaultRecommendationLimit = 3 // Number of products to suggest

// Recommend returns up to limit products from catalog that were not viewed
// and share a category with a viewed product. Catalog order is kept.
func Recommend(viewed []int64, catalog []store.Product, limit int) []store.Product {
	if len(viewed) == 0 || limit <= 0 {
		return []store.Product{}
	}

	categories := make(map[string]struct{})
	for _, p := range catalog {
		if lo.Contains(viewed, p.ID) {
			categories[p.Category] = struct{}{}
		}
	}
	if len(categories) == 0 {
		return []store.Product{}
	}

	candidates := lo.Filter(catalog, func(p store.Product, _ int) bool {
		_, related := categories[p.Category]
		return related && !lo.Contains(viewed, p.ID)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// CartTotal sums the price of every cart entry. Ids missing from the
// catalog contribute nothing.
func CartTotal(cart []int64, catalog []store.Product) float64 {
	prices := lo.SliceToMap(catalog, func(p store.Product) (int64, float64) { return p.ID, p.Price })
	return lo.SumBy(cart, func(id int64) float64 { return prices[id] })
}
