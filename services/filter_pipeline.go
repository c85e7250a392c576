package services

import (
	"strings"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
)

// FilterProducts narrows the product snapshot down to the visible subset.
//
// All active predicates are conjunctive and the relative order of the input
// is preserved (stable filter, no re-sort). An unset criterion means "no
// constraint" — except the price range, which always has an effective
// default of [0, 1000]. An empty result is a valid result, not an error.
func FilterProducts(products []models.Product, criteria models.FilterCriteria) []models.Product {
	min, max := criteria.PriceRange()
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if criteria.Category != "" && p.Category != criteria.Category {
			continue
		}
		// The subcategory predicate stands on its own; the UI only offers it
		// alongside a category, but the pipeline does not require one.
		if criteria.Subcategory != "" && p.Subcategory != criteria.Subcategory {
			continue
		}
		if p.Price < min || p.Price > max {
			continue
		}
		if criteria.MinDiscount != nil && p.Discount < *criteria.MinDiscount {
			continue
		}
		if criteria.MinRating != nil && p.Rating < *criteria.MinRating {
			continue
		}
		if criteria.FreeShipping && !p.FreeShipping {
			continue
		}
		if criteria.Returnable && !p.Returnable {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// matchesQuery reports whether the lowercased query is a substring of the
// product title or its subcategory.
func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Subcategory), query)
}
