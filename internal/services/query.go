// internal/services/query.go
package services

import (
	"sort"

	"github.com/artisanmarket/backend/internal/models"
)

// ApplyFilter runs the catalog query pipeline: category filter, price
// band, then a stable sort. It never mutates its input and is fully
// deterministic — identical inputs yield identical output ordering, with
// ties keeping catalog insertion order.
func ApplyFilter(products []models.Product, filter models.CatalogFilter) []models.Product {
	result := make([]models.Product, 0, len(products))

	for _, p := range products {
		// An empty category selection is a pass-through, not "exclude all".
		if len(filter.Categories) > 0 && !containsCategory(filter.Categories, p.Category) {
			continue
		}
		if filter.PriceMin != nil && p.Price < *filter.PriceMin {
			continue
		}
		if filter.PriceMax != nil && p.Price > *filter.PriceMax {
			continue
		}
		result = append(result, p)
	}

	switch filter.Sort {
	case models.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case models.SortPopular:
		// Missing view counts sort as zero.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Views > result[j].Views
		})
	case models.SortNewest:
		// Missing timestamps sort as earliest.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt > result[j].CreatedAt
		})
	}

	return result
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
