// internal/services/query_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanmarket/backend/internal/models"
)

func queryFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Tote Bag", Category: "bags", Price: 1800, CreatedAt: 100, Views: 10},
		{ID: "2", Name: "Mat", Category: "decor", Price: 3200, CreatedAt: 400, Views: 40},
		{ID: "3", Name: "Bowl", Category: "decor", Price: 950, CreatedAt: 300, Views: 40},
		{ID: "4", Name: "Elephant", Category: "wood", Price: 2500, CreatedAt: 200, Views: 5},
		{ID: "5", Name: "Scarf", Category: "bags", Price: 950},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyFilterEmptySelectionIsPassThrough(t *testing.T) {
	got := ApplyFilter(queryFixture(), models.CatalogFilter{})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
}

func TestApplyFilterCategorySubset(t *testing.T) {
	filter := models.CatalogFilter{Categories: []string{"bags", "wood"}}
	got := ApplyFilter(queryFixture(), filter)

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, filter.Categories, p.Category)
	}
	assert.Equal(t, []string{"1", "4", "5"}, ids(got))
}

func TestApplyFilterPriceBand(t *testing.T) {
	min, max := 1000.0, 2600.0
	got := ApplyFilter(queryFixture(), models.CatalogFilter{PriceMin: &min, PriceMax: &max})
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestApplyFilterOpenUpperBound(t *testing.T) {
	min := 2500.0
	got := ApplyFilter(queryFixture(), models.CatalogFilter{PriceMin: &min})
	assert.Equal(t, []string{"2", "4"}, ids(got))
}

func TestApplyFilterSortNewest(t *testing.T) {
	got := ApplyFilter(queryFixture(), models.CatalogFilter{Sort: models.SortNewest})
	// Product 5 has no created_at and sorts as earliest.
	assert.Equal(t, []string{"2", "3", "4", "1", "5"}, ids(got))
}

func TestApplyFilterSortPrice(t *testing.T) {
	low := ApplyFilter(queryFixture(), models.CatalogFilter{Sort: models.SortPriceLow})
	assert.Equal(t, []string{"3", "5", "1", "4", "2"}, ids(low))

	high := ApplyFilter(queryFixture(), models.CatalogFilter{Sort: models.SortPriceHigh})
	assert.Equal(t, []string{"2", "4", "1", "3", "5"}, ids(high))
}

func TestApplyFilterSortStableOnTies(t *testing.T) {
	// Products 3 and 5 share a price; 2 and 3 share a view count. Ties
	// must keep catalog insertion order.
	low := ApplyFilter(queryFixture(), models.CatalogFilter{Sort: models.SortPriceLow})
	assert.Equal(t, []string{"3", "5"}, ids(low)[:2])

	popular := ApplyFilter(queryFixture(), models.CatalogFilter{Sort: models.SortPopular})
	assert.Equal(t, []string{"2", "3", "1", "4", "5"}, ids(popular))
}

func TestApplyFilterDeterministic(t *testing.T) {
	filter := models.CatalogFilter{Categories: []string{"decor", "bags"}, Sort: models.SortPopular}
	first := ApplyFilter(queryFixture(), filter)
	second := ApplyFilter(queryFixture(), filter)
	assert.Equal(t, first, second)
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	input := queryFixture()
	ApplyFilter(input, models.CatalogFilter{Sort: models.SortPriceHigh})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(input))
}
