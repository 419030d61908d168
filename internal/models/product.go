// internal/models/product.go
package models

// Product is one catalog entry. The same record lives in the global
// catalog and, when seller-submitted, in the owning seller's collection;
// the two copies must stay field-identical after every persisted mutation.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	SellerEmail string  `json:"seller_email"`
	SellerName  string  `json:"seller_name"`
	CreatedAt   int64   `json:"created_at"` // unix milliseconds; 0 = unknown
	Views       int64   `json:"views"`
	Sales       int64   `json:"sales"`
}

// ProductDraft is the seller-submitted part of a product. The inventory
// manager fills in identity, ownership and counters.
type ProductDraft struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
)

// CatalogFilter is the transient filter/sort state of one query. A nil
// price bound means that side of the band is open.
type CatalogFilter struct {
	Categories []string `json:"categories"`
	PriceMin   *float64 `json:"price_min"`
	PriceMax   *float64 `json:"price_max"`
	Sort       SortKey  `json:"sort"`
}

// SellerStats aggregates one seller's inventory.
type SellerStats struct {
	Count         int     `json:"count"`
	TotalViews    int64   `json:"total_views"`
	TotalSales    int64   `json:"total_sales"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}
