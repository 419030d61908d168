// internal/models/cart.go
package models

// CartLine is one row of the shopping cart. At most one line exists per
// product; merging an already-present product increments the quantity.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// CartTotals is the derived summary of a cart. Shipping applies only when
// the cart is non-empty.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
