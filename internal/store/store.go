// internal/store/store.go
package store

import "context"

// Storage keys shared by every storefront page. All values are JSON
// documents; writers always replace the whole value for a key.
const (
	KeyCurrentUser       = "currentUser"
	KeyAllProducts       = "allProducts"
	KeyCart              = "cart"
	KeySelectedProductID = "selectedProductId"

	sellerProductsPrefix = "sellerProducts_"
)

// SellerProductsKey returns the email-qualified key holding one seller's
// product subset. Seller inventories survive logout under this key.
func SellerProductsKey(email string) string {
	return sellerProductsPrefix + email
}

// KVStore is the boundary to the host persistent store. The host applies
// writes atomically per key but offers no cross-key transaction.
type KVStore interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
