// internal/services/cart_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/artisanmarket/backend/internal/config"
	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/store"
)

// CartService owns the cart key. Every mutation re-persists the full line
// list; other pages pick the change up at their next load.
type CartService struct {
	kv       store.KVStore
	catalog  *CatalogService
	commerce config.CommerceConfig
}

func NewCartService(kv store.KVStore, catalog *CatalogService, commerce config.CommerceConfig) *CartService {
	return &CartService{kv: kv, catalog: catalog, commerce: commerce}
}

// Load returns the persisted cart. Missing or malformed content yields an
// empty cart, never an error.
func (s *CartService) Load(ctx context.Context) ([]models.CartLine, error) {
	var cart []models.CartLine
	if _, err := store.GetJSON(ctx, s.kv, store.KeyCart, &cart); err != nil {
		return nil, err
	}
	if cart == nil {
		cart = []models.CartLine{}
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, cart []models.CartLine) error {
	return store.SetJSON(ctx, s.kv, store.KeyCart, cart)
}

// AddOrMerge adds a line for the product or, if one exists, increments its
// quantity. Per-line quantity is capped at the configured maximum.
func (s *CartService) AddOrMerge(ctx context.Context, line models.CartLine) ([]models.CartLine, error) {
	if line.ProductID == "" || line.Price <= 0 {
		return nil, fmt.Errorf("%w: cart line requires a product id and positive price", ErrInvalidInput)
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart {
		if cart[i].ProductID == line.ProductID {
			cart[i].Quantity += line.Quantity
			if cart[i].Quantity > s.commerce.MaxLineQuantity {
				cart[i].Quantity = s.commerce.MaxLineQuantity
			}
			merged = true
			break
		}
	}
	if !merged {
		if line.Quantity > s.commerce.MaxLineQuantity {
			line.Quantity = s.commerce.MaxLineQuantity
		}
		cart = append(cart, line)
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity updates the line at index. Quantities outside 1..max are
// rejected rather than deleting the line.
func (s *CartService) SetQuantity(ctx context.Context, index, quantity int) ([]models.CartLine, error) {
	if quantity < 1 || quantity > s.commerce.MaxLineQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, s.commerce.MaxLineQuantity)
	}

	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart) {
		return nil, fmt.Errorf("%w: cart line %d", ErrNotFound, index)
	}

	cart[index].Quantity = quantity
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove deletes the line at index.
func (s *CartService) Remove(ctx context.Context, index int) ([]models.CartLine, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart) {
		return nil, fmt.Errorf("%w: cart line %d", ErrNotFound, index)
	}

	cart = append(cart[:index], cart[index+1:]...)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.save(ctx, []models.CartLine{})
}

// Count is the total quantity across lines, shown by every page's
// cart-count indicator.
func (s *CartService) Count(ctx context.Context) (int, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, line := range cart {
		count += line.Quantity
	}
	return count, nil
}

// Totals derives the cart summary. Shipping applies only to a non-empty
// cart.
func (s *CartService) Totals(ctx context.Context) (models.CartTotals, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return models.CartTotals{}, err
	}
	return s.totalsFor(cart), nil
}

func (s *CartService) totalsFor(cart []models.CartLine) models.CartTotals {
	totals := models.CartTotals{}
	for _, line := range cart {
		totals.Subtotal += line.Price * float64(line.Quantity)
	}
	totals.Tax = totals.Subtotal * s.commerce.TaxRate
	if len(cart) > 0 {
		totals.Shipping = s.commerce.ShippingFee
	}
	totals.Total = totals.Subtotal + totals.Tax + totals.Shipping
	return totals
}

// Checkout records the purchase against the catalog — incrementing sales
// and decrementing stock for every line, mirroring seller copies — then
// clears the cart. Stock never goes below zero; payment is out of scope.
func (s *CartService) Checkout(ctx context.Context) (models.CartTotals, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return models.CartTotals{}, err
	}
	if len(cart) == 0 {
		return models.CartTotals{}, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	products, err := s.catalog.LoadAll(ctx)
	if err != nil {
		return models.CartTotals{}, err
	}

	sold := make([]models.Product, 0, len(cart))
	for _, line := range cart {
		for i := range products {
			if products[i].ID != line.ProductID {
				continue
			}
			products[i].Sales += int64(line.Quantity)
			products[i].Quantity -= line.Quantity
			if products[i].Quantity < 0 {
				products[i].Quantity = 0
			}
			sold = append(sold, products[i])
			break
		}
	}

	if err := s.catalog.saveAll(ctx, products); err != nil {
		return models.CartTotals{}, err
	}
	for _, p := range sold {
		if err := s.catalog.mirrorToSeller(ctx, p); err != nil {
			return models.CartTotals{}, err
		}
	}

	totals := s.totalsFor(cart)
	if err := s.Clear(ctx); err != nil {
		return models.CartTotals{}, err
	}

	logrus.WithFields(logrus.Fields{
		"lines": len(cart),
		"total": totals.Total,
	}).Info("Cart checked out")
	return totals, nil
}
