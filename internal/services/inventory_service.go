// internal/services/inventory_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/store"
	"github.com/artisanmarket/backend/internal/utils"
)

// InventoryService owns one seller's product subset and keeps the global
// catalog's membership in sync with seller mutations: every product in a
// seller's collection appears in the global set with identical fields
// after a mutation is persisted.
type InventoryService struct {
	kv      store.KVStore
	catalog *CatalogService
}

func NewInventoryService(kv store.KVStore, catalog *CatalogService) *InventoryService {
	return &InventoryService{kv: kv, catalog: catalog}
}

// Load returns the seller-scoped collection, empty if absent or
// malformed.
func (s *InventoryService) Load(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	var products []models.Product
	if _, err := store.GetJSON(ctx, s.kv, store.SellerProductsKey(sellerEmail), &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *InventoryService) save(ctx context.Context, sellerEmail string, products []models.Product) error {
	return store.SetJSON(ctx, s.kv, store.SellerProductsKey(sellerEmail), products)
}

// AddProduct builds a full product from the draft and appends it to both
// the seller-scoped collection and the global catalog. The store has no
// cross-key transaction, so a failed second write is rolled back
// best-effort; a failed rollback leaves the seller copy ahead of the
// global one and is logged as such.
func (s *InventoryService) AddProduct(ctx context.Context, sellerEmail, sellerName string, draft models.ProductDraft) (models.Product, error) {
	if sellerEmail == "" {
		return models.Product{}, fmt.Errorf("%w: seller email is required", ErrInvalidInput)
	}
	if err := utils.ValidateStruct(&draft); err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	product := models.Product{
		ID:          s.catalog.NextProductID(),
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Quantity:    draft.Quantity,
		Image:       draft.Image,
		Description: draft.Description,
		SellerEmail: sellerEmail,
		SellerName:  sellerName,
		CreatedAt:   time.Now().UnixMilli(),
	}

	previous, err := s.Load(ctx, sellerEmail)
	if err != nil {
		return models.Product{}, err
	}

	if err := s.save(ctx, sellerEmail, append(previous, product)); err != nil {
		return models.Product{}, err
	}

	if err := s.catalog.AddProduct(ctx, product); err != nil {
		if rollbackErr := s.save(ctx, sellerEmail, previous); rollbackErr != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": product.ID,
				"seller":     sellerEmail,
				"error":      rollbackErr.Error(),
			}).Error("Seller collection rollback failed; seller copy is ahead of the catalog")
		}
		return models.Product{}, err
	}

	return product, nil
}

// Remove prunes the product from the seller-scoped collection and the
// global catalog symmetrically.
func (s *InventoryService) Remove(ctx context.Context, sellerEmail, productID string) error {
	sellerProducts, err := s.Load(ctx, sellerEmail)
	if err != nil {
		return err
	}

	kept := make([]models.Product, 0, len(sellerProducts))
	for _, p := range sellerProducts {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(sellerProducts) {
		return fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}

	if err := s.save(ctx, sellerEmail, kept); err != nil {
		return err
	}

	global, err := s.catalog.LoadAll(ctx)
	if err != nil {
		return err
	}
	keptGlobal := make([]models.Product, 0, len(global))
	for _, p := range global {
		if p.ID != productID {
			keptGlobal = append(keptGlobal, p)
		}
	}
	if err := s.catalog.saveAll(ctx, keptGlobal); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"seller":     sellerEmail,
	}).Info("Product removed from inventory and catalog")
	return nil
}

// Stats aggregates a seller's inventory. Average order value is zero when
// nothing has sold yet.
func (s *InventoryService) Stats(products []models.Product) models.SellerStats {
	stats := models.SellerStats{Count: len(products)}
	for _, p := range products {
		stats.TotalViews += p.Views
		stats.TotalSales += p.Sales
		stats.TotalRevenue += p.Price * float64(p.Sales)
	}
	if stats.TotalSales > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalSales)
	}
	return stats
}
