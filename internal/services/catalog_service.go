// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/store"
)

// CatalogService owns the global product set under the allProducts key.
// It holds no authoritative in-memory state: every operation reloads from
// the store, mutates, and persists, so independently running pages only
// ever diverge until their next load.
type CatalogService struct {
	kv           store.KVStore
	relatedLimit int

	idMtx  sync.Mutex
	lastID int64
}

func NewCatalogService(kv store.KVStore, relatedLimit int) *CatalogService {
	if relatedLimit <= 0 {
		relatedLimit = 4
	}
	return &CatalogService{kv: kv, relatedLimit: relatedLimit}
}

// LoadAll returns the global catalog. A missing or malformed value falls
// back to the fixed sample catalog — the shop must always have something
// to render.
func (s *CatalogService) LoadAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	ok, err := store.GetJSON(ctx, s.kv, store.KeyAllProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SampleCatalog(), nil
	}
	return products, nil
}

func (s *CatalogService) saveAll(ctx context.Context, products []models.Product) error {
	return store.SetJSON(ctx, s.kv, store.KeyAllProducts, products)
}

// AddProduct appends p to the global catalog. The id must be unique and
// price/quantity must already be validated by the caller.
func (s *CatalogService) AddProduct(ctx context.Context, p models.Product) error {
	if p.ID == "" || p.Price <= 0 || p.Quantity < 0 {
		return fmt.Errorf("%w: product requires an id, positive price and non-negative quantity", ErrInvalidInput)
	}

	products, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	for _, existing := range products {
		if existing.ID == p.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
	}

	products = append(products, p)
	if err := s.saveAll(ctx, products); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": p.ID,
		"category":   p.Category,
		"seller":     p.SellerEmail,
	}).Info("Product added to catalog")
	return nil
}

func (s *CatalogService) FindByID(ctx context.Context, id string) (models.Product, error) {
	products, err := s.LoadAll(ctx)
	if err != nil {
		return models.Product{}, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: product %s", ErrNotFound, id)
}

// FindRelated returns up to relatedLimit products sharing p's category,
// excluding p itself, in catalog insertion order.
func (s *CatalogService) FindRelated(ctx context.Context, p models.Product) ([]models.Product, error) {
	products, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]models.Product, 0, s.relatedLimit)
	for _, candidate := range products {
		if candidate.Category != p.Category || candidate.ID == p.ID {
			continue
		}
		related = append(related, candidate)
		if len(related) == s.relatedLimit {
			break
		}
	}
	return related, nil
}

// SelectProduct records the shop page's selection for the detail page.
// The raw id string is stored, not a JSON document.
func (s *CatalogService) SelectProduct(ctx context.Context, id string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.kv.Set(ctx, store.KeySelectedProductID, id)
}

// SelectedProduct resolves the handoff written by SelectProduct.
func (s *CatalogService) SelectedProduct(ctx context.Context) (models.Product, error) {
	id, ok, err := s.kv.Get(ctx, store.KeySelectedProductID)
	if err != nil {
		return models.Product{}, err
	}
	if !ok || id == "" {
		return models.Product{}, fmt.Errorf("%w: no product selected", ErrNotFound)
	}
	return s.FindByID(ctx, id)
}

// RecordView bumps the product's view counter in the global catalog and
// mirrors the change into the owning seller's collection so both copies
// stay field-identical.
func (s *CatalogService) RecordView(ctx context.Context, id string) (models.Product, error) {
	products, err := s.LoadAll(ctx)
	if err != nil {
		return models.Product{}, err
	}

	var viewed models.Product
	found := false
	for i := range products {
		if products[i].ID == id {
			products[i].Views++
			viewed = products[i]
			found = true
			break
		}
	}
	if !found {
		return models.Product{}, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}

	if err := s.saveAll(ctx, products); err != nil {
		return models.Product{}, err
	}
	if err := s.mirrorToSeller(ctx, viewed); err != nil {
		return models.Product{}, err
	}
	return viewed, nil
}

// mirrorToSeller copies p over the matching entry of its seller's
// collection. Products without a seller email (the sample catalog) have
// no seller-scoped copy to maintain.
func (s *CatalogService) mirrorToSeller(ctx context.Context, p models.Product) error {
	if p.SellerEmail == "" {
		return nil
	}

	key := store.SellerProductsKey(p.SellerEmail)
	var sellerProducts []models.Product
	if _, err := store.GetJSON(ctx, s.kv, key, &sellerProducts); err != nil {
		return err
	}

	changed := false
	for i := range sellerProducts {
		if sellerProducts[i].ID == p.ID {
			sellerProducts[i] = p
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	return store.SetJSON(ctx, s.kv, key, sellerProducts)
}

// NextProductID issues a timestamp-derived id. Ids are strictly
// increasing even when two products are created within the same
// millisecond.
func (s *CatalogService) NextProductID() string {
	s.idMtx.Lock()
	defer s.idMtx.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
