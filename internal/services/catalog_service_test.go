// internal/services/catalog_service_test.go
package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/store"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	kv      *store.MemoryStore
	catalog *CatalogService
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.kv = store.NewMemoryStore()
	suite.catalog = NewCatalogService(suite.kv, 4)
}

func (suite *CatalogServiceTestSuite) TestLoadAllFallsBackWhenMissing() {
	products, err := suite.catalog.LoadAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(products, 12, "the shop must never render empty")
}

func (suite *CatalogServiceTestSuite) TestLoadAllFallsBackWhenMalformed() {
	suite.Require().NoError(suite.kv.Set(suite.ctx, store.KeyAllProducts, "not json at all"))

	products, err := suite.catalog.LoadAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(products, 12)
}

func (suite *CatalogServiceTestSuite) TestAddProductRejectsDuplicateID() {
	p := models.Product{ID: "x1", Name: "Bowl", Category: "decor", Price: 950, Quantity: 3}
	suite.Require().NoError(store.SetJSON(suite.ctx, suite.kv, store.KeyAllProducts, []models.Product{p}))

	err := suite.catalog.AddProduct(suite.ctx, p)
	suite.ErrorIs(err, ErrDuplicateID)
}

func (suite *CatalogServiceTestSuite) TestAddProductRejectsInvalidFields() {
	err := suite.catalog.AddProduct(suite.ctx, models.Product{ID: "x1", Price: 0, Quantity: 1})
	suite.ErrorIs(err, ErrInvalidInput)

	err = suite.catalog.AddProduct(suite.ctx, models.Product{ID: "x1", Price: 100, Quantity: -1})
	suite.ErrorIs(err, ErrInvalidInput)
}

func (suite *CatalogServiceTestSuite) TestFindByID() {
	_, err := suite.catalog.FindByID(suite.ctx, "1")
	suite.Require().NoError(err)

	_, err = suite.catalog.FindByID(suite.ctx, "does-not-exist")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestFindRelated() {
	products := []models.Product{
		{ID: "1", Category: "decor", Price: 100, Quantity: 1},
		{ID: "2", Category: "decor", Price: 100, Quantity: 1},
		{ID: "3", Category: "bags", Price: 100, Quantity: 1},
		{ID: "4", Category: "decor", Price: 100, Quantity: 1},
		{ID: "5", Category: "decor", Price: 100, Quantity: 1},
		{ID: "6", Category: "decor", Price: 100, Quantity: 1},
		{ID: "7", Category: "decor", Price: 100, Quantity: 1},
	}
	suite.Require().NoError(store.SetJSON(suite.ctx, suite.kv, store.KeyAllProducts, products))

	related, err := suite.catalog.FindRelated(suite.ctx, products[0])
	suite.Require().NoError(err)

	suite.Len(related, 4, "truncated to the related limit")
	suite.Equal("2", related[0].ID, "insertion order is preserved")
	for _, p := range related {
		suite.Equal("decor", p.Category)
		suite.NotEqual("1", p.ID, "the product itself is excluded")
	}
}

func (suite *CatalogServiceTestSuite) TestSelectedProductHandoff() {
	_, err := suite.catalog.SelectedProduct(suite.ctx)
	suite.ErrorIs(err, ErrNotFound)

	suite.Require().NoError(suite.catalog.SelectProduct(suite.ctx, "3"))

	product, err := suite.catalog.SelectedProduct(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("3", product.ID)

	err = suite.catalog.SelectProduct(suite.ctx, "ghost")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestRecordViewMirrorsSellerCopy() {
	p := models.Product{ID: "x1", Name: "Ring", Category: "jewelry", Price: 1400, Quantity: 2, SellerEmail: "maya@craft.lk"}
	suite.Require().NoError(store.SetJSON(suite.ctx, suite.kv, store.KeyAllProducts, []models.Product{p}))
	suite.Require().NoError(store.SetJSON(suite.ctx, suite.kv, store.SellerProductsKey("maya@craft.lk"), []models.Product{p}))

	viewed, err := suite.catalog.RecordView(suite.ctx, "x1")
	suite.Require().NoError(err)
	suite.Equal(int64(1), viewed.Views)

	var sellerProducts []models.Product
	_, err = store.GetJSON(suite.ctx, suite.kv, store.SellerProductsKey("maya@craft.lk"), &sellerProducts)
	suite.Require().NoError(err)
	suite.Equal(int64(1), sellerProducts[0].Views)
}

func (suite *CatalogServiceTestSuite) TestNextProductIDMonotonic() {
	previous := int64(0)
	for i := 0; i < 100; i++ {
		id, err := strconv.ParseInt(suite.catalog.NextProductID(), 10, 64)
		suite.Require().NoError(err)
		suite.Greater(id, previous)
		previous = id
	}
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
