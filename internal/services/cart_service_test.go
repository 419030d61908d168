// internal/services/cart_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/artisanmarket/backend/internal/config"
	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/store"
)

type CartServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	kv      *store.MemoryStore
	catalog *CatalogService
	cart    *CartService
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.kv = store.NewMemoryStore()
	suite.catalog = NewCatalogService(suite.kv, 4)
	suite.cart = NewCartService(suite.kv, suite.catalog, config.CommerceConfig{
		TaxRate:         0.10,
		ShippingFee:     250,
		MaxLineQuantity: 10,
		RelatedLimit:    4,
	})
}

func (suite *CartServiceTestSuite) line(id string, price float64, qty int) models.CartLine {
	return models.CartLine{ProductID: id, Name: "Product " + id, Price: price, Quantity: qty}
}

func (suite *CartServiceTestSuite) TestLoadEmptyCart() {
	cart, err := suite.cart.Load(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(cart)
}

func (suite *CartServiceTestSuite) TestLoadMalformedCartFailsOpen() {
	suite.Require().NoError(suite.kv.Set(suite.ctx, store.KeyCart, "{{{"))

	cart, err := suite.cart.Load(suite.ctx)
	suite.Require().NoError(err, "malformed cart content must read as empty, not error")
	suite.Empty(cart)
}

func (suite *CartServiceTestSuite) TestAddOrMergeDeduplicatesByProduct() {
	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 1))
	suite.Require().NoError(err)

	cart, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 2))
	suite.Require().NoError(err)

	suite.Require().Len(cart, 1, "merging must not duplicate the line")
	suite.Equal(3, cart[0].Quantity, "merged quantity is the sum of both adds")
}

func (suite *CartServiceTestSuite) TestAddOrMergeCapsQuantity() {
	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 8))
	suite.Require().NoError(err)

	cart, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 8))
	suite.Require().NoError(err)
	suite.Equal(10, cart[0].Quantity)
}

func (suite *CartServiceTestSuite) TestAddOrMergeRejectsInvalidLine() {
	_, err := suite.cart.AddOrMerge(suite.ctx, models.CartLine{ProductID: "", Price: 100, Quantity: 1})
	suite.ErrorIs(err, ErrInvalidInput)

	_, err = suite.cart.AddOrMerge(suite.ctx, models.CartLine{ProductID: "1", Price: 0, Quantity: 1})
	suite.ErrorIs(err, ErrInvalidInput)
}

func (suite *CartServiceTestSuite) TestAddOrMergePersistsEveryMutation() {
	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 1))
	suite.Require().NoError(err)

	// A fresh engine over the same store sees the persisted cart, the way
	// another page would after reload.
	other := NewCartService(suite.kv, suite.catalog, suite.cart.commerce)
	cart, err := other.Load(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(cart, 1)
}

func (suite *CartServiceTestSuite) TestSetQuantityRejectsNonPositive() {
	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 2))
	suite.Require().NoError(err)

	_, err = suite.cart.SetQuantity(suite.ctx, 0, 0)
	suite.ErrorIs(err, ErrInvalidInput)
	_, err = suite.cart.SetQuantity(suite.ctx, 0, -3)
	suite.ErrorIs(err, ErrInvalidInput)
	_, err = suite.cart.SetQuantity(suite.ctx, 0, 11)
	suite.ErrorIs(err, ErrInvalidInput)

	cart, err := suite.cart.Load(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(2, cart[0].Quantity, "rejected updates leave the line untouched")
}

func (suite *CartServiceTestSuite) TestSetQuantityAndRemoveByIndex() {
	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 1))
	suite.Require().NoError(err)
	_, err = suite.cart.AddOrMerge(suite.ctx, suite.line("2", 3200, 1))
	suite.Require().NoError(err)

	cart, err := suite.cart.SetQuantity(suite.ctx, 1, 5)
	suite.Require().NoError(err)
	suite.Equal(5, cart[1].Quantity)

	cart, err = suite.cart.Remove(suite.ctx, 0)
	suite.Require().NoError(err)
	suite.Require().Len(cart, 1)
	suite.Equal("2", cart[0].ProductID)

	_, err = suite.cart.Remove(suite.ctx, 7)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *CartServiceTestSuite) TestTotalsLinear() {
	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 1))
	suite.Require().NoError(err)
	_, err = suite.cart.AddOrMerge(suite.ctx, suite.line("2", 3200, 1))
	suite.Require().NoError(err)

	totals, err := suite.cart.Totals(suite.ctx)
	suite.Require().NoError(err)
	suite.InDelta(5000.0, totals.Subtotal, 1e-9)
	suite.InDelta(500.0, totals.Tax, 1e-9)
	suite.InDelta(250.0, totals.Shipping, 1e-9)
	suite.InDelta(5750.0, totals.Total, 1e-9)
}

func (suite *CartServiceTestSuite) TestTotalsEmptyCartSkipsShipping() {
	totals, err := suite.cart.Totals(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(totals.Shipping)
	suite.Zero(totals.Total)
}

func (suite *CartServiceTestSuite) TestCount() {
	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("1", 1800, 2))
	suite.Require().NoError(err)
	_, err = suite.cart.AddOrMerge(suite.ctx, suite.line("2", 3200, 3))
	suite.Require().NoError(err)

	count, err := suite.cart.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(5, count)
}

func (suite *CartServiceTestSuite) TestCheckoutRecordsSalesAndClearsCart() {
	products := []models.Product{
		{ID: "p1", Name: "Tote", Category: "bags", Price: 1800, Quantity: 5, SellerEmail: "maya@craft.lk", SellerName: "Maya"},
	}
	suite.Require().NoError(store.SetJSON(suite.ctx, suite.kv, store.KeyAllProducts, products))
	suite.Require().NoError(store.SetJSON(suite.ctx, suite.kv, store.SellerProductsKey("maya@craft.lk"), products))

	_, err := suite.cart.AddOrMerge(suite.ctx, suite.line("p1", 1800, 2))
	suite.Require().NoError(err)

	totals, err := suite.cart.Checkout(suite.ctx)
	suite.Require().NoError(err)
	suite.InDelta(3600.0, totals.Subtotal, 1e-9)

	cart, err := suite.cart.Load(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(cart)

	global, err := suite.catalog.LoadAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), global[0].Sales)
	suite.Equal(3, global[0].Quantity)

	var sellerProducts []models.Product
	_, err = store.GetJSON(suite.ctx, suite.kv, store.SellerProductsKey("maya@craft.lk"), &sellerProducts)
	suite.Require().NoError(err)
	suite.Equal(global[0], sellerProducts[0], "seller copy mirrors the global record")
}

func (suite *CartServiceTestSuite) TestCheckoutEmptyCartRejected() {
	_, err := suite.cart.Checkout(suite.ctx)
	suite.ErrorIs(err, ErrInvalidInput)
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
