// internal/services/sample_catalog.go
package services

import "github.com/artisanmarket/backend/internal/models"

// sampleCatalogBase anchors the sample products' created_at values so the
// "newest" ordering of the fallback set is fixed across loads.
const sampleCatalogBase int64 = 1700000000000

type sampleProduct struct {
	id          string
	name        string
	category    string
	price       float64
	views       int64
	image       string
	description string
}

var sampleProducts = []sampleProduct{
	{"1", "Batik Tote Bag", "bags", 1800, 120, "https://via.placeholder.com/250x250?text=Batik+Bag", "Hand-dyed batik cotton tote with leather straps."},
	{"2", "Handwoven Mat", "decor", 3200, 95, "https://via.placeholder.com/250x250?text=Handwoven+Mat", "Reed mat woven on a traditional floor loom."},
	{"3", "Coconut Shell Bowl", "decor", 950, 40, "https://via.placeholder.com/250x250?text=Coconut+Bowl", "Polished coconut shell serving bowl."},
	{"4", "Wood Carved Elephant", "wood", 2500, 150, "https://via.placeholder.com/250x250?text=Wood+Elephant", "Solid teak elephant carved by hand."},
	{"5", "Brass Pendant", "jewelry", 1200, 60, "https://via.placeholder.com/250x250?text=Brass+Pendant", "Cast brass pendant on a waxed cord."},
	{"6", "Ceramic Pot", "decor", 1500, 45, "https://via.placeholder.com/250x250?text=Ceramic+Pot", "Wheel-thrown terracotta pot with matte glaze."},
	{"7", "Premium Leather Bag", "bags", 2800, 210, "https://via.placeholder.com/250x250?text=Leather+Bag", "Full-grain leather shoulder bag."},
	{"8", "Silk Scarf", "bags", 1600, 80, "https://via.placeholder.com/250x250?text=Silk+Scarf", "Hand-printed silk scarf in warm tones."},
	{"9", "Wooden Jewelry Box", "wood", 2100, 70, "https://via.placeholder.com/250x250?text=Jewelry+Box", "Dovetailed jewelry box with velvet lining."},
	{"10", "Decorative Wall Art", "decor", 3500, 130, "https://via.placeholder.com/250x250?text=Wall+Art", "Mixed-media wall panel, one of a kind."},
	{"11", "Silver Ring", "jewelry", 1400, 55, "https://via.placeholder.com/250x250?text=Silver+Ring", "Sterling silver ring with hammered finish."},
	{"12", "Woven Basket", "decor", 800, 35, "https://via.placeholder.com/250x250?text=Woven+Basket", "Palm-leaf basket for everyday storage."},
}

// SampleCatalog returns the fixed fallback catalog used when no persisted
// catalog exists. The shop grid must never render empty, so LoadAll
// substitutes this set for a missing or malformed allProducts value.
func SampleCatalog() []models.Product {
	products := make([]models.Product, 0, len(sampleProducts))
	for i, s := range sampleProducts {
		products = append(products, models.Product{
			ID:          s.id,
			Name:        s.name,
			Category:    s.category,
			Price:       s.price,
			Quantity:    10,
			Image:       s.image,
			Description: s.description,
			SellerName:  "Artisan Market",
			CreatedAt:   sampleCatalogBase + int64(i)*1000,
			Views:       s.views,
		})
	}
	return products
}
