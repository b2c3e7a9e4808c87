package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionProduct is the document store collection holding products.
const CollectionProduct = "product"

// DefaultBrand is applied when a caller creates a product without a brand.
const DefaultBrand = "Мебелла"

// Variant is one purchasable configuration of a product (color/size/price).
// Variants are embedded in their parent product and have no identity of
// their own. SKU uniqueness is intentionally not enforced.
type Variant struct {
	Color    string  `bson:"color" json:"color"`
	ColorHex string  `bson:"color_hex,omitempty" json:"color_hex,omitempty"`
	Size     string  `bson:"size,omitempty" json:"size,omitempty"`
	SKU      string  `bson:"sku,omitempty" json:"sku,omitempty"`
	Price    float64 `bson:"price" json:"price"`
	Stock    int     `bson:"stock" json:"stock"`
}

// Product is a furniture model with shared descriptive fields and zero or
// more variants. Category is a free string; the fixed catalog categories are
// display data, not a schema constraint.
type Product struct {
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Category    string    `bson:"category" json:"category"`
	BasePrice   *float64  `bson:"base_price,omitempty" json:"base_price,omitempty"`
	Images      []string  `bson:"images" json:"images"`
	Variants    []Variant `bson:"variants" json:"variants"`
	Brand       string    `bson:"brand" json:"brand"`
	Material    string    `bson:"material,omitempty" json:"material,omitempty"`
	ColorFamily []string  `bson:"color_family,omitempty" json:"color_family,omitempty"`
}

// StoredProduct is a product as persisted: the product fields plus the
// store-assigned id and the timestamps stamped at insert time.
type StoredProduct struct {
	ID        primitive.ObjectID `bson:"_id"`
	Product   `bson:",inline"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
