package product

import (
	"fmt"
)

// Product is a catalog record returned by the products service. Products are
// never persisted here; they are fetched on demand and referenced by id only.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// Record is the wire form of a product in a validation reply. Fields are
// pointers so that a missing field can be told apart from a zero value.
type Record struct {
	ID         *int64  `json:"id"`
	Name       *string `json:"name"`
	PriceCents *int64  `json:"priceCents"`
}

// ToProduct converts a wire record to a Product. A record missing any field is
// a malformed reply and fails the whole validation, never a zero-price order.
func (r Record) ToProduct() (Product, error) {
	if r.ID == nil {
		return Product{}, fmt.Errorf("product record missing id")
	}
	if r.Name == nil {
		return Product{}, fmt.Errorf("product record %d missing name", *r.ID)
	}
	if r.PriceCents == nil {
		return Product{}, fmt.Errorf("product record %d missing priceCents", *r.ID)
	}

	return Product{
		ID:         *r.ID,
		Name:       *r.Name,
		PriceCents: *r.PriceCents,
	}, nil
}
