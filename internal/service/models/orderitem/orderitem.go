package orderitem

import (
	"time"
)

// OrderItem represents a line within an order. PriceCents is the unit price
// captured when the order was created; it never changes afterwards, even if
// the catalog price does.
type OrderItem struct {
	ID         int64     `json:"id"`
	OrderID    string    `json:"orderId"`
	ProductID  int64     `json:"productId"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// ProductName is resolved from the products service on create and read
	// paths; it is never persisted.
	ProductName string `json:"name,omitempty"`
}
