package order

import (
	"time"

	"github.com/productsapp/orders-svc/internal/service/models/orderitem"
	"github.com/productsapp/orders-svc/internal/service/models/status"
)

// Order represents a purchase order in the system. TotalAmountCents and
// TotalItems are computed once at creation and are immutable afterwards; only
// Status changes over the order's lifetime.
type Order struct {
	ID               string                `json:"id"`
	Status           status.Status         `json:"status"`
	TotalAmountCents int64                 `json:"totalAmountCents"`
	TotalItems       int                   `json:"totalItems"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
	OrderItems       []orderitem.OrderItem `json:"orderItems"`
}
