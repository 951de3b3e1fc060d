// Package event defines the order domain events published through the outbox.
package event

import (
	"time"

	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/status"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message envelope for order domain events.
type OrderEvent struct {
	EventType        string    `json:"event_type"`
	OrderID          string    `json:"order_id"`
	Status           string    `json:"status"`
	OldStatus        string    `json:"old_status,omitempty"`
	NewStatus        string    `json:"new_status,omitempty"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	TotalItems       int       `json:"total_items"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// NewOrderCreated builds the event emitted when an order is first persisted.
func NewOrderCreated(o order.Order) OrderEvent {
	return OrderEvent{
		EventType:        EventOrderCreated,
		OrderID:          o.ID,
		Status:           o.Status.String(),
		TotalAmountCents: o.TotalAmountCents,
		TotalItems:       o.TotalItems,
		OccurredAt:       time.Now(),
	}
}

// NewOrderStatusChanged builds the event emitted when an order moves to a new
// status.
func NewOrderStatusChanged(o order.Order, old status.Status) OrderEvent {
	return OrderEvent{
		EventType:        EventOrderStatusChanged,
		OrderID:          o.ID,
		Status:           o.Status.String(),
		OldStatus:        old.String(),
		NewStatus:        o.Status.String(),
		TotalAmountCents: o.TotalAmountCents,
		TotalItems:       o.TotalItems,
		OccurredAt:       time.Now(),
	}
}
