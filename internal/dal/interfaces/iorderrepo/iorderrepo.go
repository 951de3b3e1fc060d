package iorderrepo

import (
	"context"

	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/status"
)

// IOrderRepository is an interface for the order postgres repository.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) (order.Order, error)

	// GetByID returns nil when no order with the given id exists.
	GetByID(ctx context.Context, id string) (*order.Order, error)

	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)

	// Count returns the number of orders matching the status filter; a nil
	// filter counts every order.
	Count(ctx context.Context, st *status.Status) (int, error)

	// UpdateStatus persists the new status and returns the updated row, or
	// nil when the order does not exist.
	UpdateStatus(ctx context.Context, id string, st status.Status) (*order.Order, error)
}
