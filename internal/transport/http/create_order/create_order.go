package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/orderitem"
	"github.com/productsapp/orders-svc/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, items []orderitem.OrderItem) (*order.Order, error)
}

type createOrderRequest struct {
	Items []createOrderItem `json:"items"`
}

type createOrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (req *createOrderRequest) validate() error {
	if len(req.Items) == 0 {
		return errs.BadRequest("items must not be empty")
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return errs.BadRequest("productId must be a positive number")
		}
		if item.Quantity <= 0 {
			return errs.BadRequest("quantity must be a positive number")
		}
	}

	return nil
}

// CreateOrder handles the order creation request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Error decoding create order request", "error", err)
		httperr.Write(w, r, errs.BadRequest("Failed to decode request body"))

		return
	}

	if err := req.validate(); err != nil {
		httperr.Write(w, r, err)

		return
	}

	items := make([]orderitem.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderitem.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	created, err := service.Create(r.Context(), items)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error creating order", "error", err)
		httperr.Write(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.ErrorContext(r.Context(), "Error writing create order response", "error", err)
	}
}
