package getorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	FindOne(ctx context.Context, id string) (*order.Order, error)
}

// GetOrder handles the single-order read request.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	ord, err := service.FindOne(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error getting order", "error", err, "order_id", id)
		httperr.Write(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ord); err != nil {
		slog.ErrorContext(r.Context(), "Error writing get order response", "error", err)
	}
}
