package changestatus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/status"
	"github.com/productsapp/orders-svc/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	ChangeStatus(ctx context.Context, id string, newStatus status.Status) (*order.Order, error)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeStatus handles the status transition request.
func ChangeStatus(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Error decoding change status request", "error", err)
		httperr.Write(w, r, errs.BadRequest("Failed to decode request body"))

		return
	}

	newStatus, err := status.ParseStatus(req.Status)
	if err != nil {
		httperr.Write(w, r, errs.BadRequest(fmt.Sprintf(
			"Status must be one of the following values: %v", status.All(),
		)))

		return
	}

	updated, err := service.ChangeStatus(r.Context(), id, newStatus)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error changing order status", "error", err, "order_id", id)
		httperr.Write(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		slog.ErrorContext(r.Context(), "Error writing change status response", "error", err)
	}
}
