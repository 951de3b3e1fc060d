package listorders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/status"
	"github.com/productsapp/orders-svc/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	FindAll(ctx context.Context, query order.PageQuery) (*order.Page, error)
}

// ListOrders handles the paginated listing request.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	queryParams := r.URL.Query()

	query := order.PageQuery{}

	if pageStr := queryParams.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			httperr.Write(w, r, errs.BadRequest("page must be a positive integer"))

			return
		}
		query.Page = page
	}

	if limitStr := queryParams.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			httperr.Write(w, r, errs.BadRequest("limit must be a positive integer"))

			return
		}
		query.Limit = limit
	}

	if statusStr := queryParams.Get("status"); statusStr != "" {
		st, err := status.ParseStatus(statusStr)
		if err != nil {
			httperr.Write(w, r, errs.BadRequest(fmt.Sprintf(
				"Status must be one of the following values: %v", status.All(),
			)))

			return
		}
		query.Status = &st
	}

	page, err := service.FindAll(r.Context(), query)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error listing orders", "error", err)
		httperr.Write(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		slog.ErrorContext(r.Context(), "Error writing list orders response", "error", err)
	}
}
