// Package httperr maps service errors to the HTTP boundary: a JSON body of
// {status, message}. An error that carries no usable numeric status defaults
// to 400 with the raw error text as the message.
package httperr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/productsapp/orders-svc/internal/service/errs"
)

type body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Write serializes err to the response.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	message := err.Error()

	var svcErr *errs.Error
	if errors.As(err, &svcErr) {
		if svcErr.Status >= 100 && svcErr.Status < 600 {
			status = svcErr.Status
		}
		message = svcErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encodeErr := json.NewEncoder(w).Encode(body{Status: status, Message: message}); encodeErr != nil {
		slog.ErrorContext(r.Context(), "Error writing error response", "error", encodeErr)
	}
}
