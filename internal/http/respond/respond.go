// Package respond writes JSON responses and maps domain errors onto
// HTTP status codes at the handler boundary.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/benchlane/benchlane/internal/apperr"
)

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Error maps a domain error onto its HTTP status and writes a short
// human-readable body. Unknown errors become an opaque 500.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperr.ErrUnauthorized):
		status = http.StatusForbidden
		message = "not allowed"
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, apperr.ErrAlreadyProcessed):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperr.ErrInvalidTransition):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperr.ErrExternalService):
		status = http.StatusBadGateway
		message = "upstream service unavailable"
	default:
		slog.Error("unhandled error", "error", err)
	}

	JSON(w, status, errorResponse{Error: message})
}
