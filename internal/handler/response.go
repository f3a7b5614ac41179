// Package handler contains the HTTP layer: request decoding, path parameter
// parsing, and the mapping from domain errors to status codes. Handlers hold a
// service and a logger and never touch the store directly.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wearecreatives/api/internal/apperror"
)

// ErrorResponse is the error body shape shared by every endpoint. Errors is
// only present on validation failures, as a field → message map keyed by the
// JSON field names the client sent.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// writeJSON sends data with the given status. Headers must be set before the
// first write, so the order here is fixed.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError translates a domain error into an HTTP response. Services return
// apperror values (possibly wrapped); errors.Is walks the chain. Anything not
// recognized becomes a generic 500 so internal details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		}

		writeJSON(w, status, ErrorResponse{
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "An unexpected error occurred",
	})
}

// pathID parses an integer path parameter. The bool result is false when the
// value is missing or not a number; callers respond 400 with their own message.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into dst. A malformed body becomes a
// 400 with a stable message; handlers return immediately on false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid JSON body"})
		return false
	}
	return true
}
