package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/tripplanner/internal/api"
	"github.com/pkordes/tripplanner/internal/domain"
)

// Error codes of api.ErrorDetail.
const (
	codeNotFound   = "not_found"
	codeValidation = "validation_error"
	codeBadRequest = "bad_request"
	codeTooLarge   = "request_too_large"
	codeInternal   = "internal_error"
)

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("handler: encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: api.ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404. The caller supplies the message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, codeNotFound, message)
}

// validationFailed writes a 422 for a domain validation failure.
func validationFailed(w http.ResponseWriter, err error) {
	writeError(w, http.StatusUnprocessableEntity, codeValidation, unwrapMessage(err))
}

// internalError logs err and writes a 500 without leaking details.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
}

// unwrapMessage extracts the human-readable part of a validation error.
// e.g. "service.TripService.Create: validation error: destination is required" → "destination is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
