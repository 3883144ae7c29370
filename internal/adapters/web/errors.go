package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"supplydesk/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONStatus writes a JSON response with an explicit status code.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError translates the core error taxonomy into transport failures.
// All four domain conditions are recoverable client errors; anything outside
// the taxonomy is a 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation core.ValidationError
		reference  core.ReferenceError
		notFound   core.NotFoundError
		transition core.InvalidTransitionError
	)
	switch {
	case errors.As(err, &validation):
		writeError(w, r, validation.Error(), "VALIDATION_FAILED", http.StatusUnprocessableEntity)
	case errors.As(err, &reference):
		writeError(w, r, reference.Error(), "UNKNOWN_SUPPLIER", http.StatusUnprocessableEntity)
	case errors.As(err, &notFound):
		writeError(w, r, notFound.Error(), "NOT_FOUND", http.StatusNotFound)
	case errors.As(err, &transition):
		writeError(w, r, transition.Error(), "INVALID_TRANSITION", http.StatusConflict)
	default:
		writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
