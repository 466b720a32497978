package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fulfilment-monolith/internal/core"
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

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps a service error to its HTTP representation. Domain
// rejections keep their kind and message; anything else becomes a generic 500
// so internal state never leaks to callers.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var de *core.DomainError
	if errors.As(err, &de) {
		writeError(w, r, de.Message, string(de.Kind), statusFor(de.Kind))
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
}

func statusFor(kind core.ErrorKind) int {
	switch kind {
	case core.KindMissingField, core.KindInvalidValue:
		return http.StatusUnprocessableEntity
	case core.KindNotFound:
		return http.StatusNotFound
	case core.KindConflict:
		return http.StatusConflict
	default:
		// Capacity, count, duplicate-code, unknown-location, stock and limit
		// rejections are all plain bad requests.
		return http.StatusBadRequest
	}
}
