package web

import (
	"encoding/json"
	"net/http"

	"fulfilment-monolith/internal/app"
)

// listAssociations handles GET /fulfilment-association.
func (h *Handler) listAssociations(w http.ResponseWriter, r *http.Request) {
	associations, err := h.svc.ListAssociations(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, associations)
}

// associate handles POST /fulfilment-association.
func (h *Handler) associate(w http.ResponseWriter, r *http.Request) {
	var req app.AssociationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	association, err := h.svc.Associate(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, association)
}
