package web

import (
	"encoding/json"
	"net/http"

	"fulfilment-monolith/internal/app"

	"github.com/go-chi/chi/v5"
)

// listWarehouses handles GET /warehouse.
func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.svc.ListWarehouses(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, warehouses)
}

// createWarehouse handles POST /warehouse.
func (h *Handler) createWarehouse(w http.ResponseWriter, r *http.Request) {
	var req app.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	warehouse, err := h.svc.CreateWarehouse(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, warehouse)
}

// getWarehouse handles GET /warehouse/{id}, where id is a business unit code
// or an internal numeric id.
func (h *Handler) getWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouse, err := h.svc.GetWarehouse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, warehouse)
}

// archiveWarehouse handles DELETE /warehouse/{id}.
func (h *Handler) archiveWarehouse(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ArchiveWarehouse(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// replaceWarehouse handles POST /warehouse/{id}/replacement. The path id is
// the business unit code being replaced; any code in the payload is ignored.
func (h *Handler) replaceWarehouse(w http.ResponseWriter, r *http.Request) {
	var req app.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	warehouse, err := h.svc.ReplaceWarehouse(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, warehouse)
}
