package web

import "net/http"

// locationUtilization handles GET /api/reports/location-utilization.
func (h *Handler) locationUtilization(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.LocationUtilization(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
