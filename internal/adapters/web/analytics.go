package web

import "net/http"

// averagePrice handles GET /api/analytics/average-price/{name}.
func (h *Handler) averagePrice(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.AveragePrice(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// totalStock handles GET /api/analytics/total-stock/{name}.
func (h *Handler) totalStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.TotalStock(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// totalOrders handles GET /api/analytics/total-orders/{name}.
func (h *Handler) totalOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.TotalOrders(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// listComponents handles GET /api/analytics/components — the derived view of
// distinct component names across inventory.
func (h *Handler) listComponents(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListComponents(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Components)
}
