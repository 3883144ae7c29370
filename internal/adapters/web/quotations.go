package web

import (
	"net/http"

	"supplydesk/internal/core"
)

// listQuotations handles GET /api/quotations.
func (h *Handler) listQuotations(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListQuotations(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Quotations)
}

// createQuotation handles POST /api/quotations.
func (h *Handler) createQuotation(w http.ResponseWriter, r *http.Request) {
	var input core.QuotationInput
	if !decodeJSON(w, r, &input) {
		return
	}
	quotation, err := h.svc.CreateQuotation(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, quotation)
}

// updateQuotation handles PUT /api/quotations/{id}.
func (h *Handler) updateQuotation(w http.ResponseWriter, r *http.Request) {
	var input core.QuotationInput
	if !decodeJSON(w, r, &input) {
		return
	}
	quotation, err := h.svc.UpdateQuotation(r.Context(), urlParam(r, "id"), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, quotation)
}

// deleteQuotation handles DELETE /api/quotations/{id}.
func (h *Handler) deleteQuotation(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteQuotation(r.Context(), urlParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
