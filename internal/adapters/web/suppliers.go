package web

import (
	"net/http"

	"supplydesk/internal/core"
)

// listSuppliers handles GET /api/suppliers.
func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Suppliers)
}

// createSupplier handles POST /api/suppliers.
func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var input core.SupplierInput
	if !decodeJSON(w, r, &input) {
		return
	}
	supplier, err := h.svc.CreateSupplier(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, supplier)
}

// updateSupplier handles PUT /api/suppliers/{id} — full replacement of the
// three contact fields.
func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	var input core.SupplierInput
	if !decodeJSON(w, r, &input) {
		return
	}
	supplier, err := h.svc.UpdateSupplier(r.Context(), urlParam(r, "id"), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, supplier)
}

// deleteSupplier handles DELETE /api/suppliers/{id}. Deletion is hard and does
// not cascade to records referencing the supplier by name.
func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSupplier(r.Context(), urlParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getSupplierByName handles GET /api/suppliers/name/{name}.
func (h *Handler) getSupplierByName(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.svc.GetSupplierByName(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, supplier)
}
