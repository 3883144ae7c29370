package web

import (
	"net/http"

	"supplydesk/internal/core"
)

// listInventory handles GET /api/inventory.
func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListInventory(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Items)
}

// createInventoryItem handles POST /api/inventory.
func (h *Handler) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	var input core.InventoryInput
	if !decodeJSON(w, r, &input) {
		return
	}
	item, err := h.svc.CreateInventoryItem(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, item)
}

// updateInventoryItem handles PUT /api/inventory/{id}.
func (h *Handler) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var input core.InventoryInput
	if !decodeJSON(w, r, &input) {
		return
	}
	item, err := h.svc.UpdateInventoryItem(r.Context(), urlParam(r, "id"), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, item)
}

// deleteInventoryItem handles DELETE /api/inventory/{id}.
func (h *Handler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInventoryItem(r.Context(), urlParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getInventoryByComponent handles GET /api/inventory/component/{name}.
func (h *Handler) getInventoryByComponent(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetInventoryByComponent(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Items)
}

// getInventoryBySupplier handles GET /api/inventory/supplier/{name}.
func (h *Handler) getInventoryBySupplier(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetInventoryBySupplier(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Items)
}
