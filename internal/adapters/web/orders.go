package web

import (
	"net/http"

	"supplydesk/internal/core"
)

// listOrders handles GET /api/orders.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListOrders(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Orders)
}

// placeOrder handles POST /api/orders. An omitted status gets the configured
// default initial status.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var input core.OrderInput
	if !decodeJSON(w, r, &input) {
		return
	}
	order, err := h.svc.PlaceOrder(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, order)
}

// updateOrder handles PUT /api/orders/{id} — replaces the mutable fields of a
// non-terminal order.
func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var input core.OrderInput
	if !decodeJSON(w, r, &input) {
		return
	}
	order, err := h.svc.UpdateOrder(r.Context(), urlParam(r, "id"), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, order)
}

// deleteOrder handles DELETE /api/orders/{id}.
func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteOrder(r.Context(), urlParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// setOrderStatus handles PUT /api/orders/{id}/status?status=S. The target
// status rides in the query string, matching the UI contract.
func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		writeError(w, r, "status query parameter is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	order, err := h.svc.SetOrderStatus(r.Context(), urlParam(r, "id"), status)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, order)
}

// getOrdersByComponent handles GET /api/orders/component/{name}.
func (h *Handler) getOrdersByComponent(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetOrdersByComponent(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Orders)
}

// getOrdersBySupplier handles GET /api/orders/supplier/{name}.
func (h *Handler) getOrdersBySupplier(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetOrdersBySupplier(r.Context(), urlParam(r, "name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Orders)
}
