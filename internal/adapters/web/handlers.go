package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"supplydesk/internal/app"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	// ── Public ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)
	r.Post("/api/users/register", h.register)
	r.Post("/api/users/login", h.login)
	r.Post("/api/users/logout", h.logout)

	// ── Protected API (401 JSON if unauthenticated) ──────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Get("/api/users/me", h.me)

		// Suppliers
		r.Get("/api/suppliers", h.listSuppliers)
		r.Post("/api/suppliers", h.createSupplier)
		r.Put("/api/suppliers/{id}", h.updateSupplier)
		r.Delete("/api/suppliers/{id}", h.deleteSupplier)
		r.Get("/api/suppliers/name/{name}", h.getSupplierByName)

		// Inventory
		r.Get("/api/inventory", h.listInventory)
		r.Post("/api/inventory", h.createInventoryItem)
		r.Put("/api/inventory/{id}", h.updateInventoryItem)
		r.Delete("/api/inventory/{id}", h.deleteInventoryItem)
		r.Get("/api/inventory/component/{name}", h.getInventoryByComponent)
		r.Get("/api/inventory/supplier/{name}", h.getInventoryBySupplier)

		// Orders
		r.Get("/api/orders", h.listOrders)
		r.Post("/api/orders", h.placeOrder)
		r.Put("/api/orders/{id}", h.updateOrder)
		r.Delete("/api/orders/{id}", h.deleteOrder)
		r.Put("/api/orders/{id}/status", h.setOrderStatus)
		r.Get("/api/orders/component/{name}", h.getOrdersByComponent)
		r.Get("/api/orders/supplier/{name}", h.getOrdersBySupplier)

		// Quotations
		r.Get("/api/quotations", h.listQuotations)
		r.Post("/api/quotations", h.createQuotation)
		r.Put("/api/quotations/{id}", h.updateQuotation)
		r.Delete("/api/quotations/{id}", h.deleteQuotation)

		// Analytics
		r.Get("/api/analytics/average-price/{name}", h.averagePrice)
		r.Get("/api/analytics/total-stock/{name}", h.totalStock)
		r.Get("/api/analytics/total-orders/{name}", h.totalOrders)
		r.Get("/api/analytics/components", h.listComponents)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// urlParam extracts a chi URL parameter.
func urlParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body
// exceeds the size limit set by RequestBodyLimit middleware; HTTP 400 for all
// other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
