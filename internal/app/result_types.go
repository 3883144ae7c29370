package app

import "supplydesk/internal/core"

// SuppliersResult wraps a supplier listing.
type SuppliersResult struct {
	Suppliers []core.Supplier `json:"suppliers"`
}

// InventoryResult wraps an inventory listing.
type InventoryResult struct {
	Items []core.InventoryItem `json:"items"`
}

// OrdersResult wraps an order listing.
type OrdersResult struct {
	Orders []core.Order `json:"orders"`
}

// QuotationsResult wraps a quotation listing.
type QuotationsResult struct {
	Quotations []core.Quotation `json:"quotations"`
}

// ComponentsResult wraps the derived component-name view.
type ComponentsResult struct {
	Components []string `json:"components"`
}

// UserSession identifies an authenticated (or freshly registered) user. Token
// issuance happens in the transport adapter.
type UserSession struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
