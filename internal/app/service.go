package app

import (
	"context"

	"supplydesk/internal/core"
)

// ApplicationService is the single interface the transport adapters call. It
// decouples presentation from the domain services; implementations contain no
// display logic of any kind.
type ApplicationService interface {
	// ── Suppliers ────────────────────────────────────────────────────────────
	ListSuppliers(ctx context.Context) (*SuppliersResult, error)
	CreateSupplier(ctx context.Context, input core.SupplierInput) (*core.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, input core.SupplierInput) (*core.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	GetSupplierByName(ctx context.Context, name string) (*core.Supplier, error)

	// ── Inventory ────────────────────────────────────────────────────────────
	ListInventory(ctx context.Context) (*InventoryResult, error)
	CreateInventoryItem(ctx context.Context, input core.InventoryInput) (*core.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id string, input core.InventoryInput) (*core.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id string) error
	GetInventoryByComponent(ctx context.Context, componentName string) (*InventoryResult, error)
	GetInventoryBySupplier(ctx context.Context, supplierName string) (*InventoryResult, error)

	// ── Orders ───────────────────────────────────────────────────────────────
	ListOrders(ctx context.Context) (*OrdersResult, error)
	PlaceOrder(ctx context.Context, input core.OrderInput) (*core.Order, error)
	UpdateOrder(ctx context.Context, id string, input core.OrderInput) (*core.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	// SetOrderStatus transitions an order through the lifecycle table. The
	// status arrives as the raw string from the transport.
	SetOrderStatus(ctx context.Context, id, status string) (*core.Order, error)
	GetOrdersByComponent(ctx context.Context, componentName string) (*OrdersResult, error)
	GetOrdersBySupplier(ctx context.Context, supplierName string) (*OrdersResult, error)

	// ── Quotations ───────────────────────────────────────────────────────────
	ListQuotations(ctx context.Context) (*QuotationsResult, error)
	CreateQuotation(ctx context.Context, input core.QuotationInput) (*core.Quotation, error)
	UpdateQuotation(ctx context.Context, id string, input core.QuotationInput) (*core.Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error

	// ── Analytics ────────────────────────────────────────────────────────────
	AveragePrice(ctx context.Context, componentName string) (*core.AveragePrice, error)
	TotalStock(ctx context.Context, componentName string) (*core.TotalStock, error)
	TotalOrders(ctx context.Context, componentName string) (*core.TotalOrders, error)
	ListComponents(ctx context.Context) (*ComponentsResult, error)

	// ── Users (boundary) ─────────────────────────────────────────────────────
	RegisterUser(ctx context.Context, username, password string) (*UserSession, error)
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)
	GetUser(ctx context.Context, id string) (*core.User, error)
}
