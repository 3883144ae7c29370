package app

import (
	"context"

	"supplydesk/internal/core"
)

type appService struct {
	suppliers  core.SupplierService
	inventory  core.InventoryService
	orders     core.OrderService
	quotations core.QuotationService
	analytics  core.AnalyticsService
	users      core.UserService
}

// NewAppService wires the domain services behind the ApplicationService facade.
func NewAppService(
	suppliers core.SupplierService,
	inventory core.InventoryService,
	orders core.OrderService,
	quotations core.QuotationService,
	analytics core.AnalyticsService,
	users core.UserService,
) ApplicationService {
	return &appService{
		suppliers:  suppliers,
		inventory:  inventory,
		orders:     orders,
		quotations: quotations,
		analytics:  analytics,
		users:      users,
	}
}

// NewAppServiceFromStore is the common wiring path: one store, default services.
func NewAppServiceFromStore(store core.Store) ApplicationService {
	return NewAppService(
		core.NewSupplierService(store.Suppliers()),
		core.NewInventoryService(store.Inventory(), store.Suppliers()),
		core.NewOrderService(store.Orders(), store.Suppliers()),
		core.NewQuotationService(store.Quotations(), store.Suppliers()),
		core.NewAnalyticsService(store.Inventory(), store.Orders(), store.Quotations()),
		core.NewUserService(store.Users()),
	)
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (s *appService) ListSuppliers(ctx context.Context) (*SuppliersResult, error) {
	suppliers, err := s.suppliers.GetSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return &SuppliersResult{Suppliers: suppliers}, nil
}

func (s *appService) CreateSupplier(ctx context.Context, input core.SupplierInput) (*core.Supplier, error) {
	return s.suppliers.CreateSupplier(ctx, input)
}

func (s *appService) UpdateSupplier(ctx context.Context, id string, input core.SupplierInput) (*core.Supplier, error) {
	return s.suppliers.UpdateSupplier(ctx, id, input)
}

func (s *appService) DeleteSupplier(ctx context.Context, id string) error {
	return s.suppliers.DeleteSupplier(ctx, id)
}

func (s *appService) GetSupplierByName(ctx context.Context, name string) (*core.Supplier, error) {
	return s.suppliers.GetSupplierByName(ctx, name)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *appService) ListInventory(ctx context.Context) (*InventoryResult, error) {
	items, err := s.inventory.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	return &InventoryResult{Items: items}, nil
}

func (s *appService) CreateInventoryItem(ctx context.Context, input core.InventoryInput) (*core.InventoryItem, error) {
	return s.inventory.CreateItem(ctx, input)
}

func (s *appService) UpdateInventoryItem(ctx context.Context, id string, input core.InventoryInput) (*core.InventoryItem, error) {
	return s.inventory.UpdateItem(ctx, id, input)
}

func (s *appService) DeleteInventoryItem(ctx context.Context, id string) error {
	return s.inventory.DeleteItem(ctx, id)
}

func (s *appService) GetInventoryByComponent(ctx context.Context, componentName string) (*InventoryResult, error) {
	items, err := s.inventory.GetItemsByComponent(ctx, componentName)
	if err != nil {
		return nil, err
	}
	return &InventoryResult{Items: items}, nil
}

func (s *appService) GetInventoryBySupplier(ctx context.Context, supplierName string) (*InventoryResult, error) {
	items, err := s.inventory.GetItemsBySupplier(ctx, supplierName)
	if err != nil {
		return nil, err
	}
	return &InventoryResult{Items: items}, nil
}

// ── Orders ────────────────────────────────────────────────────────────────────

func (s *appService) ListOrders(ctx context.Context) (*OrdersResult, error) {
	orders, err := s.orders.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &OrdersResult{Orders: orders}, nil
}

func (s *appService) PlaceOrder(ctx context.Context, input core.OrderInput) (*core.Order, error) {
	return s.orders.PlaceOrder(ctx, input)
}

func (s *appService) UpdateOrder(ctx context.Context, id string, input core.OrderInput) (*core.Order, error) {
	return s.orders.UpdateOrder(ctx, id, input)
}

func (s *appService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.DeleteOrder(ctx, id)
}

func (s *appService) SetOrderStatus(ctx context.Context, id, status string) (*core.Order, error) {
	return s.orders.SetStatus(ctx, id, core.OrderStatus(status))
}

func (s *appService) GetOrdersByComponent(ctx context.Context, componentName string) (*OrdersResult, error) {
	orders, err := s.orders.GetOrdersByComponent(ctx, componentName)
	if err != nil {
		return nil, err
	}
	return &OrdersResult{Orders: orders}, nil
}

func (s *appService) GetOrdersBySupplier(ctx context.Context, supplierName string) (*OrdersResult, error) {
	orders, err := s.orders.GetOrdersBySupplier(ctx, supplierName)
	if err != nil {
		return nil, err
	}
	return &OrdersResult{Orders: orders}, nil
}

// ── Quotations ────────────────────────────────────────────────────────────────

func (s *appService) ListQuotations(ctx context.Context) (*QuotationsResult, error) {
	quotations, err := s.quotations.GetQuotations(ctx)
	if err != nil {
		return nil, err
	}
	return &QuotationsResult{Quotations: quotations}, nil
}

func (s *appService) CreateQuotation(ctx context.Context, input core.QuotationInput) (*core.Quotation, error) {
	return s.quotations.CreateQuotation(ctx, input)
}

func (s *appService) UpdateQuotation(ctx context.Context, id string, input core.QuotationInput) (*core.Quotation, error) {
	return s.quotations.UpdateQuotation(ctx, id, input)
}

func (s *appService) DeleteQuotation(ctx context.Context, id string) error {
	return s.quotations.DeleteQuotation(ctx, id)
}

// ── Analytics ─────────────────────────────────────────────────────────────────

func (s *appService) AveragePrice(ctx context.Context, componentName string) (*core.AveragePrice, error) {
	return s.analytics.GetAveragePrice(ctx, componentName)
}

func (s *appService) TotalStock(ctx context.Context, componentName string) (*core.TotalStock, error) {
	return s.analytics.GetTotalStock(ctx, componentName)
}

func (s *appService) TotalOrders(ctx context.Context, componentName string) (*core.TotalOrders, error) {
	return s.analytics.GetTotalOrders(ctx, componentName)
}

func (s *appService) ListComponents(ctx context.Context) (*ComponentsResult, error) {
	components, err := s.analytics.ListComponents(ctx)
	if err != nil {
		return nil, err
	}
	return &ComponentsResult{Components: components}, nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (s *appService) RegisterUser(ctx context.Context, username, password string) (*UserSession, error) {
	user, err := s.users.Register(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return &UserSession{UserID: user.ID, Username: user.Username}, nil
}

func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return &UserSession{UserID: user.ID, Username: user.Username}, nil
}

func (s *appService) GetUser(ctx context.Context, id string) (*core.User, error) {
	return s.users.GetUser(ctx, id)
}
