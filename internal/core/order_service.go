package core

import (
	"context"
	"strings"
)

// OrderInput holds the client-settable order fields. Status is optional: on
// create an empty status gets DefaultOrderStatus; on update an empty status
// keeps the current one.
type OrderInput struct {
	ComponentName string      `json:"componentName"`
	SupplierName  string      `json:"supplierName"`
	Quantity      int         `json:"quantity"`
	Status        OrderStatus `json:"status,omitempty"`
}

// OrderService manages the order lifecycle. Status transitions are governed by
// the allowed-transition table; nothing in the lifecycle touches inventory
// stock or quotation quantities.
type OrderService interface {
	// PlaceOrder validates the input, checks the supplier reference, and
	// persists a new order in the requested (or default) initial status.
	PlaceOrder(ctx context.Context, input OrderInput) (*Order, error)

	// UpdateOrder replaces the mutable fields of a non-terminal order. A status
	// carried in the input is applied through the transition table.
	UpdateOrder(ctx context.Context, id string, input OrderInput) (*Order, error)

	// SetStatus transitions an order to the target status. Fails with
	// NotFoundError for an unknown id, ValidationError for a status outside the
	// vocabulary, and InvalidTransitionError when the current status is
	// terminal.
	SetStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)

	DeleteOrder(ctx context.Context, id string) error
	GetOrder(ctx context.Context, id string) (*Order, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrdersByComponent(ctx context.Context, componentName string) ([]Order, error)
	GetOrdersBySupplier(ctx context.Context, supplierName string) ([]Order, error)
}

type orderService struct {
	orders    OrderStore
	suppliers SupplierStore
}

// NewOrderService constructs an OrderService. The supplier store is consulted
// for referential checks only.
func NewOrderService(orders OrderStore, suppliers SupplierStore) OrderService {
	return &orderService{orders: orders, suppliers: suppliers}
}

func validateOrderInput(input OrderInput) error {
	if strings.TrimSpace(input.ComponentName) == "" {
		return ValidationError{Field: "componentName", Reason: "must not be empty"}
	}
	if input.Quantity < 1 {
		return ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if input.Status != "" && !input.Status.Valid() {
		return ValidationError{Field: "status", Reason: "unknown status " + string(input.Status)}
	}
	return nil
}

func (s *orderService) PlaceOrder(ctx context.Context, input OrderInput) (*Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}
	if err := requireSupplier(ctx, s.suppliers, input.SupplierName); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = DefaultOrderStatus
	}
	return s.orders.Create(ctx, Order{
		ComponentName: input.ComponentName,
		SupplierName:  input.SupplierName,
		Quantity:      input.Quantity,
		Status:        status,
	})
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, input OrderInput) (*Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}
	if err := requireSupplier(ctx, s.suppliers, input.SupplierName); err != nil {
		return nil, err
	}

	current, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = current.Status
	}
	if current.Status.Terminal() {
		return nil, InvalidTransitionError{From: current.Status, To: status}
	}
	if status != current.Status && !current.Status.CanTransitionTo(status) {
		return nil, InvalidTransitionError{From: current.Status, To: status}
	}
	// The read above only resolves the status default; the store repeats the
	// transition check under its own lock before committing.
	return s.orders.Update(ctx, id, Order{
		ComponentName: input.ComponentName,
		SupplierName:  input.SupplierName,
		Quantity:      input.Quantity,
		Status:        status,
	})
}

func (s *orderService) SetStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	if !status.Valid() {
		return nil, ValidationError{Field: "status", Reason: "unknown status " + string(status)}
	}
	// The transition check runs inside the store's critical section; a separate
	// read here would race with concurrent transitions.
	return s.orders.UpdateStatus(ctx, id, status)
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *orderService) GetOrders(ctx context.Context) ([]Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) GetOrdersByComponent(ctx context.Context, componentName string) ([]Order, error) {
	return s.orders.ListByComponent(ctx, componentName)
}

func (s *orderService) GetOrdersBySupplier(ctx context.Context, supplierName string) ([]Order, error) {
	return s.orders.ListBySupplier(ctx, supplierName)
}
