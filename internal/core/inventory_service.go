package core

import (
	"context"
	"errors"
	"strings"
)

// InventoryInput holds the client-settable inventory item fields.
type InventoryInput struct {
	ComponentName string `json:"componentName"`
	SupplierName  string `json:"supplierName"`
	StockLevel    int    `json:"stockLevel"`
}

// InventoryService manages stock records. Every write is gated on the named
// supplier existing; componentName is free text with no backing entity, so any
// non-empty string is accepted there.
type InventoryService interface {
	CreateItem(ctx context.Context, input InventoryInput) (*InventoryItem, error)
	UpdateItem(ctx context.Context, id string, input InventoryInput) (*InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (*InventoryItem, error)
	GetItems(ctx context.Context) ([]InventoryItem, error)
	GetItemsByComponent(ctx context.Context, componentName string) ([]InventoryItem, error)
	GetItemsBySupplier(ctx context.Context, supplierName string) ([]InventoryItem, error)
}

type inventoryService struct {
	inventory InventoryStore
	suppliers SupplierStore
}

// NewInventoryService constructs an InventoryService. The supplier store is
// consulted for referential checks only.
func NewInventoryService(inventory InventoryStore, suppliers SupplierStore) InventoryService {
	return &inventoryService{inventory: inventory, suppliers: suppliers}
}

// requireSupplier resolves name against the supplier store by exact,
// case-sensitive match. The check and the subsequent write are two store
// operations, not one transaction; a supplier deleted in between is an
// accepted race.
func requireSupplier(ctx context.Context, suppliers SupplierStore, name string) error {
	_, err := suppliers.GetByName(ctx, name)
	if err != nil {
		var nf NotFoundError
		if errors.As(err, &nf) {
			return ReferenceError{SupplierName: name}
		}
		return err
	}
	return nil
}

func validateInventoryInput(input InventoryInput) error {
	if strings.TrimSpace(input.ComponentName) == "" {
		return ValidationError{Field: "componentName", Reason: "must not be empty"}
	}
	if input.StockLevel < 0 {
		return ValidationError{Field: "stockLevel", Reason: "must not be negative"}
	}
	return nil
}

func (s *inventoryService) CreateItem(ctx context.Context, input InventoryInput) (*InventoryItem, error) {
	if err := validateInventoryInput(input); err != nil {
		return nil, err
	}
	if err := requireSupplier(ctx, s.suppliers, input.SupplierName); err != nil {
		return nil, err
	}
	return s.inventory.Create(ctx, InventoryItem{
		ComponentName: input.ComponentName,
		SupplierName:  input.SupplierName,
		StockLevel:    input.StockLevel,
	})
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, input InventoryInput) (*InventoryItem, error) {
	if err := validateInventoryInput(input); err != nil {
		return nil, err
	}
	if err := requireSupplier(ctx, s.suppliers, input.SupplierName); err != nil {
		return nil, err
	}
	return s.inventory.Update(ctx, id, InventoryItem{
		ComponentName: input.ComponentName,
		SupplierName:  input.SupplierName,
		StockLevel:    input.StockLevel,
	})
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.inventory.Delete(ctx, id)
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*InventoryItem, error) {
	return s.inventory.Get(ctx, id)
}

func (s *inventoryService) GetItems(ctx context.Context) ([]InventoryItem, error) {
	return s.inventory.List(ctx)
}

func (s *inventoryService) GetItemsByComponent(ctx context.Context, componentName string) ([]InventoryItem, error) {
	return s.inventory.ListByComponent(ctx, componentName)
}

func (s *inventoryService) GetItemsBySupplier(ctx context.Context, supplierName string) ([]InventoryItem, error) {
	return s.inventory.ListBySupplier(ctx, supplierName)
}
