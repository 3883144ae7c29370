package core

import (
	"context"
	"net/mail"
	"strings"
)

// SupplierInput holds the client-settable supplier fields. Updates are a full
// replacement of all three.
type SupplierInput struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// SupplierService manages supplier master data.
type SupplierService interface {
	// CreateSupplier validates the input, assigns a fresh id, and persists.
	CreateSupplier(ctx context.Context, input SupplierInput) (*Supplier, error)

	// UpdateSupplier replaces the three mutable fields of an existing supplier.
	UpdateSupplier(ctx context.Context, id string, input SupplierInput) (*Supplier, error)

	// DeleteSupplier hard-deletes a supplier. Dependent inventory, order, and
	// quotation records that reference it by name are left in place (orphan
	// policy); their next supplierName change must name a live supplier.
	DeleteSupplier(ctx context.Context, id string) error

	GetSupplier(ctx context.Context, id string) (*Supplier, error)
	GetSuppliers(ctx context.Context) ([]Supplier, error)
	GetSupplierByName(ctx context.Context, name string) (*Supplier, error)
}

type supplierService struct {
	suppliers SupplierStore
}

// NewSupplierService constructs a SupplierService on the given store.
func NewSupplierService(suppliers SupplierStore) SupplierService {
	return &supplierService{suppliers: suppliers}
}

func validateSupplierInput(input SupplierInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if _, err := mail.ParseAddress(input.ContactEmail); err != nil {
		return ValidationError{Field: "contactEmail", Reason: "must be a valid email address"}
	}
	if strings.TrimSpace(input.ContactPhone) == "" {
		return ValidationError{Field: "contactPhone", Reason: "must not be empty"}
	}
	return nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, input SupplierInput) (*Supplier, error) {
	if err := validateSupplierInput(input); err != nil {
		return nil, err
	}
	return s.suppliers.Create(ctx, Supplier{
		Name:         input.Name,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	})
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id string, input SupplierInput) (*Supplier, error) {
	if err := validateSupplierInput(input); err != nil {
		return nil, err
	}
	return s.suppliers.Update(ctx, id, Supplier{
		Name:         input.Name,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	})
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id string) error {
	return s.suppliers.Delete(ctx, id)
}

func (s *supplierService) GetSupplier(ctx context.Context, id string) (*Supplier, error) {
	return s.suppliers.Get(ctx, id)
}

func (s *supplierService) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *supplierService) GetSupplierByName(ctx context.Context, name string) (*Supplier, error) {
	return s.suppliers.GetByName(ctx, name)
}
