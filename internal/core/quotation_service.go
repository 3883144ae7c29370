package core

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// QuotationInput holds the client-settable quotation fields. Price is accepted
// as a decimal string and stored at two-decimal precision.
type QuotationInput struct {
	ComponentName     string          `json:"componentName"`
	SupplierName      string          `json:"supplierName"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"availableQuantity"`
}

// QuotationService manages price quotations. Quotations are independent of
// orders and inventory: accepting or deleting one never mutates stockLevel.
type QuotationService interface {
	CreateQuotation(ctx context.Context, input QuotationInput) (*Quotation, error)
	UpdateQuotation(ctx context.Context, id string, input QuotationInput) (*Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error
	GetQuotation(ctx context.Context, id string) (*Quotation, error)
	GetQuotations(ctx context.Context) ([]Quotation, error)
	GetQuotationsByComponent(ctx context.Context, componentName string) ([]Quotation, error)
}

type quotationService struct {
	quotations QuotationStore
	suppliers  SupplierStore
}

// NewQuotationService constructs a QuotationService. The supplier store is
// consulted for referential checks only.
func NewQuotationService(quotations QuotationStore, suppliers SupplierStore) QuotationService {
	return &quotationService{quotations: quotations, suppliers: suppliers}
}

func validateQuotationInput(input QuotationInput) error {
	if strings.TrimSpace(input.ComponentName) == "" {
		return ValidationError{Field: "componentName", Reason: "must not be empty"}
	}
	if input.Price.IsNegative() {
		return ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if input.AvailableQuantity < 0 {
		return ValidationError{Field: "availableQuantity", Reason: "must not be negative"}
	}
	return nil
}

func (s *quotationService) CreateQuotation(ctx context.Context, input QuotationInput) (*Quotation, error) {
	if err := validateQuotationInput(input); err != nil {
		return nil, err
	}
	if err := requireSupplier(ctx, s.suppliers, input.SupplierName); err != nil {
		return nil, err
	}
	return s.quotations.Create(ctx, Quotation{
		ComponentName:     input.ComponentName,
		SupplierName:      input.SupplierName,
		Price:             input.Price.Round(2),
		AvailableQuantity: input.AvailableQuantity,
	})
}

func (s *quotationService) UpdateQuotation(ctx context.Context, id string, input QuotationInput) (*Quotation, error) {
	if err := validateQuotationInput(input); err != nil {
		return nil, err
	}
	if err := requireSupplier(ctx, s.suppliers, input.SupplierName); err != nil {
		return nil, err
	}
	return s.quotations.Update(ctx, id, Quotation{
		ComponentName:     input.ComponentName,
		SupplierName:      input.SupplierName,
		Price:             input.Price.Round(2),
		AvailableQuantity: input.AvailableQuantity,
	})
}

func (s *quotationService) DeleteQuotation(ctx context.Context, id string) error {
	return s.quotations.Delete(ctx, id)
}

func (s *quotationService) GetQuotation(ctx context.Context, id string) (*Quotation, error) {
	return s.quotations.Get(ctx, id)
}

func (s *quotationService) GetQuotations(ctx context.Context) ([]Quotation, error) {
	return s.quotations.List(ctx)
}

func (s *quotationService) GetQuotationsByComponent(ctx context.Context, componentName string) ([]Quotation, error) {
	return s.quotations.ListByComponent(ctx, componentName)
}
