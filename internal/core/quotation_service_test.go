package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"supplydesk/internal/core"
	"supplydesk/internal/store/memory"
)

func TestQuotation_Create(t *testing.T) {
	ctx := context.Background()
	suppliers := memory.NewSupplierStore()
	svc := core.NewQuotationService(memory.NewQuotationStore(), suppliers)
	seedSupplier(t, suppliers, "Acme")

	t.Run("Success", func(t *testing.T) {
		q, err := svc.CreateQuotation(ctx, core.QuotationInput{
			ComponentName:     "CPU",
			SupplierName:      "Acme",
			Price:             decimal.RequireFromString("149.99"),
			AvailableQuantity: 20,
		})
		if err != nil {
			t.Fatalf("CreateQuotation: %v", err)
		}
		if !q.Price.Equal(decimal.RequireFromString("149.99")) {
			t.Errorf("expected price 149.99, got %s", q.Price)
		}
	})

	t.Run("Price_RoundedToTwoDecimals", func(t *testing.T) {
		q, err := svc.CreateQuotation(ctx, core.QuotationInput{
			ComponentName:     "CPU",
			SupplierName:      "Acme",
			Price:             decimal.RequireFromString("10.005"),
			AvailableQuantity: 1,
		})
		if err != nil {
			t.Fatalf("CreateQuotation: %v", err)
		}
		if !q.Price.Equal(decimal.RequireFromString("10.01")) {
			t.Errorf("expected price 10.01, got %s", q.Price)
		}
	})

	t.Run("NegativePrice_Rejected", func(t *testing.T) {
		_, err := svc.CreateQuotation(ctx, core.QuotationInput{
			ComponentName:     "CPU",
			SupplierName:      "Acme",
			Price:             decimal.RequireFromString("-0.01"),
			AvailableQuantity: 1,
		})
		var ve core.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Field != "price" {
			t.Errorf("expected field price, got %s", ve.Field)
		}
	})

	t.Run("ZeroPrice_Allowed", func(t *testing.T) {
		if _, err := svc.CreateQuotation(ctx, core.QuotationInput{
			ComponentName:     "Sample",
			SupplierName:      "Acme",
			Price:             decimal.Zero,
			AvailableQuantity: 1,
		}); err != nil {
			t.Fatalf("CreateQuotation with zero price: %v", err)
		}
	})

	t.Run("NegativeQuantity_Rejected", func(t *testing.T) {
		_, err := svc.CreateQuotation(ctx, core.QuotationInput{
			ComponentName:     "CPU",
			SupplierName:      "Acme",
			Price:             decimal.NewFromInt(1),
			AvailableQuantity: -1,
		})
		var ve core.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("GhostSupplier_Rejected", func(t *testing.T) {
		_, err := svc.CreateQuotation(ctx, core.QuotationInput{
			ComponentName:     "CPU",
			SupplierName:      "Ghost",
			Price:             decimal.NewFromInt(1),
			AvailableQuantity: 1,
		})
		var re core.ReferenceError
		if !errors.As(err, &re) {
			t.Fatalf("expected ReferenceError, got %v", err)
		}
	})
}

func TestQuotation_UpdateAndFilter(t *testing.T) {
	ctx := context.Background()
	suppliers := memory.NewSupplierStore()
	svc := core.NewQuotationService(memory.NewQuotationStore(), suppliers)
	seedSupplier(t, suppliers, "Acme")

	created, err := svc.CreateQuotation(ctx, core.QuotationInput{
		ComponentName:     "CPU",
		SupplierName:      "Acme",
		Price:             decimal.NewFromInt(100),
		AvailableQuantity: 10,
	})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	t.Run("Update_RoundsPrice", func(t *testing.T) {
		updated, err := svc.UpdateQuotation(ctx, created.ID, core.QuotationInput{
			ComponentName:     "CPU",
			SupplierName:      "Acme",
			Price:             decimal.RequireFromString("99.999"),
			AvailableQuantity: 8,
		})
		if err != nil {
			t.Fatalf("UpdateQuotation: %v", err)
		}
		if !updated.Price.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected price 100.00, got %s", updated.Price)
		}
		if updated.AvailableQuantity != 8 {
			t.Errorf("expected quantity 8, got %d", updated.AvailableQuantity)
		}
	})

	t.Run("ByComponent", func(t *testing.T) {
		got, err := svc.GetQuotationsByComponent(ctx, "CPU")
		if err != nil {
			t.Fatalf("GetQuotationsByComponent: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 CPU quotation, got %d", len(got))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := svc.DeleteQuotation(ctx, created.ID); err != nil {
			t.Fatalf("DeleteQuotation: %v", err)
		}
		_, err := svc.GetQuotation(ctx, created.ID)
		var nf core.NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("expected NotFoundError after delete, got %v", err)
		}
	})
}
