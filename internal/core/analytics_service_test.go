package core_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"supplydesk/internal/core"
	"supplydesk/internal/store/memory"
)

type analyticsFixture struct {
	analytics  core.AnalyticsService
	inventory  core.InventoryService
	orders     core.OrderService
	quotations core.QuotationService
}

func newAnalyticsFixture(t *testing.T) analyticsFixture {
	t.Helper()
	suppliers := memory.NewSupplierStore()
	inventory := memory.NewInventoryStore()
	orders := memory.NewOrderStore()
	quotations := memory.NewQuotationStore()
	seedSupplier(t, suppliers, "Acme")
	seedSupplier(t, suppliers, "Globex")
	return analyticsFixture{
		analytics:  core.NewAnalyticsService(inventory, orders, quotations),
		inventory:  core.NewInventoryService(inventory, suppliers),
		orders:     core.NewOrderService(orders, suppliers),
		quotations: core.NewQuotationService(quotations, suppliers),
	}
}

func TestAnalytics_AveragePrice(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	for _, price := range []string{"100.00", "150.00", "125.00"} {
		if _, err := f.quotations.CreateQuotation(ctx, core.QuotationInput{
			ComponentName:     "CPU",
			SupplierName:      "Acme",
			Price:             decimal.RequireFromString(price),
			AvailableQuantity: 5,
		}); err != nil {
			t.Fatalf("CreateQuotation %s: %v", price, err)
		}
	}

	t.Run("Mean_OverMatchingQuotations", func(t *testing.T) {
		got, err := f.analytics.GetAveragePrice(ctx, "CPU")
		if err != nil {
			t.Fatalf("GetAveragePrice: %v", err)
		}
		if !got.Average.Equal(decimal.RequireFromString("125.00")) {
			t.Errorf("expected average 125.00, got %s", got.Average)
		}
		if got.Samples != 3 {
			t.Errorf("expected 3 samples, got %d", got.Samples)
		}
	})

	t.Run("NoQuotations_ZeroWithNoSamples", func(t *testing.T) {
		got, err := f.analytics.GetAveragePrice(ctx, "GPU")
		if err != nil {
			t.Fatalf("GetAveragePrice: %v", err)
		}
		if !got.Average.IsZero() {
			t.Errorf("expected zero average, got %s", got.Average)
		}
		if got.Samples != 0 {
			t.Errorf("expected 0 samples, got %d", got.Samples)
		}
	})

	t.Run("Mean_RoundedToTwoDecimals", func(t *testing.T) {
		for _, price := range []string{"10.00", "10.00", "10.01"} {
			if _, err := f.quotations.CreateQuotation(ctx, core.QuotationInput{
				ComponentName:     "SSD",
				SupplierName:      "Acme",
				Price:             decimal.RequireFromString(price),
				AvailableQuantity: 1,
			}); err != nil {
				t.Fatalf("CreateQuotation: %v", err)
			}
		}
		got, err := f.analytics.GetAveragePrice(ctx, "SSD")
		if err != nil {
			t.Fatalf("GetAveragePrice: %v", err)
		}
		if got.Average.Exponent() < -2 {
			t.Errorf("average carries more than two decimals: %s", got.Average)
		}
	})
}

func TestAnalytics_TotalStock(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	for _, in := range []core.InventoryInput{
		{ComponentName: "CPU", SupplierName: "Acme", StockLevel: 10},
		{ComponentName: "CPU", SupplierName: "Globex", StockLevel: 7},
		{ComponentName: "GPU", SupplierName: "Acme", StockLevel: 99},
	} {
		if _, err := f.inventory.CreateItem(ctx, in); err != nil {
			t.Fatalf("CreateItem %+v: %v", in, err)
		}
	}

	t.Run("SumsAcrossSuppliers", func(t *testing.T) {
		got, err := f.analytics.GetTotalStock(ctx, "CPU")
		if err != nil {
			t.Fatalf("GetTotalStock: %v", err)
		}
		if got.TotalStock != 17 {
			t.Errorf("expected total 17, got %d", got.TotalStock)
		}
	})

	t.Run("UnknownComponent_Zero", func(t *testing.T) {
		got, err := f.analytics.GetTotalStock(ctx, "SSD")
		if err != nil {
			t.Fatalf("GetTotalStock: %v", err)
		}
		if got.TotalStock != 0 {
			t.Errorf("expected total 0, got %d", got.TotalStock)
		}
	})
}

func TestAnalytics_TotalOrders(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	placed, err := f.orders.PlaceOrder(ctx, core.OrderInput{
		ComponentName: "CPU", SupplierName: "Acme", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.orders.PlaceOrder(ctx, core.OrderInput{
		ComponentName: "CPU", SupplierName: "Globex", Quantity: 2,
	}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.orders.SetStatus(ctx, placed.ID, core.StatusCancelled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	t.Run("CountsEveryStatus", func(t *testing.T) {
		got, err := f.analytics.GetTotalOrders(ctx, "CPU")
		if err != nil {
			t.Fatalf("GetTotalOrders: %v", err)
		}
		if got.TotalOrders != 2 {
			t.Errorf("expected 2 orders counting cancelled, got %d", got.TotalOrders)
		}
	})
}

func TestAnalytics_ListComponents(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	for _, in := range []core.InventoryInput{
		{ComponentName: "RAM", SupplierName: "Acme", StockLevel: 1},
		{ComponentName: "CPU", SupplierName: "Acme", StockLevel: 1},
		{ComponentName: "CPU", SupplierName: "Globex", StockLevel: 1},
	} {
		if _, err := f.inventory.CreateItem(ctx, in); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	got, err := f.analytics.ListComponents(ctx)
	if err != nil {
		t.Fatalf("ListComponents: %v", err)
	}
	want := []string{"CPU", "RAM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
