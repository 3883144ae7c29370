package core_test

import (
	"context"
	"errors"
	"testing"

	"supplydesk/internal/core"
	"supplydesk/internal/store/memory"
)

func seedSupplier(t *testing.T, suppliers core.SupplierStore, name string) {
	t.Helper()
	_, err := core.NewSupplierService(suppliers).CreateSupplier(context.Background(), core.SupplierInput{
		Name:         name,
		ContactEmail: "ops@example.com",
		ContactPhone: "555-0100",
	})
	if err != nil {
		t.Fatalf("seed supplier %s: %v", name, err)
	}
}

func TestInventory_ReferentialIntegrity(t *testing.T) {
	ctx := context.Background()
	suppliers := memory.NewSupplierStore()
	items := memory.NewInventoryStore()
	svc := core.NewInventoryService(items, suppliers)
	seedSupplier(t, suppliers, "Acme")

	t.Run("Create_KnownSupplier_Succeeds", func(t *testing.T) {
		item, err := svc.CreateItem(ctx, core.InventoryInput{
			ComponentName: "CPU",
			SupplierName:  "Acme",
			StockLevel:    10,
		})
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		if item.StockLevel != 10 {
			t.Errorf("expected stock 10, got %d", item.StockLevel)
		}
	})

	t.Run("Create_GhostSupplier_Rejected", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, core.InventoryInput{
			ComponentName: "GPU",
			SupplierName:  "Ghost",
			StockLevel:    5,
		})
		var re core.ReferenceError
		if !errors.As(err, &re) {
			t.Fatalf("expected ReferenceError, got %v", err)
		}
		if re.SupplierName != "Ghost" {
			t.Errorf("expected supplier Ghost in error, got %s", re.SupplierName)
		}
	})

	t.Run("Create_GhostSupplier_NothingPersisted", func(t *testing.T) {
		all, err := svc.GetItems(ctx)
		if err != nil {
			t.Fatalf("GetItems: %v", err)
		}
		for _, it := range all {
			if it.ComponentName == "GPU" {
				t.Errorf("rejected item was persisted: %+v", it)
			}
		}
	})

	t.Run("Update_GhostSupplier_Rejected", func(t *testing.T) {
		created, err := svc.CreateItem(ctx, core.InventoryInput{
			ComponentName: "RAM",
			SupplierName:  "Acme",
			StockLevel:    3,
		})
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		_, err = svc.UpdateItem(ctx, created.ID, core.InventoryInput{
			ComponentName: "RAM",
			SupplierName:  "Ghost",
			StockLevel:    3,
		})
		var re core.ReferenceError
		if !errors.As(err, &re) {
			t.Fatalf("expected ReferenceError, got %v", err)
		}
		unchanged, err := svc.GetItem(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetItem: %v", err)
		}
		if unchanged.SupplierName != "Acme" {
			t.Errorf("rejected update was applied: %+v", unchanged)
		}
	})
}

func TestInventory_Validation(t *testing.T) {
	ctx := context.Background()
	suppliers := memory.NewSupplierStore()
	svc := core.NewInventoryService(memory.NewInventoryStore(), suppliers)
	seedSupplier(t, suppliers, "Acme")

	t.Run("NegativeStock_Rejected", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, core.InventoryInput{
			ComponentName: "CPU",
			SupplierName:  "Acme",
			StockLevel:    -1,
		})
		var ve core.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Field != "stockLevel" {
			t.Errorf("expected field stockLevel, got %s", ve.Field)
		}
	})

	t.Run("ZeroStock_Allowed", func(t *testing.T) {
		if _, err := svc.CreateItem(ctx, core.InventoryInput{
			ComponentName: "CPU",
			SupplierName:  "Acme",
			StockLevel:    0,
		}); err != nil {
			t.Fatalf("CreateItem with zero stock: %v", err)
		}
	})

	t.Run("EmptyComponentName_Rejected", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, core.InventoryInput{
			ComponentName: "",
			SupplierName:  "Acme",
			StockLevel:    1,
		})
		var ve core.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestInventory_Filters(t *testing.T) {
	ctx := context.Background()
	suppliers := memory.NewSupplierStore()
	svc := core.NewInventoryService(memory.NewInventoryStore(), suppliers)
	seedSupplier(t, suppliers, "Acme")
	seedSupplier(t, suppliers, "Globex")

	fixtures := []core.InventoryInput{
		{ComponentName: "CPU", SupplierName: "Acme", StockLevel: 10},
		{ComponentName: "CPU", SupplierName: "Globex", StockLevel: 4},
		{ComponentName: "GPU", SupplierName: "Acme", StockLevel: 2},
	}
	for _, f := range fixtures {
		if _, err := svc.CreateItem(ctx, f); err != nil {
			t.Fatalf("CreateItem %+v: %v", f, err)
		}
	}

	t.Run("ByComponent", func(t *testing.T) {
		got, err := svc.GetItemsByComponent(ctx, "CPU")
		if err != nil {
			t.Fatalf("GetItemsByComponent: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 CPU items, got %d", len(got))
		}
	})

	t.Run("BySupplier", func(t *testing.T) {
		got, err := svc.GetItemsBySupplier(ctx, "Acme")
		if err != nil {
			t.Fatalf("GetItemsBySupplier: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 Acme items, got %d", len(got))
		}
	})

	t.Run("ByComponent_NoMatches_EmptyList", func(t *testing.T) {
		got, err := svc.GetItemsByComponent(ctx, "SSD")
		if err != nil {
			t.Fatalf("GetItemsByComponent: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty list, got %d items", len(got))
		}
	})
}
