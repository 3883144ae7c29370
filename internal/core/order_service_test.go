package core_test

import (
	"context"
	"errors"
	"testing"

	"supplydesk/internal/core"
	"supplydesk/internal/store/memory"
)

func newOrderFixture(t *testing.T) (core.OrderService, core.SupplierStore) {
	t.Helper()
	suppliers := memory.NewSupplierStore()
	seedSupplier(t, suppliers, "Acme")
	return core.NewOrderService(memory.NewOrderStore(), suppliers), suppliers
}

func TestOrder_Place(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderFixture(t)

	t.Run("DefaultsToPlaced", func(t *testing.T) {
		o, err := svc.PlaceOrder(ctx, core.OrderInput{
			ComponentName: "CPU",
			SupplierName:  "Acme",
			Quantity:      5,
		})
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		if o.Status != core.StatusPlaced {
			t.Errorf("expected status %s, got %s", core.StatusPlaced, o.Status)
		}
	})

	t.Run("ExplicitStatus_Honored", func(t *testing.T) {
		o, err := svc.PlaceOrder(ctx, core.OrderInput{
			ComponentName: "CPU",
			SupplierName:  "Acme",
			Quantity:      5,
			Status:        core.StatusProcessing,
		})
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		if o.Status != core.StatusProcessing {
			t.Errorf("expected status %s, got %s", core.StatusProcessing, o.Status)
		}
	})

	t.Run("UnknownStatus_Rejected", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, core.OrderInput{
			ComponentName: "CPU",
			SupplierName:  "Acme",
			Quantity:      5,
			Status:        "TELEPORTED",
		})
		var ve core.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("GhostSupplier_Rejected", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, core.OrderInput{
			ComponentName: "CPU",
			SupplierName:  "Ghost",
			Quantity:      5,
		})
		var re core.ReferenceError
		if !errors.As(err, &re) {
			t.Fatalf("expected ReferenceError, got %v", err)
		}
	})

	t.Run("NonPositiveQuantity_Rejected", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			_, err := svc.PlaceOrder(ctx, core.OrderInput{
				ComponentName: "CPU",
				SupplierName:  "Acme",
				Quantity:      qty,
			})
			var ve core.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("quantity %d: expected ValidationError, got %v", qty, err)
			}
		}
	})
}

func TestOrder_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderFixture(t)

	place := func(t *testing.T, status core.OrderStatus) *core.Order {
		t.Helper()
		o, err := svc.PlaceOrder(ctx, core.OrderInput{
			ComponentName: "CPU",
			SupplierName:  "Acme",
			Quantity:      1,
			Status:        status,
		})
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		return o
	}

	t.Run("NonTerminal_AnyToAny", func(t *testing.T) {
		o := place(t, core.StatusPlaced)
		for _, next := range []core.OrderStatus{
			core.StatusPending, core.StatusOutOfStock, core.StatusProcessing,
			core.StatusShipped, core.StatusPlaced,
		} {
			updated, err := svc.SetStatus(ctx, o.ID, next)
			if err != nil {
				t.Fatalf("SetStatus to %s: %v", next, err)
			}
			if updated.Status != next {
				t.Errorf("expected %s, got %s", next, updated.Status)
			}
		}
	})

	t.Run("Delivered_IsTerminal", func(t *testing.T) {
		o := place(t, core.StatusShipped)
		if _, err := svc.SetStatus(ctx, o.ID, core.StatusDelivered); err != nil {
			t.Fatalf("SetStatus DELIVERED: %v", err)
		}
		_, err := svc.SetStatus(ctx, o.ID, core.StatusCancelled)
		var te core.InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if te.From != core.StatusDelivered || te.To != core.StatusCancelled {
			t.Errorf("unexpected transition error: %+v", te)
		}
	})

	t.Run("Cancelled_IsTerminal", func(t *testing.T) {
		o := place(t, core.StatusPlaced)
		if _, err := svc.SetStatus(ctx, o.ID, core.StatusCancelled); err != nil {
			t.Fatalf("SetStatus CANCELLED: %v", err)
		}
		_, err := svc.SetStatus(ctx, o.ID, core.StatusProcessing)
		var te core.InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("UnknownStatus_ValidationNotTransition", func(t *testing.T) {
		o := place(t, core.StatusPlaced)
		_, err := svc.SetStatus(ctx, o.ID, "WARPED")
		var ve core.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError for unknown status, got %v", err)
		}
	})

	t.Run("RejectedTransition_LeavesOrderUntouched", func(t *testing.T) {
		o := place(t, core.StatusPlaced)
		if _, err := svc.SetStatus(ctx, o.ID, core.StatusDelivered); err != nil {
			t.Fatalf("SetStatus DELIVERED: %v", err)
		}
		if _, err := svc.SetStatus(ctx, o.ID, core.StatusPending); err == nil {
			t.Fatal("expected transition out of DELIVERED to fail")
		}
		got, err := svc.GetOrder(ctx, o.ID)
		if err != nil {
			t.Fatalf("GetOrder: %v", err)
		}
		if got.Status != core.StatusDelivered {
			t.Errorf("order mutated by rejected transition: %s", got.Status)
		}
	})

	t.Run("UnknownID_NotFound", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, "no-such-id", core.StatusShipped)
		var nf core.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestOrder_Update(t *testing.T) {
	ctx := context.Background()
	svc, suppliers := newOrderFixture(t)
	seedSupplier(t, suppliers, "Globex")

	o, err := svc.PlaceOrder(ctx, core.OrderInput{
		ComponentName: "CPU",
		SupplierName:  "Acme",
		Quantity:      5,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	t.Run("ReplaceFields", func(t *testing.T) {
		updated, err := svc.UpdateOrder(ctx, o.ID, core.OrderInput{
			ComponentName: "GPU",
			SupplierName:  "Globex",
			Quantity:      2,
			Status:        core.StatusProcessing,
		})
		if err != nil {
			t.Fatalf("UpdateOrder: %v", err)
		}
		if updated.ComponentName != "GPU" || updated.SupplierName != "Globex" || updated.Quantity != 2 {
			t.Errorf("fields not replaced: %+v", updated)
		}
		if updated.Status != core.StatusProcessing {
			t.Errorf("status not updated: %s", updated.Status)
		}
	})

	t.Run("StatusChange_GuardedByTable", func(t *testing.T) {
		if _, err := svc.SetStatus(ctx, o.ID, core.StatusDelivered); err != nil {
			t.Fatalf("SetStatus DELIVERED: %v", err)
		}
		_, err := svc.UpdateOrder(ctx, o.ID, core.OrderInput{
			ComponentName: "GPU",
			SupplierName:  "Globex",
			Quantity:      2,
			Status:        core.StatusPending,
		})
		var te core.InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})
}

func TestOrder_Lookups(t *testing.T) {
	ctx := context.Background()
	svc, suppliers := newOrderFixture(t)
	seedSupplier(t, suppliers, "Globex")

	fixtures := []core.OrderInput{
		{ComponentName: "CPU", SupplierName: "Acme", Quantity: 1},
		{ComponentName: "CPU", SupplierName: "Globex", Quantity: 2},
		{ComponentName: "GPU", SupplierName: "Acme", Quantity: 3},
	}
	for _, f := range fixtures {
		if _, err := svc.PlaceOrder(ctx, f); err != nil {
			t.Fatalf("PlaceOrder %+v: %v", f, err)
		}
	}

	t.Run("ByComponent", func(t *testing.T) {
		got, err := svc.GetOrdersByComponent(ctx, "CPU")
		if err != nil {
			t.Fatalf("GetOrdersByComponent: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 CPU orders, got %d", len(got))
		}
	})

	t.Run("BySupplier", func(t *testing.T) {
		got, err := svc.GetOrdersBySupplier(ctx, "Acme")
		if err != nil {
			t.Fatalf("GetOrdersBySupplier: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 Acme orders, got %d", len(got))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		o, err := svc.PlaceOrder(ctx, core.OrderInput{
			ComponentName: "SSD", SupplierName: "Acme", Quantity: 1,
		})
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		if err := svc.DeleteOrder(ctx, o.ID); err != nil {
			t.Fatalf("DeleteOrder: %v", err)
		}
		_, err = svc.GetOrder(ctx, o.ID)
		var nf core.NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("expected NotFoundError after delete, got %v", err)
		}
	})
}
