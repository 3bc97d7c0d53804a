package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"oficina_pro/internal/domain/entities"
)

func assertTotalInvariant(t *testing.T, db *fakeDB) {
	t.Helper()
	for _, o := range db.ds.Orders {
		want := entities.ComputeTotals(db.ds.ItemsOf(o.ID), o.LaborValue).Grand
		if o.TotalValue != want {
			t.Fatalf("order %d: valor_total=%.2f, expected %.2f", o.Number, o.TotalValue, want)
		}
	}
}

func lastEvent(db *fakeDB, orderID string) string {
	events := db.ds.TimelineOf(orderID)
	if len(events) == 0 {
		return ""
	}
	return events[0].Event
}

func TestOrderPricingUseCase_ScenarioAAndB(t *testing.T) {
	ws, db, _ := newTestWorkspace(t)
	o := seedOrder(t, ws, "u1")
	uc := NewOrderPricingUseCase(ws)
	ctx := context.Background()

	part, err := uc.AddItem(ctx, "u1", o.ID, ItemInput{Kind: entities.ItemKindPeca, Description: "Pastilha de freio", Quantity: 2, UnitPrice: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.Item == nil || part.Item.Total != 100 {
		t.Fatalf("unexpected item: %+v", part.Item)
	}
	if _, err := uc.AddItem(ctx, "u1", o.ID, ItemInput{Kind: entities.ItemKindServico, Description: "Troca de pastilhas", Quantity: 1, UnitPrice: 80}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := uc.SetLabor(ctx, "u1", o.ID, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Order.TotalValue != 200 || res.Totals.Parts != 100 || res.Totals.Labor != 100 {
		t.Fatalf("scenario A mismatch: total=%.2f totals=%+v", res.Order.TotalValue, res.Totals)
	}
	assertTotalInvariant(t, db)

	res, err = uc.RemoveItem(ctx, "u1", part.Item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.TotalValue != 100 || res.Totals.Parts != 0 || res.Totals.Labor != 100 {
		t.Fatalf("scenario B mismatch: total=%.2f totals=%+v", res.Order.TotalValue, res.Totals)
	}
	if got := lastEvent(db, o.ID); got != "Item removido: Pastilha de freio" {
		t.Fatalf("unexpected timeline event %q", got)
	}
	assertTotalInvariant(t, db)
}

func TestOrderPricingUseCase_AddItemValidation(t *testing.T) {
	cases := []struct {
		name string
		in   ItemInput
		want error
	}{
		{name: "empty description", in: ItemInput{Kind: entities.ItemKindPeca, Description: "   ", Quantity: 1, UnitPrice: 10}, want: ErrInvalidItemDescription},
		{name: "zero quantity", in: ItemInput{Kind: entities.ItemKindPeca, Description: "Vela", Quantity: 0, UnitPrice: 10}, want: ErrInvalidItemQuantity},
		{name: "zero price", in: ItemInput{Kind: entities.ItemKindPeca, Description: "Vela", Quantity: 1, UnitPrice: 0}, want: ErrInvalidItemUnitPrice},
		{name: "price rounds to zero", in: ItemInput{Kind: entities.ItemKindPeca, Description: "Vela", Quantity: 1, UnitPrice: 0.004}, want: ErrInvalidItemUnitPrice},
		{name: "nan price", in: ItemInput{Kind: entities.ItemKindPeca, Description: "Vela", Quantity: 1, UnitPrice: math.NaN()}, want: ErrInvalidItemUnitPrice},
		{name: "unknown kind", in: ItemInput{Kind: "brinde", Description: "Vela", Quantity: 1, UnitPrice: 10}, want: ErrInvalidItemKind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ws, db, _ := newTestWorkspace(t)
			o := seedOrder(t, ws, "u1")
			saves := db.saves
			events := len(db.ds.Timeline)

			_, err := NewOrderPricingUseCase(ws).AddItem(context.Background(), "u1", o.ID, tc.in)
			if !errors.Is(err, tc.want) || !errors.Is(err, ErrValidation) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if db.saves != saves || len(db.ds.Timeline) != events {
				t.Fatalf("expected no mutation after validation failure")
			}
		})
	}
}

func TestOrderPricingUseCase_NotFound(t *testing.T) {
	ws, db, _ := newTestWorkspace(t)
	o := seedOrder(t, ws, "u1")
	uc := NewOrderPricingUseCase(ws)
	ctx := context.Background()

	if _, err := uc.AddItem(ctx, "u1", "missing", ItemInput{Kind: entities.ItemKindPeca, Description: "Vela", Quantity: 1, UnitPrice: 10}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := uc.RemoveItem(ctx, "u1", "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := uc.SetLabor(ctx, "u2", o.ID, 10); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected other user's order to be hidden, got %v", err)
	}

	added, err := uc.AddItem(ctx, "u1", o.ID, ItemInput{Kind: entities.ItemKindPeca, Description: "Vela", Quantity: 1, UnitPrice: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// An item whose order vanished is reported as not found.
	db.ds.Orders = nil
	if _, err := uc.RemoveItem(ctx, "u1", added.Item.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderPricingUseCase_RemoveItemsByKind(t *testing.T) {
	ws, db, _ := newTestWorkspace(t)
	o := seedOrder(t, ws, "u1")
	uc := NewOrderPricingUseCase(ws)
	ctx := context.Background()

	for _, in := range []ItemInput{
		{Kind: entities.ItemKindPeca, Description: "Filtro de óleo", Quantity: 1, UnitPrice: 35.9},
		{Kind: entities.ItemKindPeca, Description: "Óleo 5W30", Quantity: 4, UnitPrice: 42.5},
		{Kind: entities.ItemKindServico, Description: "Troca de óleo", Quantity: 1, UnitPrice: 60},
	} {
		if _, err := uc.AddItem(ctx, "u1", o.ID, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	res, err := uc.RemoveItemsByKind(ctx, "u1", o.ID, entities.ItemKindPeca)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Removed != 2 || res.Order.TotalValue != 60 {
		t.Fatalf("unexpected result: removed=%d total=%.2f", res.Removed, res.Order.TotalValue)
	}
	if got := lastEvent(db, o.ID); got != "Peças removidas (2)" {
		t.Fatalf("unexpected timeline event %q", got)
	}

	res, err = uc.RemoveItemsByKind(ctx, "u1", o.ID, entities.ItemKindServico)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Removed != 1 || res.Order.TotalValue != 0 {
		t.Fatalf("unexpected result: removed=%d total=%.2f", res.Removed, res.Order.TotalValue)
	}
	if got := lastEvent(db, o.ID); got != "Mão de obra (itens) removida (1)" {
		t.Fatalf("unexpected timeline event %q", got)
	}

	if _, err := uc.RemoveItemsByKind(ctx, "u1", o.ID, "outro"); !errors.Is(err, ErrInvalidItemKind) {
		t.Fatalf("expected ErrInvalidItemKind, got %v", err)
	}
	assertTotalInvariant(t, db)
}

func TestOrderPricingUseCase_Labor(t *testing.T) {
	ws, db, _ := newTestWorkspace(t)
	o := seedOrder(t, ws, "u1")
	uc := NewOrderPricingUseCase(ws)
	ctx := context.Background()

	if _, err := uc.AddItem(ctx, "u1", o.ID, ItemInput{Kind: entities.ItemKindPeca, Description: "Correia", Quantity: 1, UnitPrice: 150}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("invalid values", func(t *testing.T) {
		for _, v := range []float64{-0.01, math.Inf(1), math.NaN()} {
			if _, err := uc.SetLabor(ctx, "u1", o.ID, v); !errors.Is(err, ErrInvalidLaborValue) {
				t.Fatalf("expected ErrInvalidLaborValue for %v, got %v", v, err)
			}
		}
	})

	t.Run("set rounds and logs", func(t *testing.T) {
		res, err := uc.SetLabor(ctx, "u1", o.ID, 99.999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.LaborValue != 100 || res.Order.TotalValue != 250 {
			t.Fatalf("unexpected order: labor=%.2f total=%.2f", res.Order.LaborValue, res.Order.TotalValue)
		}
		if got := lastEvent(db, o.ID); got != "Mão de obra atualizada: R$ 100.00" {
			t.Fatalf("unexpected timeline event %q", got)
		}
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			res, err := uc.ClearLabor(ctx, "u1", o.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Order.LaborValue != 0 || res.Order.TotalValue != 150 {
				t.Fatalf("unexpected order: labor=%.2f total=%.2f", res.Order.LaborValue, res.Order.TotalValue)
			}
		}
		if got := lastEvent(db, o.ID); got != "Mão de obra (mecânico) zerada" {
			t.Fatalf("unexpected timeline event %q", got)
		}
	})

	assertTotalInvariant(t, db)
}

func TestOrderPricingUseCase_TimelineUser(t *testing.T) {
	ws, db, _ := newTestWorkspace(t)
	o := seedOrder(t, ws, "u1")

	if _, err := NewOrderPricingUseCase(ws).AddItem(context.Background(), "u1", o.ID, ItemInput{Kind: entities.ItemKindServico, Description: "Diagnóstico", Quantity: 1, UnitPrice: 120}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev := db.ds.TimelineOf(o.ID)[0]
	if ev.Event != "Item adicionado: Diagnóstico" || ev.UserID == nil || *ev.UserID != "u1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
