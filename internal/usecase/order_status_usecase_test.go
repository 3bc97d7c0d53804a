package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_pro/internal/domain/entities"
)

func TestOrderStatusUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("scenario D: aberta to entregue", func(t *testing.T) {
		ws, db, clock := newTestWorkspace(t)
		o := seedOrder(t, ws, "u1")
		before := len(db.ds.TimelineOf(o.ID))
		clock.Advance(time.Hour)

		got, err := NewOrderStatusUseCase(ws).SetStatus(ctx, "u1", o.ID, entities.OrderStatusEntregue)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaidAt == nil || got.CompletedAt == nil || got.DeliveredAt == nil {
			t.Fatalf("expected all timestamps set: %+v", got)
		}
		if !got.PaidAt.Equal(clock.now) || !got.DeliveredAt.Equal(clock.now) || !got.CompletedAt.Equal(clock.now) {
			t.Fatalf("expected timestamps at now")
		}
		events := db.ds.TimelineOf(o.ID)
		if len(events) != before+1 || events[0].Event != "Status alterado: aberta → entregue" {
			t.Fatalf("unexpected timeline: %+v", events)
		}
	})

	t.Run("concluida twice keeps first timestamps", func(t *testing.T) {
		ws, db, clock := newTestWorkspace(t)
		o := seedOrder(t, ws, "u1")
		uc := NewOrderStatusUseCase(ws)

		first, err := uc.SetStatus(ctx, "u1", o.ID, entities.OrderStatusConcluida)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock.Advance(48 * time.Hour)
		second, err := uc.SetStatus(ctx, "u1", o.ID, entities.OrderStatusConcluida)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !second.PaidAt.Equal(*first.PaidAt) || !second.CompletedAt.Equal(*first.CompletedAt) {
			t.Fatalf("expected timestamps unchanged")
		}
		if !second.UpdatedAt.Equal(clock.now) {
			t.Fatalf("expected updated_at to move")
		}
		events := db.ds.TimelineOf(o.ID)
		if len(events) != 2 || events[0].Event != "Status alterado: concluida → concluida" {
			t.Fatalf("unexpected timeline: %+v", events)
		}
	})

	t.Run("backward transition keeps payment", func(t *testing.T) {
		ws, _, _ := newTestWorkspace(t)
		o := seedOrder(t, ws, "u1")
		uc := NewOrderStatusUseCase(ws)

		if _, err := uc.SetStatus(ctx, "u1", o.ID, entities.OrderStatusConcluida); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := uc.SetStatus(ctx, "u1", o.ID, entities.OrderStatusAberta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusAberta || got.PaidAt == nil {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ws, _, _ := newTestWorkspace(t)
		o := seedOrder(t, ws, "u1")
		_, err := NewOrderStatusUseCase(ws).SetStatus(ctx, "u1", o.ID, "cancelada")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ws, _, _ := newTestWorkspace(t)
		_, err := NewOrderStatusUseCase(ws).SetStatus(ctx, "u1", "missing", entities.OrderStatusEmAndamento)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
