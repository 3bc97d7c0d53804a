package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"oficina_pro/internal/domain/entities"
)

type ItemInput struct {
	Kind        entities.ItemKind
	Description string
	Quantity    int
	UnitPrice   float64
}

// PricingResult is the order state after a pricing mutation.
type PricingResult struct {
	Order  entities.ServiceOrder
	Totals entities.Totals
	// Item is the added or removed line, when the operation touched one.
	Item    *entities.OrderItem
	Removed int
}

// IOrderPricingUseCase keeps valor_total consistent with items and labor.
//
// Every operation validates first, then mutates, recomputes the total from
// scratch, stamps updated_at and appends one timeline event.
type IOrderPricingUseCase interface {
	AddItem(ctx context.Context, userID, orderID string, in ItemInput) (PricingResult, error)
	RemoveItem(ctx context.Context, userID, itemID string) (PricingResult, error)
	RemoveItemsByKind(ctx context.Context, userID, orderID string, kind entities.ItemKind) (PricingResult, error)
	SetLabor(ctx context.Context, userID, orderID string, value float64) (PricingResult, error)
	ClearLabor(ctx context.Context, userID, orderID string) (PricingResult, error)
}

type OrderPricingUseCase struct {
	ws *Workspace
}

var _ IOrderPricingUseCase = (*OrderPricingUseCase)(nil)

func NewOrderPricingUseCase(ws *Workspace) *OrderPricingUseCase {
	return &OrderPricingUseCase{ws: ws}
}

func (u *OrderPricingUseCase) AddItem(ctx context.Context, userID, orderID string, in ItemInput) (PricingResult, error) {
	desc := strings.TrimSpace(in.Description)
	var unit float64
	if entities.IsValidMoney(in.UnitPrice) {
		unit = entities.RoundMoney(in.UnitPrice)
	}
	switch {
	case !in.Kind.IsValid():
		return PricingResult{}, ErrInvalidItemKind
	case desc == "":
		return PricingResult{}, ErrInvalidItemDescription
	case in.Quantity <= 0:
		return PricingResult{}, ErrInvalidItemQuantity
	case unit <= 0:
		return PricingResult{}, ErrInvalidItemUnitPrice
	}

	var res PricingResult
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}

		item := entities.OrderItem{
			ID:        newID(),
			OrderID:   o.ID,
			Kind:      in.Kind,
			Desc:      desc,
			Quantity:  in.Quantity,
			UnitPrice: unit,
			Total:     entities.LineTotal(in.Quantity, unit),
			CreatedAt: now,
		}
		ds.Items = append(ds.Items, item)

		res = reprice(ds, o, now)
		res.Item = &item
		appendTimeline(ds, o.ID, userID, "Item adicionado: "+desc, now)
		return nil
	})
	if err != nil {
		return PricingResult{}, err
	}
	return res, nil
}

func (u *OrderPricingUseCase) RemoveItem(ctx context.Context, userID, itemID string) (PricingResult, error) {
	itemID = strings.TrimSpace(itemID)

	var res PricingResult
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		item := ds.FindItem(itemID)
		if item == nil {
			return ErrItemNotFound
		}
		o, err := ownedOrder(ds, userID, item.OrderID)
		if err != nil {
			return err
		}

		removed := ds.RemoveItems(func(it entities.OrderItem) bool { return it.ID == itemID })[0]

		res = reprice(ds, o, now)
		res.Item = &removed
		res.Removed = 1
		appendTimeline(ds, o.ID, userID, "Item removido: "+removed.Desc, now)
		return nil
	})
	if err != nil {
		return PricingResult{}, err
	}
	return res, nil
}

// RemoveItemsByKind bulk-deletes the order's items of one kind. The timeline
// event is appended even when nothing matched.
func (u *OrderPricingUseCase) RemoveItemsByKind(ctx context.Context, userID, orderID string, kind entities.ItemKind) (PricingResult, error) {
	if !kind.IsValid() {
		return PricingResult{}, ErrInvalidItemKind
	}

	var res PricingResult
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}

		removed := ds.RemoveItems(func(it entities.OrderItem) bool {
			return it.OrderID == o.ID && it.Kind == kind
		})

		res = reprice(ds, o, now)
		res.Removed = len(removed)

		event := fmt.Sprintf("Peças removidas (%d)", len(removed))
		if kind == entities.ItemKindServico {
			event = fmt.Sprintf("Mão de obra (itens) removida (%d)", len(removed))
		}
		appendTimeline(ds, o.ID, userID, event, now)
		return nil
	})
	if err != nil {
		return PricingResult{}, err
	}
	return res, nil
}

func (u *OrderPricingUseCase) SetLabor(ctx context.Context, userID, orderID string, value float64) (PricingResult, error) {
	if !entities.IsValidMoney(value) || value < 0 {
		return PricingResult{}, ErrInvalidLaborValue
	}
	labor := entities.RoundMoney(value)

	var res PricingResult
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}
		o.LaborValue = labor

		res = reprice(ds, o, now)
		appendTimeline(ds, o.ID, userID, fmt.Sprintf("Mão de obra atualizada: R$ %.2f", labor), now)
		return nil
	})
	if err != nil {
		return PricingResult{}, err
	}
	return res, nil
}

func (u *OrderPricingUseCase) ClearLabor(ctx context.Context, userID, orderID string) (PricingResult, error) {
	var res PricingResult
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}
		o.LaborValue = 0

		res = reprice(ds, o, now)
		appendTimeline(ds, o.ID, userID, "Mão de obra (mecânico) zerada", now)
		return nil
	})
	if err != nil {
		return PricingResult{}, err
	}
	return res, nil
}

// reprice is the single place where an order's derived total is refreshed.
func reprice(ds *entities.Dataset, o *entities.ServiceOrder, now time.Time) PricingResult {
	totals := o.RecomputeTotal(ds.ItemsOf(o.ID))
	o.UpdatedAt = now
	return PricingResult{Order: *o, Totals: totals}
}
