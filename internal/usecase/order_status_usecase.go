package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"oficina_pro/internal/domain/entities"
)

type IOrderStatusUseCase interface {
	SetStatus(ctx context.Context, userID, orderID string, status entities.OrderStatus) (entities.ServiceOrder, error)
}

type OrderStatusUseCase struct {
	ws *Workspace
}

var _ IOrderStatusUseCase = (*OrderStatusUseCase)(nil)

func NewOrderStatusUseCase(ws *Workspace) *OrderStatusUseCase {
	return &OrderStatusUseCase{ws: ws}
}

// SetStatus moves an order to any status. Side effects are applied by
// ServiceOrder.TransitionTo; a timeline event is appended on every call, even
// when the status did not change.
func (u *OrderStatusUseCase) SetStatus(ctx context.Context, userID, orderID string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	if !status.IsValid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}

	var updated entities.ServiceOrder
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}
		updated = transition(ds, o, userID, status, now)
		return nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return updated, nil
}

func transition(ds *entities.Dataset, o *entities.ServiceOrder, userID string, status entities.OrderStatus, now time.Time) entities.ServiceOrder {
	prev := o.TransitionTo(status, now)
	appendTimeline(ds, o.ID, userID, fmt.Sprintf("Status alterado: %s → %s", prev, status), now)
	return *o
}
