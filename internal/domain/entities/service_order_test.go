package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceOrder_TransitionTo(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(2 * time.Hour)

	t.Run("concluida stamps paid and conclusion once", func(t *testing.T) {
		o := &ServiceOrder{Status: OrderStatusEmAndamento}

		prev := o.TransitionTo(OrderStatusConcluida, t0)
		assert.Equal(t, OrderStatusEmAndamento, prev)
		require.NotNil(t, o.PaidAt)
		require.NotNil(t, o.CompletedAt)
		assert.Nil(t, o.DeliveredAt)

		o.TransitionTo(OrderStatusConcluida, t1)
		assert.Equal(t, t0, *o.PaidAt)
		assert.Equal(t, t0, *o.CompletedAt)
		assert.Equal(t, t1, o.UpdatedAt)
	})

	t.Run("entregue from aberta sets every timestamp", func(t *testing.T) {
		o := &ServiceOrder{Status: OrderStatusAberta}

		prev := o.TransitionTo(OrderStatusEntregue, t0)
		assert.Equal(t, OrderStatusAberta, prev)
		require.NotNil(t, o.PaidAt)
		require.NotNil(t, o.CompletedAt)
		require.NotNil(t, o.DeliveredAt)
		assert.Equal(t, t0, *o.PaidAt)
		assert.Equal(t, t0, *o.CompletedAt)
		assert.Equal(t, t0, *o.DeliveredAt)
	})

	t.Run("backward transition keeps timestamps", func(t *testing.T) {
		o := &ServiceOrder{Status: OrderStatusAberta}
		o.TransitionTo(OrderStatusEntregue, t0)

		o.TransitionTo(OrderStatusAberta, t1)
		assert.Equal(t, OrderStatusAberta, o.Status)
		assert.True(t, o.IsPaid())
		assert.Equal(t, t0, *o.DeliveredAt)
	})

	t.Run("plain status has no side effects", func(t *testing.T) {
		o := &ServiceOrder{Status: OrderStatusAberta}
		o.TransitionTo(OrderStatusAguardandoPeca, t0)
		assert.Nil(t, o.PaidAt)
		assert.Nil(t, o.CompletedAt)
		assert.Nil(t, o.DeliveredAt)
	})
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Aguardando peça", OrderStatusAguardandoPeca.Label())
	assert.Equal(t, "Concluída", OrderStatusConcluida.Label())
	assert.Equal(t, "desconhecido", OrderStatus("desconhecido").Label())
	assert.False(t, OrderStatus("cancelada").IsValid())
	assert.True(t, OrderStatusEntregue.IsFinished())
}
