package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	cases := []struct {
		name string
		qty  int
		unit float64
		want float64
	}{
		{name: "integer", qty: 2, unit: 50, want: 100},
		{name: "cents", qty: 3, unit: 19.99, want: 59.97},
		{name: "float drift", qty: 3, unit: 0.1, want: 0.3},
		{name: "half up", qty: 1, unit: 10.005, want: 10.01},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LineTotal(tc.qty, tc.unit))
		})
	}
}

func TestComputeTotals_ScenarioA(t *testing.T) {
	items := []OrderItem{
		{Kind: ItemKindPeca, Quantity: 2, UnitPrice: 50, Total: LineTotal(2, 50)},
		{Kind: ItemKindServico, Quantity: 1, UnitPrice: 80, Total: LineTotal(1, 80)},
	}

	got := ComputeTotals(items, 20)

	assert.Equal(t, 100.0, got.Parts)
	assert.Equal(t, 80.0, got.LaborItems)
	assert.Equal(t, 20.0, got.MechanicLabor)
	assert.Equal(t, 100.0, got.Labor)
	assert.Equal(t, 200.0, got.Grand)
}

func TestRecomputeTotal_NoDriftAcrossCycles(t *testing.T) {
	o := &ServiceOrder{LaborValue: 0.1}
	var items []OrderItem
	for i := 0; i < 50; i++ {
		items = append(items, OrderItem{Kind: ItemKindPeca, Quantity: 1, UnitPrice: 0.1, Total: LineTotal(1, 0.1)})
		o.RecomputeTotal(items)
	}
	for len(items) > 1 {
		items = items[1:]
		o.RecomputeTotal(items)
	}

	assert.Equal(t, 0.2, o.TotalValue)
}

func TestRoundMoneyAndValidity(t *testing.T) {
	assert.Equal(t, 20.46, RoundMoney(20.456))
	assert.Equal(t, 0.0, RoundMoney(0))
	assert.True(t, IsValidMoney(12.5))
	assert.False(t, IsValidMoney(math.NaN()))
	assert.False(t, IsValidMoney(math.Inf(1)))
}
