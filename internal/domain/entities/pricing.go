package entities

import (
	"math"

	"github.com/shopspring/decimal"
)

// Totals splits an order value into the buckets shown to the customer.
//
// Labor merges servico items with the scalar mechanic labor field; Parts is
// the peca items only. Grand always equals Parts + Labor.
type Totals struct {
	Parts         float64 `json:"total_pecas"`
	LaborItems    float64 `json:"total_servicos"`
	MechanicLabor float64 `json:"mao_de_obra"`
	Labor         float64 `json:"total_mao_de_obra"`
	Grand         float64 `json:"valor_total"`
}

// RoundMoney rounds a currency amount half away from zero to 2 decimals.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// IsValidMoney rejects NaN and infinities.
func IsValidMoney(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LineTotal is round(quantity × unitPrice, 2).
func LineTotal(quantity int, unitPrice float64) float64 {
	return decimal.NewFromInt(int64(quantity)).
		Mul(decimal.NewFromFloat(unitPrice)).
		Round(2).
		InexactFloat64()
}

// ComputeTotals sums the order items and labor into buckets. Items of other
// orders must be filtered out by the caller.
func ComputeTotals(items []OrderItem, laborValue float64) Totals {
	parts := decimal.Zero
	laborItems := decimal.Zero
	for _, it := range items {
		v := decimal.NewFromFloat(it.Total).Round(2)
		if it.Kind == ItemKindPeca {
			parts = parts.Add(v)
		} else {
			laborItems = laborItems.Add(v)
		}
	}
	mechanic := decimal.NewFromFloat(laborValue).Round(2)
	labor := laborItems.Add(mechanic)

	return Totals{
		Parts:         parts.Round(2).InexactFloat64(),
		LaborItems:    laborItems.Round(2).InexactFloat64(),
		MechanicLabor: mechanic.InexactFloat64(),
		Labor:         labor.Round(2).InexactFloat64(),
		Grand:         parts.Add(labor).Round(2).InexactFloat64(),
	}
}

// RecomputeTotal rewrites o.TotalValue from scratch. It is the only writer of
// the derived total.
func (o *ServiceOrder) RecomputeTotal(items []OrderItem) Totals {
	t := ComputeTotals(items, o.LaborValue)
	o.TotalValue = t.Grand
	return t
}
