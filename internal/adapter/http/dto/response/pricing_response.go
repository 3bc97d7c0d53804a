package response

import (
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
)

type ItemResponse struct {
	ID            string    `json:"id"`
	OSID          string    `json:"os_id"`
	Tipo          string    `json:"tipo"`
	Descricao     string    `json:"descricao"`
	Quantidade    int       `json:"quantidade"`
	ValorUnitario float64   `json:"valor_unitario"`
	ValorTotal    float64   `json:"valor_total"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromItem(it entities.OrderItem) ItemResponse {
	return ItemResponse{
		ID:            it.ID,
		OSID:          it.OrderID,
		Tipo:          string(it.Kind),
		Descricao:     it.Desc,
		Quantidade:    it.Quantity,
		ValorUnitario: it.UnitPrice,
		ValorTotal:    it.Total,
		CreatedAt:     it.CreatedAt,
	}
}

func FromItems(items []entities.OrderItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromItem(it))
	}
	return out
}

// TotalsResponse reports the two customer facing buckets. mao_de_obra merges
// servico items with the mechanic labor charge.
type TotalsResponse struct {
	Pecas         float64 `json:"pecas"`
	ServicosItens float64 `json:"servicos_itens"`
	MaoDeObraMec  float64 `json:"mao_de_obra_mecanico"`
	MaoDeObra     float64 `json:"mao_de_obra"`
	ValorTotal    float64 `json:"valor_total"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		Pecas:         t.Parts,
		ServicosItens: t.LaborItems,
		MaoDeObraMec:  t.MechanicLabor,
		MaoDeObra:     t.Labor,
		ValorTotal:    t.Grand,
	}
}

type PricingResponse struct {
	Ordem     OrderResponse  `json:"ordem"`
	Totais    TotalsResponse `json:"totais"`
	Item      *ItemResponse  `json:"item,omitempty"`
	Removidos int            `json:"removidos"`
}

func FromPricingResult(r usecase.PricingResult) PricingResponse {
	out := PricingResponse{
		Ordem:     FromOrder(r.Order),
		Totais:    FromTotals(r.Totals),
		Removidos: r.Removed,
	}
	if r.Item != nil {
		it := FromItem(*r.Item)
		out.Item = &it
	}
	return out
}

type SuggestKindResponse struct {
	Tipo string `json:"tipo"`
}
