package request

import (
	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
)

type ItemRequest struct {
	Tipo          string  `json:"tipo" binding:"required,oneof=peca servico"`
	Descricao     string  `json:"descricao" binding:"required"`
	Quantidade    int     `json:"quantidade" binding:"required,gt=0"`
	ValorUnitario float64 `json:"valor_unitario" binding:"required,gt=0"`
}

func (r ItemRequest) ToInput() usecase.ItemInput {
	return usecase.ItemInput{
		Kind:        entities.ItemKind(r.Tipo),
		Description: r.Descricao,
		Quantity:    r.Quantidade,
		UnitPrice:   r.ValorUnitario,
	}
}

// LaborRequest sets the mechanic labor charge. Zero is allowed.
type LaborRequest struct {
	MaoDeObra *float64 `json:"mao_de_obra" binding:"required"`
}
