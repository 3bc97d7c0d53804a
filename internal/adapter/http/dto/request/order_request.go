package request

import (
	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
)

type OrderRequest struct {
	ClienteID        string  `json:"cliente_id" binding:"required"`
	VeiculoID        string  `json:"veiculo_id" binding:"required"`
	ProblemaRelatado string  `json:"problema_relatado"`
	Km               int     `json:"km" binding:"gte=0"`
	Combustivel      int     `json:"combustivel" binding:"gte=0,lte=100"`
	PrevisaoEntrega  *string `json:"previsao_entrega"`
}

func (r OrderRequest) ToInput() usecase.OrderInput {
	return usecase.OrderInput{
		ClientID:         r.ClienteID,
		VehicleID:        r.VeiculoID,
		Problem:          r.ProblemaRelatado,
		Odometer:         r.Km,
		FuelLevel:        r.Combustivel,
		DeliveryEstimate: r.PrevisaoEntrega,
	}
}

type ChecklistEntryRequest struct {
	Item    string `json:"item" binding:"required"`
	Checked bool   `json:"checked"`
}

func toChecklistEntries(in []ChecklistEntryRequest) []entities.ChecklistEntry {
	if in == nil {
		return nil
	}
	out := make([]entities.ChecklistEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entities.ChecklistEntry{Item: e.Item, Checked: e.Checked})
	}
	return out
}

// IntakeRequest opens an order in one call. Either cliente_id or cliente, and
// either veiculo_id or veiculo, must be sent. An omitted checklist gets the
// standard catalog.
type IntakeRequest struct {
	ClienteID        string                  `json:"cliente_id"`
	Cliente          *ClientRequest          `json:"cliente"`
	VeiculoID        string                  `json:"veiculo_id"`
	Veiculo          *VehicleRequest         `json:"veiculo"`
	ProblemaRelatado string                  `json:"problema_relatado"`
	Km               int                     `json:"km" binding:"gte=0"`
	Combustivel      int                     `json:"combustivel" binding:"gte=0,lte=100"`
	PrevisaoEntrega  *string                 `json:"previsao_entrega"`
	Checklist        []ChecklistEntryRequest `json:"checklist" binding:"omitempty,dive"`
}

func (r IntakeRequest) ToInput() usecase.IntakeInput {
	in := usecase.IntakeInput{
		ClientID:  r.ClienteID,
		VehicleID: r.VeiculoID,
		Order: usecase.OrderInput{
			Problem:          r.ProblemaRelatado,
			Odometer:         r.Km,
			FuelLevel:        r.Combustivel,
			DeliveryEstimate: r.PrevisaoEntrega,
		},
		Checklist: toChecklistEntries(r.Checklist),
	}
	if r.Cliente != nil {
		c := r.Cliente.ToInput()
		in.NewClient = &c
	}
	if r.Veiculo != nil {
		v := r.Veiculo.ToInput("")
		in.NewVehicle = &v
	}
	return in
}

type OrderPatchRequest struct {
	ProblemaRelatado *string `json:"problema_relatado"`
	Km               *int    `json:"km" binding:"omitempty,gte=0"`
	Combustivel      *int    `json:"combustivel" binding:"omitempty,gte=0,lte=100"`
	PrevisaoEntrega  *string `json:"previsao_entrega"`
	LimparPrevisao   bool    `json:"limpar_previsao"`
}

func (r OrderPatchRequest) ToPatch() usecase.OrderPatch {
	return usecase.OrderPatch{
		Problem:               r.ProblemaRelatado,
		Odometer:              r.Km,
		FuelLevel:             r.Combustivel,
		DeliveryEstimate:      r.PrevisaoEntrega,
		ClearDeliveryEstimate: r.LimparPrevisao,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChecklistRequest struct {
	Itens []ChecklistEntryRequest `json:"itens" binding:"required,min=1,dive"`
}

func (r ChecklistRequest) ToEntries() []entities.ChecklistEntry {
	return toChecklistEntries(r.Itens)
}

type PhotoRequest struct {
	Tipo string `json:"tipo" binding:"required,oneof=antes durante depois"`
	URL  string `json:"url" binding:"required"`
}
