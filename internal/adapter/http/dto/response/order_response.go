package response

import (
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
)

type OrderResponse struct {
	ID               string     `json:"id"`
	Numero           int        `json:"numero"`
	ClienteID        string     `json:"cliente_id"`
	VeiculoID        string     `json:"veiculo_id"`
	Status           string     `json:"status"`
	StatusLabel      string     `json:"status_label"`
	ProblemaRelatado string     `json:"problema_relatado"`
	Km               int        `json:"km"`
	Combustivel      int        `json:"combustivel"`
	ValorTotal       float64    `json:"valor_total"`
	MaoDeObra        float64    `json:"mao_de_obra"`
	PrevisaoEntrega  *string    `json:"previsao_entrega"`
	DataEntrada      time.Time  `json:"data_entrada"`
	DataConclusao    *time.Time `json:"data_conclusao"`
	PaidAt           *time.Time `json:"paid_at"`
	DeliveredAt      *time.Time `json:"delivered_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		Numero:           o.Number,
		ClienteID:        o.ClientID,
		VeiculoID:        o.VehicleID,
		Status:           string(o.Status),
		StatusLabel:      o.Status.Label(),
		ProblemaRelatado: o.ReportedProblem,
		Km:               o.Odometer,
		Combustivel:      o.FuelLevel,
		ValorTotal:       o.TotalValue,
		MaoDeObra:        o.LaborValue,
		PrevisaoEntrega:  o.DeliveryEstimate,
		DataEntrada:      o.EntryDate,
		DataConclusao:    o.CompletedAt,
		PaidAt:           o.PaidAt,
		DeliveredAt:      o.DeliveredAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderSummaryResponse struct {
	OrderResponse
	Cliente *ClientResponse  `json:"cliente"`
	Veiculo *VehicleResponse `json:"veiculo"`
}

func FromOrderSummary(s usecase.OrderSummary) OrderSummaryResponse {
	out := OrderSummaryResponse{OrderResponse: FromOrder(s.Order)}
	if s.Client != nil {
		c := FromClient(*s.Client)
		out.Cliente = &c
	}
	if s.Vehicle != nil {
		v := FromVehicle(*s.Vehicle)
		out.Veiculo = &v
	}
	return out
}

func FromOrderSummaries(ss []usecase.OrderSummary) []OrderSummaryResponse {
	out := make([]OrderSummaryResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromOrderSummary(s))
	}
	return out
}

type ChecklistRowResponse struct {
	ID      string `json:"id"`
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
	Ordem   int    `json:"ordem"`
}

func FromChecklist(rows []entities.ChecklistRow) []ChecklistRowResponse {
	out := make([]ChecklistRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ChecklistRowResponse{ID: r.ID, Item: r.Item, Checked: r.Checked, Ordem: r.Position})
	}
	return out
}

type PhotoResponse struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPhoto(p entities.Photo) PhotoResponse {
	return PhotoResponse{ID: p.ID, Tipo: string(p.Kind), URL: p.URL, CreatedAt: p.CreatedAt}
}

type TimelineEventResponse struct {
	ID        string    `json:"id"`
	Evento    string    `json:"evento"`
	CreatedAt time.Time `json:"created_at"`
	UserID    *string   `json:"user_id"`
}

type ToggleChecklistResponse struct {
	ID      string `json:"id"`
	Checked bool   `json:"checked"`
}

type OrderDetailsResponse struct {
	OrderSummaryResponse
	Itens      []ItemResponse          `json:"itens"`
	Checklist  []ChecklistRowResponse  `json:"checklist"`
	Fotos      []PhotoResponse         `json:"fotos"`
	Timeline   []TimelineEventResponse `json:"timeline"`
	Pagamentos []PaymentResponse       `json:"pagamentos"`
	Totais     TotalsResponse          `json:"totais"`
}

func FromOrderDetails(d usecase.OrderDetails) OrderDetailsResponse {
	out := OrderDetailsResponse{
		OrderSummaryResponse: FromOrderSummary(d.OrderSummary),
		Itens:                FromItems(d.Items),
		Checklist:            FromChecklist(d.Checklist),
		Fotos:                make([]PhotoResponse, 0, len(d.Photos)),
		Timeline:             make([]TimelineEventResponse, 0, len(d.Timeline)),
		Pagamentos:           FromPayments(d.Payments),
		Totais:               FromTotals(d.Totals),
	}
	for _, p := range d.Photos {
		out.Fotos = append(out.Fotos, FromPhoto(p))
	}
	for _, ev := range d.Timeline {
		out.Timeline = append(out.Timeline, TimelineEventResponse{ID: ev.ID, Evento: ev.Event, CreatedAt: ev.CreatedAt, UserID: ev.UserID})
	}
	return out
}
