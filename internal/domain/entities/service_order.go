package entities

import "time"

// OrderStatus is the lifecycle label of a service order (OS).
//
// Any status may be set from any other one. Entering concluida or entregue
// stamps payment/conclusion/delivery timestamps once; they are never cleared.
type OrderStatus string

const (
	OrderStatusAberta         OrderStatus = "aberta"
	OrderStatusEmAndamento    OrderStatus = "em_andamento"
	OrderStatusAguardandoPeca OrderStatus = "aguardando_peca"
	OrderStatusConcluida      OrderStatus = "concluida"
	OrderStatusEntregue       OrderStatus = "entregue"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusAberta:         "Aberta",
	OrderStatusEmAndamento:    "Em andamento",
	OrderStatusAguardandoPeca: "Aguardando peça",
	OrderStatusConcluida:      "Concluída",
	OrderStatusEntregue:       "Entregue",
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label is the human readable (pt-BR) status name.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsFinished reports whether the order is done (paid) or delivered.
func (s OrderStatus) IsFinished() bool {
	return s == OrderStatusConcluida || s == OrderStatusEntregue
}

// ServiceOrder is the central work order.
//
// TotalValue is derived: always round(Σ item totals + LaborValue, 2). It is
// written only through RecomputeTotal.
type ServiceOrder struct {
	ID               string      `json:"id"`
	Number           int         `json:"numero"`
	ClientID         string      `json:"cliente_id"`
	VehicleID        string      `json:"veiculo_id"`
	Status           OrderStatus `json:"status"`
	ReportedProblem  string      `json:"problema_relatado"`
	Odometer         int         `json:"km"`
	FuelLevel        int         `json:"combustivel"`
	TotalValue       float64     `json:"valor_total"`
	LaborValue       float64     `json:"mao_de_obra"`
	DeliveryEstimate *string     `json:"previsao_entrega,omitempty"`
	EntryDate        time.Time   `json:"data_entrada"`
	CompletedAt      *time.Time  `json:"data_conclusao"`
	PaidAt           *time.Time  `json:"paid_at"`
	DeliveredAt      *time.Time  `json:"delivered_at"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	UserID           string      `json:"user_id"`
}

// TransitionTo sets the status, applies the timestamp side effects and returns
// the previous status.
func (o *ServiceOrder) TransitionTo(next OrderStatus, now time.Time) OrderStatus {
	prev := o.Status

	switch next {
	case OrderStatusConcluida:
		o.markPaid(now)
	case OrderStatusEntregue:
		if o.DeliveredAt == nil {
			o.DeliveredAt = timePtr(now)
		}
		o.markPaid(now)
	}

	o.Status = next
	o.UpdatedAt = now
	return prev
}

func (o *ServiceOrder) markPaid(now time.Time) {
	if o.PaidAt == nil {
		o.PaidAt = timePtr(now)
	}
	if o.CompletedAt == nil {
		o.CompletedAt = timePtr(now)
	}
}

func (o ServiceOrder) IsPaid() bool {
	return o.PaidAt != nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
