package response

import (
	"encoding/json"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
)

type PaymentResponse struct {
	ID                string          `json:"id"`
	OSID              string          `json:"os_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Status            string          `json:"status"`
	Valor             float64         `json:"valor"`
	Metodo            string          `json:"metodo"`
	Date              time.Time       `json:"date"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		OSID:              p.OrderID,
		ProviderPaymentID: p.ProviderPaymentID,
		Status:            string(p.Status),
		Valor:             p.Amount,
		Metodo:            p.Method,
		Date:              p.Date,
		ProviderPayload:   p.ProviderPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

type ChargeResponse struct {
	Pagamento PaymentResponse `json:"pagamento"`
	Ordem     OrderResponse   `json:"ordem"`
}

func FromPaymentResult(r usecase.PaymentResult) ChargeResponse {
	return ChargeResponse{Pagamento: FromPayment(r.Payment), Ordem: FromOrder(r.Order)}
}
