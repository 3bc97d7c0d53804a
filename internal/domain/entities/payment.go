package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the outcome of charging an order.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentStatusFromProvider maps Mercado Pago statuses to ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// Payment records one charge attempt of an order.
//
// ProviderPayload keeps the raw gateway response for reconciliation.
type Payment struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"os_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Status            PaymentStatus   `json:"status"`
	Amount            float64         `json:"valor"`
	Method            string          `json:"metodo"`
	Date              time.Time       `json:"date"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
}
