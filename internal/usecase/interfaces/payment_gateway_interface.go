package interfaces

import (
	"context"
	"encoding/json"
)

// ChargeRequest is what the shop asks the provider to collect.
type ChargeRequest struct {
	Amount            float64
	Description       string
	ExternalReference string
	PaymentMethodID   string
	PayerEmail        string
	CardToken         string
	Installments      int
}

// ChargeResult is the provider answer, with the raw body kept for audit.
type ChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
