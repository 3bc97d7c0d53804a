package request

import "oficina_pro/internal/usecase"

type PayerRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// ChargeRequest never carries the amount: the order total is charged.
type ChargeRequest struct {
	PaymentMethodID string        `json:"payment_method_id" binding:"required"`
	Payer           *PayerRequest `json:"payer"`
	Token           string        `json:"token"`
	Installments    int           `json:"installments" binding:"gte=0"`
}

func (r ChargeRequest) ToInput() usecase.ChargeInput {
	in := usecase.ChargeInput{
		PaymentMethodID: r.PaymentMethodID,
		CardToken:       r.Token,
		Installments:    r.Installments,
	}
	if r.Payer != nil {
		in.PayerEmail = r.Payer.Email
	}
	return in
}
