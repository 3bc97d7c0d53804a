package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"oficina_pro/internal/usecase/interfaces"
)

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC) }

	res, err := g.CreatePayment(context.Background(), interfaces.ChargeRequest{Amount: 120.5, ExternalReference: "os-1", PaymentMethodID: "pix"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ProviderStatus != "approved" || res.ProviderPaymentID == "" {
		t.Fatalf("unexpected result: %+v", res)
	}

	var body map[string]any
	if err := json.Unmarshal(res.Raw, &body); err != nil {
		t.Fatalf("raw is not json: %v", err)
	}
	if body["external_reference"] != "os-1" || body["transaction_amount"] != 120.5 {
		t.Fatalf("unexpected raw body: %v", body)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	var g *MercadoPagoGateway
	if _, err := g.CreatePayment(context.Background(), interfaces.ChargeRequest{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestBuildPaymentRequest(t *testing.T) {
	req := buildPaymentRequest(interfaces.ChargeRequest{
		Amount:            99.9,
		Description:       "OS #4",
		ExternalReference: "os-4",
		PaymentMethodID:   "visa",
		PayerEmail:        "cliente@mail.com",
		CardToken:         "card-token",
	})

	if req.TransactionAmount != 99.9 || req.Token != "card-token" || req.Installments != 1 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Payer == nil || req.Payer.Email != "cliente@mail.com" {
		t.Fatalf("expected payer email")
	}

	pix := buildPaymentRequest(interfaces.ChargeRequest{Amount: 10, PaymentMethodID: "pix"})
	if pix.Payer != nil || pix.Installments != 0 {
		t.Fatalf("unexpected pix request: %+v", pix)
	}
}
