package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. In mock mode every charge is
// approved locally and no access token is needed.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	ctx := context.Background()
	if mock {
		logger.Infof(ctx, "[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		logger.Warnf(ctx, "[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Errorf(ctx, "[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	logger.Infof(ctx, "[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(ctx, req)
	}

	if g == nil || g.client == nil {
		logger.Errorf(ctx, "[payment][gateway] gateway not configured")
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	logger.Infof(ctx, "[payment][gateway] create start external_reference=%s method=%s", req.ExternalReference, req.PaymentMethodID)

	resp, err := g.client.Create(ctx, buildPaymentRequest(req))
	if err != nil {
		logger.Errorf(ctx, "[payment][gateway] sdk create failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logger.Errorf(ctx, "[payment][gateway] response marshal failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}
	logger.Infof(ctx, "[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return interfaces.ChargeResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Raw:               b,
	}, nil
}

func (g *MercadoPagoGateway) mockCreate(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)

	b, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"external_reference": req.ExternalReference,
		"payment_method_id":  req.PaymentMethodID,
		"date_created":       stamp,
		"date_approved":      stamp,
	})
	if err != nil {
		logger.Errorf(ctx, "[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}

	logger.Infof(ctx, "[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return interfaces.ChargeResult{ProviderPaymentID: id, ProviderStatus: "approved", Raw: b}, nil
}

func buildPaymentRequest(req interfaces.ChargeRequest) payment.Request {
	out := payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   req.PaymentMethodID,
		ExternalReference: req.ExternalReference,
		Token:             req.CardToken,
		Installments:      req.Installments,
	}
	if req.Installments == 0 && req.CardToken != "" {
		out.Installments = 1
	}
	if req.PayerEmail != "" {
		out.Payer = &payment.PayerRequest{Email: req.PayerEmail}
	}
	return out
}
