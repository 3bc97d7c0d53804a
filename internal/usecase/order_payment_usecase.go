package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"
)

type ChargeInput struct {
	PaymentMethodID string
	PayerEmail      string
	CardToken       string
	Installments    int
}

type PaymentResult struct {
	Payment entities.Payment
	Order   entities.ServiceOrder
}

// IOrderPaymentUseCase collects an order's total through the payment gateway.
// An approved charge concludes the order, which stamps paid_at.
type IOrderPaymentUseCase interface {
	Charge(ctx context.Context, userID, orderID string, in ChargeInput) (PaymentResult, error)
	ListPayments(ctx context.Context, userID, orderID string) ([]entities.Payment, error)
}

type OrderPaymentUseCase struct {
	ws      *Workspace
	gateway interfaces.IPaymentGateway

	// inFlight holds the orders with a gateway call under way.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(ws *Workspace, gateway interfaces.IPaymentGateway) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{ws: ws, gateway: gateway, inFlight: map[string]struct{}{}}
}

func (u *OrderPaymentUseCase) begin(orderID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[orderID]; busy {
		return false
	}
	u.inFlight[orderID] = struct{}{}
	return true
}

func (u *OrderPaymentUseCase) done(orderID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, orderID)
}

func (u *OrderPaymentUseCase) Charge(ctx context.Context, userID, orderID string, in ChargeInput) (PaymentResult, error) {
	orderID = strings.TrimSpace(orderID)
	in.PaymentMethodID = strings.TrimSpace(in.PaymentMethodID)
	if in.PaymentMethodID == "" {
		return PaymentResult{}, ErrInvalidPaymentMethod
	}
	if u.gateway == nil {
		return PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	if _, err := u.ownedOrder(ctx, userID, orderID); err != nil {
		return PaymentResult{}, err
	}
	if !u.begin(orderID) {
		return PaymentResult{}, ErrChargeInProgress
	}
	defer u.done(orderID)

	// Re-read under the guard: a charge that just finished has already saved.
	ds, err := u.ws.read(ctx)
	if err != nil {
		return PaymentResult{}, err
	}
	o, err := ownedOrder(ds, userID, orderID)
	if err != nil {
		return PaymentResult{}, err
	}
	if o.IsPaid() {
		return PaymentResult{}, ErrOrderAlreadyPaid
	}
	if o.TotalValue <= 0 {
		return PaymentResult{}, ErrInvalidChargeAmount
	}

	payerEmail := strings.TrimSpace(in.PayerEmail)
	if payerEmail == "" {
		if c := ds.FindClient(o.ClientID); c != nil && c.Email != nil {
			payerEmail = *c.Email
		}
	}

	// The amount always comes from the stored order, never from the caller.
	req := interfaces.ChargeRequest{
		Amount:            o.TotalValue,
		Description:       fmt.Sprintf("OS #%d", o.Number),
		ExternalReference: o.ID,
		PaymentMethodID:   in.PaymentMethodID,
		PayerEmail:        payerEmail,
		CardToken:         strings.TrimSpace(in.CardToken),
		Installments:      in.Installments,
	}
	charge, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		return PaymentResult{}, classifyGatewayError(err)
	}

	// The payment is always recorded once the provider accepted it. The order
	// is only concluded when it still costs what was charged.
	var (
		res      PaymentResult
		conflict error
	)
	err = u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		current, err := ownedOrder(ds, userID, orderID)
		if err != nil {
			return err
		}

		p := entities.Payment{
			ID:                newID(),
			OrderID:           current.ID,
			ProviderPaymentID: charge.ProviderPaymentID,
			Status:            entities.PaymentStatusFromProvider(charge.ProviderStatus),
			Amount:            req.Amount,
			Method:            in.PaymentMethodID,
			Date:              now,
			ProviderPayload:   charge.Raw,
		}
		ds.Payments = append(ds.Payments, p)

		if p.Status == entities.PaymentStatusAprovado {
			appendTimeline(ds, current.ID, userID, fmt.Sprintf("Pagamento aprovado: R$ %.2f", p.Amount), now)
			switch {
			case current.IsPaid():
				conflict = ErrOrderAlreadyPaid
			case current.TotalValue != req.Amount:
				conflict = ErrOrderTotalChanged
			default:
				transition(ds, current, userID, entities.OrderStatusConcluida, now)
			}
		}
		res = PaymentResult{Payment: p, Order: *current}
		return nil
	})
	if err != nil {
		return PaymentResult{}, err
	}
	if conflict != nil {
		return PaymentResult{}, fmt.Errorf("payment %s recorded: %w", res.Payment.ID, conflict)
	}
	return res, nil
}

func (u *OrderPaymentUseCase) ownedOrder(ctx context.Context, userID, orderID string) (*entities.ServiceOrder, error) {
	ds, err := u.ws.read(ctx)
	if err != nil {
		return nil, err
	}
	return ownedOrder(ds, userID, orderID)
}

func (u *OrderPaymentUseCase) ListPayments(ctx context.Context, userID, orderID string) ([]entities.Payment, error) {
	ds, err := u.ws.read(ctx)
	if err != nil {
		return nil, err
	}
	o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	return ds.PaymentsOf(o.ID), nil
}

// classifyGatewayError maps the Mercado Pago error bodies we know about.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}
