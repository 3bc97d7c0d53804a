package handlers

import (
	"errors"
	"net/http"

	"oficina_pro/internal/adapter/http/dto/request"
	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/usecase"
	"oficina_pro/pkg"
	"oficina_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OrderPaymentHandler charges orders through the payment gateway.
type OrderPaymentHandler struct {
	usecase usecase.IOrderPaymentUseCase
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc}
}

// Charge godoc
// @Summary  Charge the order total
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    payload body request.ChargeRequest true "Payment data"
// @Success  201 {object} response.ChargeResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{order_id}/payments [post]
func (h *OrderPaymentHandler) Charge(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_PAYMENT_INPUT", "Invalid payment payload", err)
		return
	}
	logger.Infof(c.Request.Context(), "[payment][handler] charge start order_id=%s method=%s", orderID, payload.PaymentMethodID)

	res, err := h.usecase.Charge(c.Request.Context(), currentUser(c), orderID, payload.ToInput())
	if err != nil {
		logger.Warnf(c.Request.Context(), "[payment][handler] charge failed order_id=%s err=%v", orderID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	logger.Infof(c.Request.Context(), "[payment][handler] charge done order_id=%s payment_id=%s status=%s", orderID, res.Payment.ID, res.Payment.Status)

	c.JSON(http.StatusCreated, response.FromPaymentResult(res))
}

// ListPayments godoc
// @Summary  Charge attempts of an order
// @Tags     payments
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Success  200 {array} response.PaymentResponse
// @Security Bearer
// @Router   /orders/{order_id}/payments [get]
func (h *OrderPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), currentUser(c), c.Param("order_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_REJECTED", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYER_NOT_FOUND", "Payer not found at the payment provider", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment gateway credentials were refused", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainError("ORDER_ALREADY_PAID", "Order already paid", err, http.StatusConflict)
	default:
		return mapOrderError(err)
	}
}
