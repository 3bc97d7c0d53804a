package handlers

import (
	"net/http"

	"oficina_pro/internal/adapter/http/dto/request"
	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
	"oficina_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

type OrderStatusHandler struct {
	usecase usecase.IOrderStatusUseCase
}

func NewOrderStatusHandler(uc usecase.IOrderStatusUseCase) *OrderStatusHandler {
	return &OrderStatusHandler{usecase: uc}
}

// SetStatus godoc
// @Summary  Move an order to another status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    payload body request.StatusRequest true "Status"
// @Success  200 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{order_id}/status [patch]
func (h *OrderStatusHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_STATUS_INPUT", "Invalid status payload", err)
		return
	}

	order, err := h.usecase.SetStatus(c.Request.Context(), currentUser(c), c.Param("order_id"), entities.OrderStatus(payload.Status))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	logger.Infof(c.Request.Context(), "[order][handler] status order_id=%s status=%s", order.ID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}
