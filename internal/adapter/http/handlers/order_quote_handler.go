package handlers

import (
	"net/http"
	"net/url"

	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/usecase"

	"github.com/gin-gonic/gin"
)

const whatsAppBaseURL = "https://wa.me/"

type OrderQuoteHandler struct {
	usecase usecase.IOrderQuoteUseCase
}

func NewOrderQuoteHandler(uc usecase.IOrderQuoteUseCase) *OrderQuoteHandler {
	return &OrderQuoteHandler{usecase: uc}
}

// GetQuote godoc
// @Summary  Customer quote (orçamento) with a ready to send WhatsApp message
// @Tags     orders
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{order_id}/quote [get]
func (h *OrderQuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.Quote(c.Request.Context(), currentUser(c), c.Param("order_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, whatsAppLink(quote.WhatsAppPhone, quote.Message)))
}

// whatsAppLink is empty when the client has no usable phone.
func whatsAppLink(phone, message string) string {
	if phone == "" {
		return ""
	}
	return whatsAppBaseURL + phone + "?text=" + url.QueryEscape(message)
}
