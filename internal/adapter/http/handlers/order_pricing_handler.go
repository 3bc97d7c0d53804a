package handlers

import (
	"net/http"
	"strings"

	"oficina_pro/internal/adapter/http/dto/request"
	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
	"oficina_pro/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingDescription = pkg.NewDomainErrorSimple("INVALID_REQUEST", "descricao is required", http.StatusBadRequest)

type OrderPricingHandler struct {
	usecase usecase.IOrderPricingUseCase
}

func NewOrderPricingHandler(uc usecase.IOrderPricingUseCase) *OrderPricingHandler {
	return &OrderPricingHandler{usecase: uc}
}

// AddItem godoc
// @Summary  Add a part or labor line; the order total is recomputed
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    payload body request.ItemRequest true "Item"
// @Success  201 {object} response.PricingResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{order_id}/items [post]
func (h *OrderPricingHandler) AddItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_ITEM_INPUT", "Invalid item payload", err)
		return
	}

	res, err := h.usecase.AddItem(c.Request.Context(), currentUser(c), c.Param("order_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromPricingResult(res))
}

// RemoveItem godoc
// @Summary  Remove one line
// @Tags     pricing
// @Produce  json
// @Param    item_id path string true "Item ID"
// @Success  200 {object} response.PricingResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /items/{item_id} [delete]
func (h *OrderPricingHandler) RemoveItem(c *gin.Context) {
	res, err := h.usecase.RemoveItem(c.Request.Context(), currentUser(c), c.Param("item_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(res))
}

// RemoveItemsByKind godoc
// @Summary  Remove every line of one kind
// @Tags     pricing
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    tipo query string true "peca or servico"
// @Success  200 {object} response.PricingResponse
// @Security Bearer
// @Router   /orders/{order_id}/items [delete]
func (h *OrderPricingHandler) RemoveItemsByKind(c *gin.Context) {
	kind := entities.ItemKind(c.Query("tipo"))
	res, err := h.usecase.RemoveItemsByKind(c.Request.Context(), currentUser(c), c.Param("order_id"), kind)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(res))
}

// SetLabor godoc
// @Summary  Set the mechanic labor charge
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    payload body request.LaborRequest true "Labor"
// @Success  200 {object} response.PricingResponse
// @Security Bearer
// @Router   /orders/{order_id}/labor [put]
func (h *OrderPricingHandler) SetLabor(c *gin.Context) {
	var payload request.LaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_LABOR_INPUT", "Invalid labor payload", err)
		return
	}

	res, err := h.usecase.SetLabor(c.Request.Context(), currentUser(c), c.Param("order_id"), *payload.MaoDeObra)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(res))
}

// ClearLabor godoc
// @Summary  Zero the mechanic labor charge
// @Tags     pricing
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Success  200 {object} response.PricingResponse
// @Security Bearer
// @Router   /orders/{order_id}/labor [delete]
func (h *OrderPricingHandler) ClearLabor(c *gin.Context) {
	res, err := h.usecase.ClearLabor(c.Request.Context(), currentUser(c), c.Param("order_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(res))
}

// SuggestKind godoc
// @Summary  Guess whether a description is a part or labor
// @Tags     pricing
// @Produce  json
// @Param    descricao query string true "Item description"
// @Success  200 {object} response.SuggestKindResponse
// @Security Bearer
// @Router   /items/suggest-kind [get]
func (h *OrderPricingHandler) SuggestKind(c *gin.Context) {
	desc := strings.TrimSpace(c.Query("descricao"))
	if desc == "" {
		writeError(c, errMissingDescription)
		return
	}

	c.JSON(http.StatusOK, response.SuggestKindResponse{Tipo: string(entities.SuggestItemKind(desc))})
}
