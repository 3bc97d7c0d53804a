package handlers

import (
	"errors"
	"net/http"

	"oficina_pro/internal/adapter/http/dto/request"
	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
	"oficina_pro/pkg"
	"oficina_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errChecklistRowNotFound = pkg.NewDomainErrorSimple("CHECKLIST_ROW_NOT_FOUND", "Checklist row not found", http.StatusNotFound)

// ServiceOrderHandler serves the order (OS) lifecycle up to pricing: opening,
// intake, editing, listing and the intake checklist and photos.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Open a service order for an existing client and vehicle
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    payload body request.OrderRequest true "Order"
// @Success  201 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders [post]
func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_ORDER_INPUT", "Invalid order payload", err)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), currentUser(c), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	logger.Infof(c.Request.Context(), "[order][handler] created order_id=%s numero=%d", order.ID, order.Number)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// Intake godoc
// @Summary  Register a vehicle arrival (client, vehicle, order and checklist)
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    payload body request.IntakeRequest true "Intake"
// @Success  201 {object} response.OrderDetailsResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/intake [post]
func (h *ServiceOrderHandler) Intake(c *gin.Context) {
	var payload request.IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_INTAKE_INPUT", "Invalid intake payload", err)
		return
	}

	details, err := h.usecase.Intake(c.Request.Context(), currentUser(c), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	logger.Infof(c.Request.Context(), "[order][handler] intake order_id=%s numero=%d", details.Order.ID, details.Order.Number)

	c.JSON(http.StatusCreated, response.FromOrderDetails(details))
}

// UpdateOrder godoc
// @Summary  Edit problem, odometer, fuel level or delivery estimate
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    payload body request.OrderPatchRequest true "Changes"
// @Success  200 {object} response.OrderResponse
// @Security Bearer
// @Router   /orders/{order_id} [patch]
func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_ORDER_INPUT", "Invalid order payload", err)
		return
	}

	order, err := h.usecase.UpdateOrder(c.Request.Context(), currentUser(c), c.Param("order_id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary  List orders newest first
// @Tags     orders
// @Produce  json
// @Param    status query string false "Status filter"
// @Param    q      query string false "Order number, plate or client name"
// @Success  200 {array} response.OrderSummaryResponse
// @Security Bearer
// @Router   /orders [get]
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	filter := usecase.OrderFilter{
		Status: entities.OrderStatus(c.Query("status")),
		Search: c.Query("q"),
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), currentUser(c), filter)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrderSummaries(orders))
}

// GetOrder godoc
// @Summary  Order with items, checklist, photos, timeline, payments and totals
// @Tags     orders
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Success  200 {object} response.OrderDetailsResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{order_id} [get]
func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	details, err := h.usecase.GetDetails(c.Request.Context(), currentUser(c), c.Param("order_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrderDetails(details))
}

// SeedChecklist godoc
// @Summary  Record the intake checklist of an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    payload body request.ChecklistRequest true "Checklist"
// @Success  201 {array} response.ChecklistRowResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{order_id}/checklist [post]
func (h *ServiceOrderHandler) SeedChecklist(c *gin.Context) {
	var payload request.ChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_CHECKLIST_INPUT", "Invalid checklist payload", err)
		return
	}

	rows, err := h.usecase.SeedChecklist(c.Request.Context(), currentUser(c), c.Param("order_id"), payload.ToEntries())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromChecklist(rows))
}

// ToggleChecklist godoc
// @Summary  Flip a checklist row
// @Tags     orders
// @Produce  json
// @Param    row_id path string true "Checklist row ID"
// @Success  200 {object} response.ToggleChecklistResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /checklist/{row_id}/toggle [patch]
func (h *ServiceOrderHandler) ToggleChecklist(c *gin.Context) {
	rowID := c.Param("row_id")
	checked, found, err := h.usecase.ToggleChecklist(c.Request.Context(), currentUser(c), rowID)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	if !found {
		writeError(c, errChecklistRowNotFound)
		return
	}

	c.JSON(http.StatusOK, response.ToggleChecklistResponse{ID: rowID, Checked: checked})
}

// AddPhoto godoc
// @Summary  Attach a photo reference to an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Param    payload body request.PhotoRequest true "Photo"
// @Success  201 {object} response.PhotoResponse
// @Security Bearer
// @Router   /orders/{order_id}/photos [post]
func (h *ServiceOrderHandler) AddPhoto(c *gin.Context) {
	var payload request.PhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_PHOTO_INPUT", "Invalid photo payload", err)
		return
	}

	photo, err := h.usecase.AddPhoto(c.Request.Context(), currentUser(c), c.Param("order_id"), entities.PhotoKind(payload.Tipo), payload.URL)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromPhoto(photo))
}

// mapOrderError is shared by every handler working on a single order.
func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainError("ITEM_NOT_FOUND", "Item not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistAlreadySeeded):
		return pkg.NewDomainError("CHECKLIST_ALREADY_SEEDED", "Checklist already recorded for this order", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainError("INVALID_STATUS", "Unknown order status", err, http.StatusBadRequest)
	default:
		return mapClientError(err)
	}
}
