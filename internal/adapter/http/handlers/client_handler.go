package handlers

import (
	"errors"
	"net/http"

	"oficina_pro/internal/adapter/http/dto/request"
	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/usecase"
	"oficina_pro/pkg"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary  Register a customer
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    payload body request.ClientRequest true "Customer"
// @Success  201 {object} response.ClientResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_CLIENT_INPUT", "Invalid client payload", err)
		return
	}

	client, err := h.usecase.CreateClient(c.Request.Context(), currentUser(c), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

// ListClients godoc
// @Summary  List customers, optionally filtered by name, phone or email
// @Tags     clients
// @Produce  json
// @Param    q query string false "Search text"
// @Success  200 {array} response.ClientResponse
// @Security Bearer
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context(), currentUser(c), c.Query("q"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary  Customer with vehicles
// @Tags     clients
// @Produce  json
// @Param    client_id path string true "Client ID"
// @Success  200 {object} response.ClientDetailsResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /clients/{client_id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	details, err := h.usecase.GetClient(c.Request.Context(), currentUser(c), c.Param("client_id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromClientDetails(details))
}

// CreateVehicle godoc
// @Summary  Register a vehicle for a customer
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    client_id path string true "Client ID"
// @Param    payload body request.VehicleRequest true "Vehicle"
// @Success  201 {object} response.VehicleResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /clients/{client_id}/vehicles [post]
func (h *ClientHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_VEHICLE_INPUT", "Invalid vehicle payload", err)
		return
	}

	vehicle, err := h.usecase.CreateVehicle(c.Request.Context(), currentUser(c), payload.ToInput(c.Param("client_id")))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainError("CLIENT_NOT_FOUND", "Client not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainError("VEHICLE_NOT_FOUND", "Vehicle not found", err, http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
