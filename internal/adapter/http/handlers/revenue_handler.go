package handlers

import (
	"net/http"

	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RevenueHandler struct {
	usecase usecase.IRevenueUseCase
}

func NewRevenueHandler(uc usecase.IRevenueUseCase) *RevenueHandler {
	return &RevenueHandler{usecase: uc}
}

// Summary godoc
// @Summary  Dashboard revenue metrics
// @Tags     revenue
// @Produce  json
// @Success  200 {object} response.RevenueResponse
// @Security Bearer
// @Router   /dashboard/revenue [get]
func (h *RevenueHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRevenue(summary))
}
