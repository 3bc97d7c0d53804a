package routes

import (
	"oficina_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathClients   = "/clients"
	PathOrders    = "/orders"
	PathChecklist = "/checklist"
	PathItems     = "/items"
	PathRevenue   = "/dashboard/revenue"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/signin", h.SignIn)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:client_id", h.GetClient)
		clients.POST("/:client_id/vehicles", h.CreateVehicle)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler, status *handlers.OrderStatusHandler, quote *handlers.OrderQuoteHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.POST("/intake", h.Intake)
		orders.GET("", h.ListOrders)
		orders.GET("/:order_id", h.GetOrder)
		orders.PATCH("/:order_id", h.UpdateOrder)
		orders.POST("/:order_id/checklist", h.SeedChecklist)
		orders.POST("/:order_id/photos", h.AddPhoto)
		orders.PATCH("/:order_id/status", status.SetStatus)
		orders.GET("/:order_id/quote", quote.GetQuote)
	}

	rg.PATCH(PathChecklist+"/:row_id/toggle", h.ToggleChecklist)
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.OrderPricingHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/items", h.AddItem)
		orders.DELETE("/:order_id/items", h.RemoveItemsByKind)
		orders.PUT("/:order_id/labor", h.SetLabor)
		orders.DELETE("/:order_id/labor", h.ClearLabor)
	}

	items := rg.Group(PathItems)
	{
		items.GET("/suggest-kind", h.SuggestKind)
		items.DELETE("/:item_id", h.RemoveItem)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.OrderPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/payments", h.Charge)
		orders.GET("/:order_id/payments", h.ListPayments)
	}
}

func addRevenueRoutes(rg *gin.RouterGroup, h *handlers.RevenueHandler) {
	rg.GET(PathRevenue, h.Summary)
}
