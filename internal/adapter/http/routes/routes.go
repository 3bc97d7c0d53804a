package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"

	_ "oficina_pro/docs"
	"oficina_pro/internal/adapter/http/handlers"
	"oficina_pro/internal/adapter/http/middleware"
	"oficina_pro/internal/infrastructure/auth"
	"oficina_pro/internal/infrastructure/config"
	"oficina_pro/internal/infrastructure/payments"
	"oficina_pro/internal/usecase"
	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.NewZapLogger(cfg.App.LogLevel, cfg.App.GinMode != gin.ReleaseMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	logger.SetDefault(zl)
	defer zl.Sync()

	ctx := context.Background()
	store, closeStore, err := newDatasetStore(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "[app][routes] storage init failed driver=%s err=%v", cfg.Storage.Driver, err)
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer closeStore()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock)
	if err != nil {
		logger.Warnf(ctx, "[app][routes] Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	router, err := NewRouter(cfg, store, paymentGateway)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}

	logger.Infof(ctx, "[app][routes] listening port=%d storage=%s", cfg.App.Port, cfg.Storage.Driver)
	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires use cases and handlers on top of an already opened store.
// A nil gateway leaves the charge endpoint answering 503.
func NewRouter(cfg *config.Config, store interfaces.IDatasetStore, gateway interfaces.IPaymentGateway) (*gin.Engine, error) {
	gin.SetMode(cfg.App.GinMode)
	registerValidatorTagNames()

	tokens, err := newTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	ws := usecase.NewWorkspace(store)

	authHandler := handlers.NewAuthHandler(usecase.NewAccountUseCase(ws, tokens))
	clientHandler := handlers.NewClientHandler(usecase.NewClientUseCase(ws))
	orderHandler := handlers.NewServiceOrderHandler(usecase.NewServiceOrderUseCase(ws))
	pricingHandler := handlers.NewOrderPricingHandler(usecase.NewOrderPricingUseCase(ws))
	statusHandler := handlers.NewOrderStatusHandler(usecase.NewOrderStatusUseCase(ws))
	quoteHandler := handlers.NewOrderQuoteHandler(usecase.NewOrderQuoteUseCase(ws))
	paymentHandler := handlers.NewOrderPaymentHandler(usecase.NewOrderPaymentUseCase(ws, gateway))
	revenueHandler := handlers.NewRevenueHandler(usecase.NewRevenueUseCase(ws, cfg.Location()))

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas autenticadas
	private := v1.Group("", middleware.Auth(tokens))
	addClientRoutes(private, clientHandler)
	addOrderRoutes(private, orderHandler, statusHandler, quoteHandler)
	addPricingRoutes(private, pricingHandler)
	addPaymentRoutes(private, paymentHandler)
	addRevenueRoutes(private, revenueHandler)

	return router, nil
}

func newTokenService(cfg config.AuthConfig) (*auth.TokenService, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		generated, err := auth.RandomSecret()
		if err != nil {
			return nil, err
		}
		logger.Warnf(context.Background(), "[app][routes] JWT_SECRET not set, using a random secret; tokens will not survive restarts")
		secret = generated
	}
	tokens, err := auth.NewTokenService(secret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	return tokens, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf(c.Request.Context(), "[app][routes] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
