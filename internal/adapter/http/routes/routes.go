package routes

import (
	"context"
	"net/http"

	_ "vaquinha/docs" // registers the OpenAPI document served at /swagger
	"vaquinha/internal/adapter/http/handlers"
	"vaquinha/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Webhook  *handlers.WebhookHandler
	Checkout *handlers.CheckoutHandler
	Pools    *handlers.PoolHandler
}

// Run will start the server
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	h, err := BuildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}

	router := NewRouter(h, log)
	log.Info("starting http server", zap.String("port", cfg.Port), zap.String("storage", cfg.StorageBackend), zap.Bool("gateway_mock", cfg.PaymentGatewayMock))
	return router.Run(":" + cfg.Port)
}

func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Paths used by the Mercado Pago notification_url and the web client
	api := router.Group("/api")
	addWebhookRoutes(api, h.Webhook)
	addCompatibilityRoutes(api, h.Checkout, h.Pools)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Checkout)
	addPoolRoutes(v1, h.Pools)

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
