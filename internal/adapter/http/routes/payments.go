package routes

import (
	"vaquinha/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathPools    = "/pools"
	PathWebhook  = "/webhook"
)

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathWebhook, webhookHandler.Receive)
}

// addCompatibilityRoutes keeps the paths the web client already calls.
func addCompatibilityRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, poolHandler *handlers.PoolHandler) {
	rg.POST("/create-payment", checkoutHandler.CreatePayment)
	rg.POST("/create-vaquinha-payment", poolHandler.CreateParticipantPix)
}

func addPaymentRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", checkoutHandler.GetPayment)
	}
}

func addPoolRoutes(rg *gin.RouterGroup, poolHandler *handlers.PoolHandler) {
	pools := rg.Group(PathPools)
	{
		pools.POST("", poolHandler.CreatePool)
		pools.GET("", poolHandler.ListPools)
		pools.GET("/:id", poolHandler.GetPool)
		pools.GET("/:id/ws", poolHandler.PoolFeed)
	}
}
