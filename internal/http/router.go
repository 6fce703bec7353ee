package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/swagship-backend/internal/http/handlers"
	httpMW "github.com/yungbote/swagship-backend/internal/http/middleware"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	UserHandler     *httpH.UserHandler
	CatalogHandler  *httpH.CatalogHandler
	CartHandler     *httpH.CartHandler
	OrderHandler    *httpH.OrderHandler
	PaymentHandler  *httpH.PaymentHandler
	ShipmentHandler *httpH.ShipmentHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.CORS())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}

		// Catalog (public)
		if cfg.CatalogHandler != nil {
			api.GET("/items", cfg.CatalogHandler.ListItems)
			api.GET("/items/categories", cfg.CatalogHandler.Categories)
			api.GET("/items/:id", cfg.CatalogHandler.GetItem)
		}

		// Payment processor notifications (signature-authenticated)
		if cfg.PaymentHandler != nil {
			api.POST("/payments/webhook", cfg.PaymentHandler.Webhook)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// User (Me) and credits
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
			protected.GET("/credits/balance", cfg.UserHandler.GetBalance)
			protected.GET("/credits/history", cfg.UserHandler.GetHistory)
		}

		// Cart
		if cfg.CartHandler != nil {
			protected.GET("/cart", cfg.CartHandler.GetCart)
			protected.POST("/cart", cfg.CartHandler.AddItem)
			protected.PATCH("/cart/:id", cfg.CartHandler.UpdateQuantity)
			protected.DELETE("/cart/:id", cfg.CartHandler.RemoveItem)
			protected.DELETE("/cart", cfg.CartHandler.ClearCart)
		}

		// Orders
		if cfg.OrderHandler != nil {
			protected.POST("/orders", cfg.OrderHandler.PlaceOrder)
			protected.GET("/orders", cfg.OrderHandler.ListOrders)
			protected.GET("/orders/:id", cfg.OrderHandler.GetOrder)
		}

		// Payments
		if cfg.PaymentHandler != nil {
			protected.POST("/payments/intent", cfg.PaymentHandler.CreateIntent)
			protected.POST("/payments/confirm", cfg.PaymentHandler.ConfirmPayment)
		}

		// Shipment tracking
		if cfg.ShipmentHandler != nil {
			protected.GET("/orders/:id/tracking", cfg.ShipmentHandler.TrackByOrder)
			protected.GET("/orders/:id/tracking/history", cfg.ShipmentHandler.TrackHistory)
			protected.GET("/shipping/track/:trackingNumber", cfg.ShipmentHandler.TrackByNumber)
		}
	}

	return r
}
