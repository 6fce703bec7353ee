package app

import (
	internalhttp "github.com/yungbote/swagship-backend/internal/http"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers, mw Middleware) *internalhttp.Server {
	return internalhttp.NewServer(internalhttp.RouterConfig{
		Log:             log,
		AuthHandler:     handlers.Auth,
		AuthMiddleware:  mw.Auth,
		UserHandler:     handlers.User,
		CatalogHandler:  handlers.Catalog,
		CartHandler:     handlers.Cart,
		OrderHandler:    handlers.Order,
		PaymentHandler:  handlers.Payment,
		ShipmentHandler: handlers.Shipment,
		HealthHandler:   handlers.Health,
	})
}
