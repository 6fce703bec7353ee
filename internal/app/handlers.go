package app

import (
	httpH "github.com/yungbote/swagship-backend/internal/http/handlers"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Catalog  *httpH.CatalogHandler
	Cart     *httpH.CartHandler
	Order    *httpH.OrderHandler
	Payment  *httpH.PaymentHandler
	Shipment *httpH.ShipmentHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(svcs.Auth),
		User:     httpH.NewUserHandler(svcs.User, svcs.Ledger),
		Catalog:  httpH.NewCatalogHandler(svcs.Catalog),
		Cart:     httpH.NewCartHandler(svcs.Cart),
		Order:    httpH.NewOrderHandler(svcs.Order),
		Payment:  httpH.NewPaymentHandler(svcs.Payment, svcs.Stripe),
		Shipment: httpH.NewShipmentHandler(svcs.Shipment),
	}
}
