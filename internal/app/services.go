package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/swagship-backend/internal/pkg/logger"
	"github.com/yungbote/swagship-backend/internal/platform/stripepay"
	"github.com/yungbote/swagship-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Ledger   services.LedgerService
	Catalog  services.CatalogService
	Cart     services.CartService
	Order    services.OrderService
	Payment  services.PaymentService
	Shipment services.ShipmentService

	Stripe *stripepay.Client
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")

	ledger := services.NewLedgerService(db, log, repos.User, repos.Entry)
	auth := services.NewAuthService(db, log, repos.User, ledger, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.WelcomeCredits)
	user := services.NewUserService(db, log, repos.User)
	catalog := services.NewCatalogService(db, log, repos.Item)
	cart := services.NewCartService(db, log, repos.Cart, repos.Item)
	geocoder := services.NewSimulatedGeocoder()
	order := services.NewOrderService(db, log, repos.User, repos.Item, repos.Cart, repos.Order, repos.Shipment, ledger, geocoder)
	shipment := services.NewShipmentService(db, log, repos.Shipment, order)

	stripe := stripepay.New(cfg.StripeSecretKey, cfg.StripeWebhookSecret, log)
	payment := services.NewPaymentService(db, log, stripe, ledger)

	return Services{
		Auth:     auth,
		User:     user,
		Ledger:   ledger,
		Catalog:  catalog,
		Cart:     cart,
		Order:    order,
		Payment:  payment,
		Shipment: shipment,
		Stripe:   stripe,
	}
}
