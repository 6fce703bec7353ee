package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/swagship-backend/internal/data/repos/account"
	"github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	ledgerrepo "github.com/yungbote/swagship-backend/internal/data/repos/ledger"
	orderrepo "github.com/yungbote/swagship-backend/internal/data/repos/order"
	shiprepo "github.com/yungbote/swagship-backend/internal/data/repos/shipping"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type Repos struct {
	User     account.UserRepo
	Entry    ledgerrepo.EntryRepo
	Item     catalog.ItemRepo
	Cart     catalog.CartRepo
	Order    orderrepo.OrderRepo
	Shipment shiprepo.ShipmentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:     account.NewUserRepo(db, log),
		Entry:    ledgerrepo.NewEntryRepo(db, log),
		Item:     catalog.NewItemRepo(db, log),
		Cart:     catalog.NewCartRepo(db, log),
		Order:    orderrepo.NewOrderRepo(db, log),
		Shipment: shiprepo.NewShipmentRepo(db, log),
	}
}
