package domain

import (
	"github.com/yungbote/swagship-backend/internal/domain/account"
	"github.com/yungbote/swagship-backend/internal/domain/catalog"
	"github.com/yungbote/swagship-backend/internal/domain/ledger"
	"github.com/yungbote/swagship-backend/internal/domain/order"
	"github.com/yungbote/swagship-backend/internal/domain/shipping"
)

type User = account.User

type LedgerEntry = ledger.LedgerEntry
type EntryKind = ledger.EntryKind

const (
	KindWelcomeGrant   = ledger.KindWelcomeGrant
	KindCreditPurchase = ledger.KindCreditPurchase
	KindOrderDebit     = ledger.KindOrderDebit
)

type Item = catalog.Item
type CartItem = catalog.CartItem

type Order = order.Order
type OrderLine = order.OrderLine

const OrderStatusConfirmed = order.StatusConfirmed

type Shipment = shipping.Shipment
type ShipmentStatus = shipping.ShipmentStatus

const (
	ShipmentProcessing     = shipping.StatusProcessing
	ShipmentPickedUp       = shipping.StatusPickedUp
	ShipmentInTransit      = shipping.StatusInTransit
	ShipmentOutForDelivery = shipping.StatusOutForDelivery
	ShipmentDelivered      = shipping.StatusDelivered
)
