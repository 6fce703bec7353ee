package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/swagship-backend/internal/domain/catalog"
	"github.com/yungbote/swagship-backend/internal/domain/shipping"
)

const StatusConfirmed = "confirmed"

// Order is created once, atomically with its lines, and is immutable after
// creation. TotalAmount always equals the sum of quantity*price_at_purchase
// over its lines.
type Order struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Status         string          `gorm:"not null;column:status" json:"status"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null;column:total_amount" json:"total_amount"`
	TrackingNumber string          `gorm:"uniqueIndex;not null;column:tracking_number" json:"tracking_number"`

	ShippingAddress string `gorm:"not null;column:shipping_address" json:"shipping_address"`
	ShippingCity    string `gorm:"not null;column:shipping_city" json:"shipping_city"`
	ShippingState   string `gorm:"not null;column:shipping_state" json:"shipping_state"`
	ShippingZip     string `gorm:"not null;column:shipping_zip" json:"shipping_zip"`
	ShippingCountry string `gorm:"not null;column:shipping_country" json:"shipping_country"`

	Lines    []OrderLine        `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
	Shipment *shipping.Shipment `gorm:"foreignKey:OrderID" json:"shipment,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (Order) TableName() string { return "order" }

// OrderLine snapshots the catalog price at order time; it is never
// recalculated from the catalog.
type OrderLine struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index;column:order_id" json:"order_id"`
	ItemID          uuid.UUID       `gorm:"type:uuid;not null;column:item_id" json:"item_id"`
	Quantity        int             `gorm:"not null;column:quantity" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null;column:price_at_purchase" json:"price_at_purchase"`

	// Item gives read surfaces the catalog details (name, image, category)
	// behind the snapshot price.
	Item *catalog.Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (OrderLine) TableName() string { return "order_line" }
