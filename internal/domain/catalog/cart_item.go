package catalog

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is ephemeral cart state, one row per user+item. Cleared by the
// order engine when an order commits.
type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_item;column:user_id" json:"user_id"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_item;column:item_id" json:"item_id"`
	Quantity int       `gorm:"not null;check:quantity > 0;column:quantity" json:"quantity"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (CartItem) TableName() string { return "cart_item" }
