package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Item is a catalog product. Stock is decremented only by the order engine,
// under a non-negative guard; the check constraint backs that up.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string          `gorm:"not null;index;column:name" json:"name"`
	Description string          `gorm:"column:description" json:"description"`
	Category    string          `gorm:"not null;index;column:category" json:"category"`
	ImageURL    string          `gorm:"column:image_url" json:"image_url"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;column:price" json:"price"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0;column:stock" json:"stock"`
	// Variant/size options per category, from the seed catalog.
	Metadata datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Item) TableName() string { return "item" }
