package shipping

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentStatus string

const (
	StatusProcessing     ShipmentStatus = "processing"
	StatusPickedUp       ShipmentStatus = "picked_up"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
)

// Shipment is created alongside its order. Status, current coordinates and
// LastUpdated are the only mutable fields; they move only forward through the
// status progression and only via the progress simulator.
type Shipment struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:order_id" json:"order_id"`
	TrackingNumber string         `gorm:"uniqueIndex;not null;column:tracking_number" json:"tracking_number"`
	Status         ShipmentStatus `gorm:"not null;column:status" json:"status"`
	Carrier        string         `gorm:"not null;default:'SwagShip Express';column:carrier" json:"carrier"`

	OriginLat  float64 `gorm:"not null;column:origin_lat" json:"origin_lat"`
	OriginLng  float64 `gorm:"not null;column:origin_lng" json:"origin_lng"`
	DestLat    float64 `gorm:"not null;column:dest_lat" json:"dest_lat"`
	DestLng    float64 `gorm:"not null;column:dest_lng" json:"dest_lng"`
	CurrentLat float64 `gorm:"not null;column:current_lat" json:"current_lat"`
	CurrentLng float64 `gorm:"not null;column:current_lng" json:"current_lng"`

	EstimatedDelivery time.Time `gorm:"not null;column:estimated_delivery" json:"estimated_delivery"`
	LastUpdated       time.Time `gorm:"not null;column:last_updated" json:"last_updated"`
	CreatedAt         time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Shipment) TableName() string { return "shipment" }
