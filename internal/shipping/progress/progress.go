// Package progress implements the time-driven shipment status machine. It is
// pure: callers feed it the persisted state and a clock reading, it answers
// what the shipment looks like now. Persistence of the answer is the
// service's problem.
package progress

import (
	"math/rand"
	"time"

	"github.com/yungbote/swagship-backend/internal/domain/shipping"
)

// Statuses in forward order. A shipment only ever moves right.
var Statuses = []shipping.ShipmentStatus{
	shipping.StatusProcessing,
	shipping.StatusPickedUp,
	shipping.StatusInTransit,
	shipping.StatusOutForDelivery,
	shipping.StatusDelivered,
}

// transition thresholds, measured from the shipment's last_updated stamp.
// At most one step is taken per evaluation; thresholds apply to the current
// state only and are never replayed historically.
var thresholds = map[shipping.ShipmentStatus]struct {
	after time.Duration
	next  shipping.ShipmentStatus
}{
	shipping.StatusProcessing:     {after: 1 * time.Hour, next: shipping.StatusPickedUp},
	shipping.StatusPickedUp:       {after: 6 * time.Hour, next: shipping.StatusInTransit},
	shipping.StatusInTransit:      {after: 48 * time.Hour, next: shipping.StatusOutForDelivery},
	shipping.StatusOutForDelivery: {after: 72 * time.Hour, next: shipping.StatusDelivered},
}

var percents = map[shipping.ShipmentStatus]int{
	shipping.StatusProcessing:     10,
	shipping.StatusPickedUp:       25,
	shipping.StatusInTransit:      50,
	shipping.StatusOutForDelivery: 80,
	shipping.StatusDelivered:      100,
}

func Index(status shipping.ShipmentStatus) int {
	for i, s := range Statuses {
		if s == status {
			return i
		}
	}
	return -1
}

func Percent(status shipping.ShipmentStatus) int {
	return percents[status]
}

func Label(status shipping.ShipmentStatus) string {
	switch status {
	case shipping.StatusProcessing:
		return "Processing"
	case shipping.StatusPickedUp:
		return "Picked Up"
	case shipping.StatusInTransit:
		return "In Transit"
	case shipping.StatusOutForDelivery:
		return "Out for Delivery"
	case shipping.StatusDelivered:
		return "Delivered"
	}
	return string(status)
}

// Next returns the state the shipment should be in at now, given its current
// status and when that status was last written. It advances at most one step.
func Next(status shipping.ShipmentStatus, lastUpdated, now time.Time) shipping.ShipmentStatus {
	t, ok := thresholds[status]
	if !ok {
		return status
	}
	if now.Sub(lastUpdated) > t.after {
		return t.next
	}
	return status
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Position interpolates between origin and destination by the status'
// progress percentage. While not delivered, bounded jitter is layered on so
// repeated reads look like a package in motion.
func Position(origin, dest Coord, status shipping.ShipmentStatus, rng *rand.Rand) Coord {
	p := float64(Percent(status)) / 100
	pos := Coord{
		Lat: origin.Lat + (dest.Lat-origin.Lat)*p,
		Lng: origin.Lng + (dest.Lng-origin.Lng)*p,
	}
	if status != shipping.StatusDelivered && rng != nil {
		pos.Lat += (rng.Float64() - 0.5) * 0.5
		pos.Lng += (rng.Float64() - 0.5) * 0.5
	}
	return pos
}

// Route renders an 11-point polyline from origin to destination for map
// display.
func Route(origin, dest Coord) []Coord {
	const steps = 10
	route := make([]Coord, 0, steps+1)
	for i := 0; i <= steps; i++ {
		p := float64(i) / steps
		route = append(route, Coord{
			Lat: origin.Lat + (dest.Lat-origin.Lat)*p,
			Lng: origin.Lng + (dest.Lng-origin.Lng)*p,
		})
	}
	return route
}

type Event struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

var timelineSteps = []struct {
	status      shipping.ShipmentStatus
	offset      time.Duration
	label       string
	location    string
	description string
}{
	{shipping.StatusProcessing, 30 * time.Minute, "Processing", "SwagShip Warehouse, San Francisco, CA", "Order is being prepared for shipment"},
	{shipping.StatusPickedUp, 2 * time.Hour, "Picked Up", "SwagShip Warehouse, San Francisco, CA", "Package has been picked up by carrier"},
	{shipping.StatusInTransit, 12 * time.Hour, "In Transit", "Distribution Center", "Package is on its way"},
	{shipping.StatusOutForDelivery, 48 * time.Hour, "Out for Delivery", "Local Delivery Facility", "Package is out for delivery"},
	{shipping.StatusDelivered, 72 * time.Hour, "Delivered", "Delivery Address", "Package has been delivered"},
}

// Timeline reconstructs the synthetic event history for a shipment that has
// reached the given status: one event per state reached, at fixed offsets
// from order creation, newest first. Derived on demand, never stored.
func Timeline(orderCreatedAt time.Time, status shipping.ShipmentStatus) []Event {
	events := []Event{{
		Status:      "Order Placed",
		Location:    "Online",
		Timestamp:   orderCreatedAt,
		Description: "Order has been placed and confirmed",
	}}
	reached := Index(status)
	for i, step := range timelineSteps {
		if i > reached {
			break
		}
		events = append(events, Event{
			Status:      step.label,
			Location:    step.location,
			Timestamp:   orderCreatedAt.Add(step.offset),
			Description: step.description,
		})
	}
	// newest first
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events
}
