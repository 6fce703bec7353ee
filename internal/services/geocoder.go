package services

import (
	"context"
	"hash/fnv"

	"github.com/yungbote/swagship-backend/internal/shipping/progress"
)

// Address is the shipping destination supplied at checkout.
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Geocoder maps a shipping address to a destination coordinate. The real
// implementation is an external collaborator; the simulated one below is used
// when none is wired in.
type Geocoder interface {
	Geocode(ctx context.Context, addr Address) (progress.Coord, error)
}

// warehouse origin for every shipment.
var warehouseCoord = progress.Coord{Lat: 37.7749, Lng: -122.4194}

type simulatedGeocoder struct{}

func NewSimulatedGeocoder() Geocoder { return simulatedGeocoder{} }

// Geocode derives a deterministic pseudo-destination around the east coast
// from the address text, so the same address always tracks to the same spot.
func (simulatedGeocoder) Geocode(_ context.Context, addr Address) (progress.Coord, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(addr.Address + "|" + addr.City + "|" + addr.State + "|" + addr.ZipCode))
	sum := h.Sum64()
	latJitter := (float64(sum%1000)/1000 - 0.5) * 10
	lngJitter := (float64((sum/1000)%1000)/1000 - 0.5) * 10
	return progress.Coord{Lat: 40.7128 + latJitter, Lng: -74.0060 + lngJitter}, nil
}
