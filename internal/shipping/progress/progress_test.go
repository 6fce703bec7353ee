package progress

import (
	"math/rand"
	"testing"
	"time"

	"github.com/yungbote/swagship-backend/internal/domain/shipping"
)

func TestNextTransitionsAtThresholds(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		status  shipping.ShipmentStatus
		elapsed time.Duration
		want    shipping.ShipmentStatus
	}{
		{"processing holds inside window", shipping.StatusProcessing, 59 * time.Minute, shipping.StatusProcessing},
		{"processing holds at boundary", shipping.StatusProcessing, 1 * time.Hour, shipping.StatusProcessing},
		{"processing advances past one hour", shipping.StatusProcessing, 61 * time.Minute, shipping.StatusPickedUp},
		{"picked up holds inside window", shipping.StatusPickedUp, 6 * time.Hour, shipping.StatusPickedUp},
		{"picked up advances past six hours", shipping.StatusPickedUp, 6*time.Hour + time.Second, shipping.StatusInTransit},
		{"in transit advances past forty-eight hours", shipping.StatusInTransit, 49 * time.Hour, shipping.StatusOutForDelivery},
		{"out for delivery advances past seventy-two hours", shipping.StatusOutForDelivery, 73 * time.Hour, shipping.StatusDelivered},
		{"delivered is terminal", shipping.StatusDelivered, 1000 * time.Hour, shipping.StatusDelivered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Next(tc.status, base, base.Add(tc.elapsed))
			if got != tc.want {
				t.Fatalf("Next(%s, +%s) = %s, want %s", tc.status, tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestNextAdvancesAtMostOneStep(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A week has passed, far beyond every threshold; a single evaluation
	// still only moves one state forward.
	got := Next(shipping.StatusProcessing, base, base.Add(7*24*time.Hour))
	if got != shipping.StatusPickedUp {
		t.Fatalf("Next after a week = %s, want %s", got, shipping.StatusPickedUp)
	}
}

func TestIndexOrdering(t *testing.T) {
	for i := 1; i < len(Statuses); i++ {
		if Index(Statuses[i]) <= Index(Statuses[i-1]) {
			t.Fatalf("status order broken at %s", Statuses[i])
		}
	}
	if Index("bogus") != -1 {
		t.Fatalf("unknown status should index -1")
	}
}

func TestPercentPerStatus(t *testing.T) {
	want := map[shipping.ShipmentStatus]int{
		shipping.StatusProcessing:     10,
		shipping.StatusPickedUp:       25,
		shipping.StatusInTransit:      50,
		shipping.StatusOutForDelivery: 80,
		shipping.StatusDelivered:      100,
	}
	for status, pct := range want {
		if got := Percent(status); got != pct {
			t.Fatalf("Percent(%s) = %d, want %d", status, got, pct)
		}
	}
}

func TestPositionDeliveredLandsOnDestination(t *testing.T) {
	origin := Coord{Lat: 37.7749, Lng: -122.4194}
	dest := Coord{Lat: 40.7128, Lng: -74.0060}
	rng := rand.New(rand.NewSource(1))

	pos := Position(origin, dest, shipping.StatusDelivered, rng)
	if !near(pos.Lat, dest.Lat) || !near(pos.Lng, dest.Lng) {
		t.Fatalf("delivered position = %+v, want %+v with no jitter", pos, dest)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestPositionJitterIsBounded(t *testing.T) {
	origin := Coord{Lat: 37.7749, Lng: -122.4194}
	dest := Coord{Lat: 40.7128, Lng: -74.0060}
	rng := rand.New(rand.NewSource(7))

	exact := Position(origin, dest, shipping.StatusInTransit, nil)
	for i := 0; i < 100; i++ {
		pos := Position(origin, dest, shipping.StatusInTransit, rng)
		if diff := pos.Lat - exact.Lat; diff > 0.25 || diff < -0.25 {
			t.Fatalf("lat jitter %f out of bounds", diff)
		}
		if diff := pos.Lng - exact.Lng; diff > 0.25 || diff < -0.25 {
			t.Fatalf("lng jitter %f out of bounds", diff)
		}
	}
}

func TestRouteEndpoints(t *testing.T) {
	origin := Coord{Lat: 37.7749, Lng: -122.4194}
	dest := Coord{Lat: 40.7128, Lng: -74.0060}

	route := Route(origin, dest)
	if len(route) != 11 {
		t.Fatalf("route has %d points, want 11", len(route))
	}
	if route[0] != origin {
		t.Fatalf("route starts at %+v, want %+v", route[0], origin)
	}
	end := route[len(route)-1]
	if !near(end.Lat, dest.Lat) || !near(end.Lng, dest.Lng) {
		t.Fatalf("route ends at %+v, want %+v", end, dest)
	}
}

func TestTimelineEventsPerStatus(t *testing.T) {
	placed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		status shipping.ShipmentStatus
		events int
	}{
		{shipping.StatusProcessing, 2},
		{shipping.StatusPickedUp, 3},
		{shipping.StatusInTransit, 4},
		{shipping.StatusOutForDelivery, 5},
		{shipping.StatusDelivered, 6},
	}
	for _, tc := range cases {
		events := Timeline(placed, tc.status)
		if len(events) != tc.events {
			t.Fatalf("Timeline(%s) has %d events, want %d", tc.status, len(events), tc.events)
		}
		// Newest first; the oldest event is always the order placement.
		last := events[len(events)-1]
		if last.Status != "Order Placed" || !last.Timestamp.Equal(placed) {
			t.Fatalf("oldest event = %+v, want order placement at %s", last, placed)
		}
		for i := 1; i < len(events); i++ {
			if events[i].Timestamp.After(events[i-1].Timestamp) {
				t.Fatalf("timeline not sorted newest first at index %d", i)
			}
		}
	}
}

func TestTimelineOffsets(t *testing.T) {
	placed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	events := Timeline(placed, shipping.StatusDelivered)

	wantOffsets := map[string]time.Duration{
		"Processing":       30 * time.Minute,
		"Picked Up":        2 * time.Hour,
		"In Transit":       12 * time.Hour,
		"Out for Delivery": 48 * time.Hour,
		"Delivered":        72 * time.Hour,
	}
	for _, ev := range events {
		offset, ok := wantOffsets[ev.Status]
		if !ok {
			continue
		}
		if !ev.Timestamp.Equal(placed.Add(offset)) {
			t.Fatalf("%s at %s, want %s", ev.Status, ev.Timestamp, placed.Add(offset))
		}
	}
}
