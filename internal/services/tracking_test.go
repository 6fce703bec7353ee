package services

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	types "github.com/yungbote/swagship-backend/internal/domain"
)

func TestNewTrackingNumberFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tn := newTrackingNumber(now)

	parts := strings.Split(tn, "-")
	if len(parts) != 3 {
		t.Fatalf("tracking number %q has %d segments, want 3", tn, len(parts))
	}
	if parts[0] != "SWG" {
		t.Fatalf("prefix = %q, want SWG", parts[0])
	}
	ms, err := strconv.ParseInt(strings.ToLower(parts[1]), 36, 64)
	if err != nil {
		t.Fatalf("timestamp segment %q not base36: %v", parts[1], err)
	}
	if ms != now.UnixMilli() {
		t.Fatalf("timestamp segment decodes to %d, want %d", ms, now.UnixMilli())
	}
	if len(parts[2]) != 8 {
		t.Fatalf("random segment %q has length %d, want 8", parts[2], len(parts[2]))
	}
	if tn != strings.ToUpper(tn) {
		t.Fatalf("tracking number %q not uppercase", tn)
	}
}

func TestNewTrackingNumberUnique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tn := newTrackingNumber(now)
		if seen[tn] {
			t.Fatalf("duplicate tracking number %q", tn)
		}
		seen[tn] = true
	}
}

func TestOrderTotalRoundsToCents(t *testing.T) {
	price := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}
	line := func(p string, qty int) *types.CartItem {
		return &types.CartItem{
			ID:       uuid.New(),
			Quantity: qty,
			Item:     &types.Item{ID: uuid.New(), Price: price(p)},
		}
	}

	cases := []struct {
		name  string
		lines []*types.CartItem
		want  string
	}{
		{"single line", []*types.CartItem{line("25.00", 1)}, "25.00"},
		{"multiple quantities", []*types.CartItem{line("19.99", 3)}, "59.97"},
		{"mixed cart", []*types.CartItem{line("25.00", 2), line("12.50", 1)}, "62.50"},
		{"half cent rounds up", []*types.CartItem{line("0.125", 1)}, "0.13"},
		{"missing item skipped", []*types.CartItem{{ID: uuid.New(), Quantity: 2}, line("5.00", 1)}, "5.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := orderTotal(tc.lines)
			if got.StringFixed(2) != tc.want {
				t.Fatalf("orderTotal = %s, want %s", got.StringFixed(2), tc.want)
			}
		})
	}
}

func TestSimulatedGeocoderDeterministic(t *testing.T) {
	g := NewSimulatedGeocoder()
	addr := Address{Address: "1 Main St", City: "New York", State: "NY", ZipCode: "10001", Country: "USA"}

	first, err := g.Geocode(context.Background(), addr)
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	second, err := g.Geocode(context.Background(), addr)
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if first != second {
		t.Fatalf("same address geocoded to %+v and %+v", first, second)
	}

	if first.Lat < 40.7128-5 || first.Lat > 40.7128+5 {
		t.Fatalf("lat %f outside destination window", first.Lat)
	}
	if first.Lng < -74.0060-5 || first.Lng > -74.0060+5 {
		t.Fatalf("lng %f outside destination window", first.Lng)
	}

	other, err := g.Geocode(context.Background(), Address{Address: "2 Oak Ave", City: "Boston", State: "MA", ZipCode: "02101"})
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if other == first {
		t.Fatalf("different addresses geocoded to the same point %+v", first)
	}
}
