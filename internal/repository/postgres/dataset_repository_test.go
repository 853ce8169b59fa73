//go:build !integration

package postgres

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"smartCampusReco/domain"
)

func TestOrderRowToDomain(t *testing.T) {
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	row := OrderRow{
		ID:        "o1",
		UserID:    "u1",
		Items:     datatypes.JSON(`[{"food":"f1","quantity":2},{"food":42},{"food":" f3 ","quantity":0}]`),
		OrderedAt: &at,
		Status:    domain.OrderStatusReady,
	}

	order, err := row.toDomain()
	if err != nil {
		t.Fatalf("toDomain: %v", err)
	}

	want := []domain.OrderItem{
		{FoodID: "f1", Quantity: 2},
		{FoodID: "42", Quantity: 1},
		{FoodID: "f3", Quantity: 0},
	}
	if len(order.Items) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), order.Items)
	}
	for i := range want {
		if order.Items[i] != want[i] {
			t.Fatalf("item %d: expected %+v, got %+v", i, want[i], order.Items[i])
		}
	}
	if got, ok := order.OrderedAt.Time(); !ok || !got.Equal(at) {
		t.Fatalf("unexpected ordered at %v", got)
	}
}

func TestOrderRowInvalidItems(t *testing.T) {
	row := OrderRow{ID: "o1", Items: datatypes.JSON(`{"food":"f1"}`)}
	if _, err := row.toDomain(); err == nil {
		t.Fatalf("expected an error for non-array items")
	}
}

func TestToDatasetParkingTimestamps(t *testing.T) {
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	data, err := toDataset(nil, nil, []FoodRow{{ID: "f1", Name: "Shiro", Price: 150, Available: true}}, []ParkingRow{
		{ID: "p1", Slot: "11", UserID: "u1", Status: domain.ParkingStatusOccupied, OccupiedAt: &at},
	})
	if err != nil {
		t.Fatalf("toDataset: %v", err)
	}

	if data.Source != domain.SourceStore || len(data.Foods) != 1 {
		t.Fatalf("unexpected dataset %+v", data)
	}
	p := data.Parking[0]
	if !p.ReservedAt.IsZero() {
		t.Fatalf("missing reserved_at should stay zero")
	}
	if got, ok := p.StartedAt().Time(); !ok || !got.Equal(at) {
		t.Fatalf("expected occupied time as start, got %v", got)
	}
}
