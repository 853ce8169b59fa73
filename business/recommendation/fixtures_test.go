//go:build !integration

package recommendation

import (
	"math"
	"testing"
	"time"

	"smartCampusReco/domain"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func daysAgo(d float64) time.Time {
	return testNow.Add(-time.Duration(d * float64(24*time.Hour)))
}

func order(user string, at time.Time, items ...domain.OrderItem) domain.Order {
	return domain.Order{
		UserID:    domain.ID(user),
		Items:     items,
		OrderedAt: domain.TimestampOf(at),
		Status:    domain.OrderStatusReady,
	}
}

func item(food string, qty int) domain.OrderItem {
	return domain.OrderItem{FoodID: domain.ID(food), Quantity: qty}
}

func reservation(user, slot, status string, at time.Time) domain.ParkingReservation {
	return domain.ParkingReservation{
		UserID:     domain.ID(user),
		Slot:       slot,
		Status:     status,
		ReservedAt: domain.TimestampOf(at),
	}
}

func catalogOf(ids ...string) map[domain.ID]domain.Food {
	out := make(map[domain.ID]domain.Food, len(ids))
	for i, id := range ids {
		out[domain.ID(id)] = domain.Food{
			ID:    domain.ID(id),
			Name:  "Food " + id,
			Price: float64(10 * (i + 1)),
		}
	}
	return out
}

func foodsOf(ids ...string) []domain.Food {
	out := make([]domain.Food, 0, len(ids))
	for _, f := range catalogOf(ids...) {
		out = append(out, f)
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
}

func foodIDs(recs []domain.FoodRecommendation) []domain.ID {
	out := make([]domain.ID, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []domain.FoodRecommendation, want ...string) {
	t.Helper()
	ids := foodIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != domain.ID(want[i]) {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}
