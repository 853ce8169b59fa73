//go:build !integration

package recommendation

import (
	"testing"

	"smartCampusReco/domain"
)

func TestAggregateFoodPopularityIsSumOfQuantities(t *testing.T) {
	orders := []domain.Order{
		order("u1", testNow, item("f1", 2), item("f2", 1)),
		order("u2", daysAgo(3), item("f1", 4)),
		order("u1", daysAgo(40), item("f2", 5), item("f1", 1)),
	}

	in := Aggregate(orders, nil)

	want := map[domain.ID]int{}
	for _, o := range orders {
		for _, it := range o.Items {
			want[it.FoodID] += it.Quantity
		}
	}
	for id, qty := range want {
		if got := in.FoodPopularity.Count(id); got != qty {
			t.Fatalf("popularity of %s: expected %d, got %d", id, qty, got)
		}
	}

	if got := in.UserPreferences["u1"].Count("f2"); got != 6 {
		t.Fatalf("expected u1 to have 6 of f2, got %d", got)
	}
	if !in.HasOrdered("u2", "f1") || in.HasOrdered("u2", "f2") {
		t.Fatalf("unexpected HasOrdered results for u2")
	}
}

func TestAggregateSkipsEmptyIdentifiers(t *testing.T) {
	orders := []domain.Order{
		order("", testNow, item("f1", 10)),
		order("u1", testNow, item("f1", 1)),
	}
	parking := []domain.ParkingReservation{
		reservation("", "11", domain.ParkingStatusReserved, testNow),
		reservation("u1", "", domain.ParkingStatusReserved, testNow),
		reservation("u1", "11", domain.ParkingStatusOccupied, testNow),
	}

	in := Aggregate(orders, parking)

	if got := in.FoodPopularity.Count("f1"); got != 1 {
		t.Fatalf("expected anonymous order skipped, popularity=%d", got)
	}
	if len(in.UserPreferences) != 1 {
		t.Fatalf("expected one user, got %d", len(in.UserPreferences))
	}
	if got := in.ParkingUsage["u1"].Count("11"); got != 1 {
		t.Fatalf("expected one usage of slot 11, got %d", got)
	}
	if in.ParkingUsage["u1"].Len() != 1 {
		t.Fatalf("expected empty slot skipped")
	}
}

func TestAggregateBuildsFreshValuesPerCall(t *testing.T) {
	first := Aggregate([]domain.Order{order("u1", testNow, item("f1", 3))}, nil)
	second := Aggregate([]domain.Order{order("u2", testNow, item("f2", 1))}, nil)

	if second.FoodPopularity.Has("f1") {
		t.Fatalf("second aggregate leaked counts from the first")
	}
	if first.FoodPopularity.Count("f1") != 3 {
		t.Fatalf("first aggregate was modified")
	}
	users := second.Users()
	if len(users) != 1 || users[0] != "u2" {
		t.Fatalf("expected users [u2], got %v", users)
	}
}
