//go:build !integration

package recommendation

import (
	"math"
	"testing"

	"smartCampusReco/domain"
)

func TestPersonalRecommendationsTrendAdjustment(t *testing.T) {
	cfg := DefaultConfig()
	orders := WeightOrders([]domain.Order{
		order("u1", testNow, item("f1", 2)),
		order("u1", daysAgo(10), item("f1", 1), item("f2", 1)),
	}, testNow, cfg.DecayDays)
	trends := AnalyzeTrends(orders, nil, testNow, cfg)

	recs := PersonalRecommendations(orders, trends, catalogOf("f1", "f2"), cfg)

	assertIDs(t, recs, "f1", "f2")

	w10 := math.Exp(-10.0 / 30)
	assertClose(t, "f1 score", *recs[0].WeightedScore, (2+w10)*1.3)
	if recs[0].Reason != ReasonTrendingUp || recs[0].TotalOrders != 2 {
		t.Fatalf("unexpected f1 entry: %+v", recs[0])
	}

	assertClose(t, "f2 score", *recs[1].WeightedScore, w10*0.7)
	if recs[1].Reason != ReasonLessFrequent || recs[1].TotalOrders != 1 {
		t.Fatalf("unexpected f2 entry: %+v", recs[1])
	}
}

func TestPersonalRecommendationsSkipsUnknownFoodsAndTruncates(t *testing.T) {
	cfg := DefaultConfig()
	orders := WeightOrders([]domain.Order{
		order("u1", daysAgo(60), item("f1", 1), item("ghost", 9), item("f2", 1), item("f3", 1), item("f4", 1)),
	}, testNow, cfg.DecayDays)

	recs := PersonalRecommendations(orders, domain.EmptyTrends(), catalogOf("f1", "f2", "f3", "f4"), cfg)

	// equal scores keep first appearance order
	assertIDs(t, recs, "f1", "f2", "f3")
	for _, r := range recs {
		if r.Reason != ReasonOrderHistory {
			t.Fatalf("expected default reason, got %q", r.Reason)
		}
	}
}

func TestPersonalRecommendationsUnknownName(t *testing.T) {
	cfg := DefaultConfig()
	orders := WeightOrders([]domain.Order{order("u1", daysAgo(60), item("f1", 1))}, testNow, cfg.DecayDays)
	catalog := map[domain.ID]domain.Food{"f1": {ID: "f1", Price: 5}}

	recs := PersonalRecommendations(orders, domain.EmptyTrends(), catalog, cfg)
	if len(recs) != 1 || recs[0].Name != "Unknown" {
		t.Fatalf("expected one Unknown entry, got %+v", recs)
	}
}

func TestPersonalRecommendationsEmpty(t *testing.T) {
	recs := PersonalRecommendations(nil, domain.EmptyTrends(), catalogOf("f1"), DefaultConfig())
	if recs == nil || len(recs) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", recs)
	}
}
