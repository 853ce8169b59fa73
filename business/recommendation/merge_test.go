//go:build !integration

package recommendation

import (
	"testing"

	"smartCampusReco/domain"
)

func TestMergeFoldsCollaborativeScoreIntoPersonal(t *testing.T) {
	personal := []domain.FoodRecommendation{{
		ID: "f1", Name: "Food f1", WeightedScore: floatPtr(4), TotalOrders: 2, Reason: ReasonOrderHistory,
	}}
	collaborative := []domain.FoodRecommendation{{
		ID: "f1", Name: "Food f1", Score: floatPtr(2), Reason: ReasonSimilarUsers,
	}}

	merged := MergeFoodRecommendations([][]domain.FoodRecommendation{personal, collaborative}, DefaultConfig())

	if len(merged) != 1 {
		t.Fatalf("expected a single merged entry, got %+v", merged)
	}
	assertClose(t, "weighted score", *merged[0].WeightedScore, 5)
	if merged[0].Reason != "Ordered 2 times" {
		t.Fatalf("expected final reason from total orders, got %q", merged[0].Reason)
	}
	if *personal[0].WeightedScore != 4 {
		t.Fatalf("merge modified its input")
	}
}

func TestMergeFirstSeenWins(t *testing.T) {
	personal := []domain.FoodRecommendation{{
		ID: "f1", WeightedScore: floatPtr(1), TotalOrders: 1, Reason: ReasonOrderHistory,
	}}
	popular := []domain.FoodRecommendation{{
		ID: "f1", Score: floatPtr(50), Reason: ReasonPopularStudents,
	}}

	merged := MergeFoodRecommendations([][]domain.FoodRecommendation{personal, popular}, DefaultConfig())

	if len(merged) != 1 || *merged[0].WeightedScore != 1 || merged[0].Score != nil {
		t.Fatalf("expected the personal entry untouched, got %+v", merged)
	}
}

func TestMergeSortsAndRewritesReasons(t *testing.T) {
	personal := []domain.FoodRecommendation{
		{ID: "f1", WeightedScore: floatPtr(0.5), TotalOrders: 1, Reason: ReasonTrendingUp},
		{ID: "f2", WeightedScore: floatPtr(3), TotalOrders: 4, Reason: ReasonLessFrequent},
	}
	others := []domain.FoodRecommendation{
		{ID: "f3", Score: floatPtr(2), Reason: ReasonSimilarUsers},
		{ID: "f4", Score: floatPtr(1), Reason: ReasonPopularStudents},
	}

	merged := MergeFoodRecommendations([][]domain.FoodRecommendation{personal, others}, DefaultConfig())

	assertIDs(t, merged, "f2", "f3", "f4")
	want := []string{"Ordered 4 times", ReasonSimilarStudents, ReasonOrderHistory}
	for i, reason := range want {
		if merged[i].Reason != reason {
			t.Fatalf("entry %d: expected reason %q, got %q", i, reason, merged[i].Reason)
		}
	}
}

func TestMergeNeverReturnsDuplicatesOrMoreThanTopN(t *testing.T) {
	var list []domain.FoodRecommendation
	for _, id := range []string{"a", "b", "a", "c", "d", "b", "e"} {
		list = append(list, domain.FoodRecommendation{ID: domain.ID(id), Score: floatPtr(1)})
	}

	merged := MergeFoodRecommendations([][]domain.FoodRecommendation{list, list}, DefaultConfig())

	if len(merged) > 3 {
		t.Fatalf("expected at most 3 entries, got %d", len(merged))
	}
	seen := map[domain.ID]bool{}
	for _, r := range merged {
		if seen[r.ID] {
			t.Fatalf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}
