package recommendation

import (
	"fmt"
	"sort"
	"strings"

	"smartCampusReco/domain"
)

// MergeFoodRecommendations combines the personal list with the popularity or
// collaborative list. The first entry for an id wins; a later collaborative
// entry for the same id is folded into it instead.
func MergeFoodRecommendations(lists [][]domain.FoodRecommendation, cfg Config) []domain.FoodRecommendation {
	merged := make([]domain.FoodRecommendation, 0)
	index := make(map[domain.ID]int)

	for _, list := range lists {
		for _, rec := range list {
			rec = cloneFood(rec)

			i, exists := index[rec.ID]
			if !exists {
				index[rec.ID] = len(merged)
				merged = append(merged, rec)
				continue
			}

			if !strings.Contains(rec.Reason, ReasonSimilarUsers) {
				continue
			}

			current := &merged[i]
			boosted := cfg.CollaborativeBoost * rec.RankScore()
			if current.WeightedScore != nil {
				boosted += *current.WeightedScore
			}
			current.WeightedScore = &boosted
			current.Reason = ReasonFavoriteAndSimilar
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RankScore() > merged[j].RankScore()
	})
	merged = topN(merged, cfg.TopN)

	for i := range merged {
		merged[i].Reason = finalReason(merged[i])
	}

	return merged
}

func finalReason(rec domain.FoodRecommendation) string {
	switch {
	case strings.Contains(rec.Reason, ReasonSimilarUsers):
		return ReasonSimilarStudents
	case rec.TotalOrders > 1:
		return fmt.Sprintf("Ordered %d times", rec.TotalOrders)
	default:
		return ReasonOrderHistory
	}
}

func cloneFood(rec domain.FoodRecommendation) domain.FoodRecommendation {
	if rec.WeightedScore != nil {
		v := *rec.WeightedScore
		rec.WeightedScore = &v
	}
	if rec.Score != nil {
		v := *rec.Score
		rec.Score = &v
	}
	return rec
}
