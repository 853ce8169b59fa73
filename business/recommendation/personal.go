package recommendation

import (
	"sort"

	"smartCampusReco/domain"
)

const unknownFoodName = "Unknown"

// PersonalRecommendations scores the foods in the user's own history by
// quantity, recency weight and trend.
func PersonalRecommendations(
	orders []WeightedOrder,
	trends domain.Trends,
	catalog map[domain.ID]domain.Food,
	cfg Config,
) []domain.FoodRecommendation {
	if len(orders) == 0 {
		return []domain.FoodRecommendation{}
	}

	type scored struct {
		rec    domain.FoodRecommendation
		weight float64
	}

	byID := make(map[domain.ID]*scored)
	seen := make([]domain.ID, 0)

	for _, o := range orders {
		for _, item := range o.Items {
			entry, ok := byID[item.FoodID]
			if !ok {
				food, found := catalog[item.FoodID]
				if !found {
					continue
				}
				entry = &scored{rec: newFoodRecommendation(food, ReasonOrderHistory)}
				byID[item.FoodID] = entry
				seen = append(seen, item.FoodID)
			}

			entry.weight += float64(item.Quantity) * o.TimeWeight
			entry.rec.TotalOrders++
		}
	}

	out := make([]domain.FoodRecommendation, 0, len(seen))
	for _, id := range seen {
		entry := byID[id]
		trend := trends.FoodTrends[id]

		switch {
		case trend > cfg.TrendUpThreshold:
			entry.weight *= 1 + trend*cfg.TrendUpBoost
			entry.rec.Reason = ReasonTrendingUp
		case trend < cfg.TrendDownThreshold:
			entry.weight *= cfg.TrendDownFactor
			entry.rec.Reason = ReasonLessFrequent
		}

		w := entry.weight
		entry.rec.WeightedScore = &w
		out = append(out, entry.rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].WeightedScore > *out[j].WeightedScore
	})

	return topN(out, cfg.TopN)
}

func newFoodRecommendation(food domain.Food, reason string) domain.FoodRecommendation {
	name := food.Name
	if name == "" {
		name = unknownFoodName
	}
	return domain.FoodRecommendation{
		ID:     food.ID,
		Name:   name,
		Price:  food.Price,
		Reason: reason,
	}
}

func topN[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
