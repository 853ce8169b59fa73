package recommendation

import "smartCampusReco/domain"

// PopularRecommendations ranks foods by global order volume, leaving out
// anything the user has already ordered.
func PopularRecommendations(
	userID domain.ID,
	in *Interactions,
	catalog map[domain.ID]domain.Food,
	cfg Config,
) []domain.FoodRecommendation {
	out := make([]domain.FoodRecommendation, 0, cfg.TopN)

	for _, entry := range in.FoodPopularity.MostCommon() {
		if len(out) >= cfg.TopN {
			break
		}
		if in.HasOrdered(userID, entry.Key) {
			continue
		}
		food, ok := catalog[entry.Key]
		if !ok {
			continue
		}

		rec := newFoodRecommendation(food, ReasonPopularStudents)
		score := float64(entry.Count)
		rec.Score = &score
		out = append(out, rec)
	}

	return out
}
