package recommendation

import (
	"math"
	"sort"

	"smartCampusReco/domain"
)

const mockCollaborativeFoodID domain.ID = "mock_food_3"

// mockCollaborative is the fixed suggestion served while running on mock data.
func mockCollaborative() []domain.FoodRecommendation {
	score := 2.0
	return []domain.FoodRecommendation{{
		ID:     mockCollaborativeFoodID,
		Name:   "Coca Cola",
		Price:  25,
		Score:  &score,
		Reason: ReasonSimilarUsers,
	}}
}

// CollaborativeRecommendations suggests foods ordered by the user's nearest
// neighbours. The result is empty unless the neighbour step is enabled.
func CollaborativeRecommendations(
	userID domain.ID,
	data domain.Dataset,
	in *Interactions,
	catalog map[domain.ID]domain.Food,
	cfg Config,
) []domain.FoodRecommendation {
	if data.Source == domain.SourceMock {
		return mockCollaborative()
	}
	if !cfg.Collaborative.NeighborsEnabled {
		return []domain.FoodRecommendation{}
	}

	target, ok := in.UserPreferences[userID]
	if !ok {
		return []domain.FoodRecommendation{}
	}

	neighbors := nearestNeighbors(userID, target, in, cfg.Collaborative.Neighbors)
	if len(neighbors) == 0 {
		return []domain.FoodRecommendation{}
	}

	isNeighbor := make(map[domain.ID]bool, len(neighbors))
	for _, n := range neighbors {
		isNeighbor[n.user] = true
	}

	byID := make(map[domain.ID]*domain.FoodRecommendation)
	seen := make([]domain.ID, 0)
	for _, o := range data.Orders {
		if !isNeighbor[o.UserID] {
			continue
		}
		for _, item := range o.Items {
			if target.Has(item.FoodID) {
				continue
			}
			rec, ok := byID[item.FoodID]
			if !ok {
				food, found := catalog[item.FoodID]
				if !found {
					continue
				}
				r := newFoodRecommendation(food, ReasonSimilarUsers)
				zero := 0.0
				r.Score = &zero
				rec = &r
				byID[item.FoodID] = rec
				seen = append(seen, item.FoodID)
			}
			*rec.Score++
		}
	}

	out := make([]domain.FoodRecommendation, 0, len(seen))
	for _, id := range seen {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].Score > *out[j].Score
	})

	return topN(out, cfg.TopN)
}

type neighbor struct {
	user       domain.ID
	similarity float64
}

// nearestNeighbors ranks the other users by cosine similarity of their
// food quantity vectors. Users with no overlap are dropped.
func nearestNeighbors(userID domain.ID, target *Tally[domain.ID], in *Interactions, k int) []neighbor {
	out := make([]neighbor, 0)
	for _, other := range in.Users() {
		if other == userID {
			continue
		}
		sim := cosineSimilarity(target, in.UserPreferences[other])
		if sim > 0 {
			out = append(out, neighbor{user: other, similarity: sim})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].similarity > out[j].similarity
	})

	return topN(out, k)
}

func cosineSimilarity(a, b *Tally[domain.ID]) float64 {
	var dot, normA, normB float64
	for _, key := range a.Keys() {
		va := float64(a.Count(key))
		normA += va * va
		dot += va * float64(b.Count(key))
	}
	for _, key := range b.Keys() {
		vb := float64(b.Count(key))
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
