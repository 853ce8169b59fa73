package recommendation

import (
	"fmt"
	"time"

	"smartCampusReco/domain"
)

// Engine runs the scoring pipeline over one Dataset. It keeps no state
// between calls, so one Engine can serve concurrent requests.
type Engine struct {
	cfg       Config
	algorithm string
	now       func() time.Time
}

func NewEngine(cfg Config, algorithm string, clock func() time.Time) (*Engine, error) {
	switch algorithm {
	case "":
		algorithm = domain.AlgorithmRuleBased
	case domain.AlgorithmRuleBased, domain.AlgorithmMLAdaptiveHybrid:
	default:
		return nil, fmt.Errorf("unknown recommendation algorithm %q", algorithm)
	}
	if clock == nil {
		clock = time.Now
	}
	return &Engine{cfg: cfg, algorithm: algorithm, now: clock}, nil
}

func (e *Engine) Algorithm() string {
	return e.algorithm
}

func (e *Engine) Recommend(data domain.Dataset, userID domain.ID) domain.RecommendationResponse {
	now := e.now()

	interactions := Aggregate(data.Orders, data.Parking)
	catalog := data.FoodCatalog()
	userParking := data.ParkingOf(userID)

	orders := WeightOrders(data.OrdersOf(userID), now, e.cfg.DecayDays)
	trends := AnalyzeTrends(orders, userParking, now, e.cfg)
	personal := PersonalRecommendations(orders, trends, catalog, e.cfg)

	var others []domain.FoodRecommendation
	if e.algorithm == domain.AlgorithmMLAdaptiveHybrid {
		others = CollaborativeRecommendations(userID, data, interactions, catalog, e.cfg)
	} else {
		others = PopularRecommendations(userID, interactions, catalog, e.cfg)
	}

	return domain.RecommendationResponse{
		Foods:       MergeFoodRecommendations([][]domain.FoodRecommendation{personal, others}, e.cfg),
		Parking:     ParkingRecommendations(userParking, e.cfg),
		LastUpdated: now,
		Algorithm:   e.algorithm,
		Trends:      trends,
	}
}

// Summarize aggregates the whole data set and reports its size.
func (e *Engine) Summarize(data domain.Dataset) domain.TrainSummary {
	interactions := Aggregate(data.Orders, data.Parking)

	return domain.TrainSummary{
		Status:      "success",
		Message:     fmt.Sprintf("%s model refreshed from %s data", e.algorithm, data.Source),
		Algorithm:   e.algorithm,
		OrdersCount: len(data.Orders),
		UsersCount:  len(interactions.UserPreferences),
		FoodsCount:  interactions.FoodPopularity.Len(),
	}
}
