package domain

import "time"

const (
	AlgorithmRuleBased        = "rule_based"
	AlgorithmMLAdaptiveHybrid = "ml_adaptive_hybrid"
)

type FoodRecommendation struct {
	ID            ID       `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	WeightedScore *float64 `json:"weighted_score,omitempty"`
	Score         *float64 `json:"score,omitempty"`
	TotalOrders   int      `json:"total_orders,omitempty"`
	Reason        string   `json:"reason"`
}

// RankScore is the weighted score when present, else the plain score.
func (r FoodRecommendation) RankScore() float64 {
	if r.WeightedScore != nil {
		return *r.WeightedScore
	}
	if r.Score != nil {
		return *r.Score
	}
	return 0
}

type ParkingRecommendation struct {
	Slot   string `json:"slot"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

type Trends struct {
	FoodTrends        map[ID]float64     `json:"food_trends"`
	ParkingTrends     map[string]float64 `json:"parking_trends"`
	HasRecentActivity bool               `json:"has_recent_activity"`
	TrendPeriod       string             `json:"trend_period,omitempty"`
}

func EmptyTrends() Trends {
	return Trends{
		FoodTrends:    map[ID]float64{},
		ParkingTrends: map[string]float64{},
	}
}

type RecommendationResponse struct {
	Foods       []FoodRecommendation    `json:"foods"`
	Parking     []ParkingRecommendation `json:"parking"`
	LastUpdated time.Time               `json:"lastUpdated"`
	Algorithm   string                  `json:"algorithm"`
	Trends      Trends                  `json:"trends"`
	Cached      bool                    `json:"cached,omitempty"`
	CacheAge    int64                   `json:"cacheAge,omitempty"`
}

type TrainSummary struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Algorithm   string `json:"algorithm"`
	OrdersCount int    `json:"orders_count"`
	UsersCount  int    `json:"users_count"`
	FoodsCount  int    `json:"foods_count"`
}

type HealthStatus struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	MongoDB         string `json:"mongodb"`
	RealTimeUpdates bool   `json:"real_time_updates"`
}

const (
	StoreConnected    = "connected"
	StoreDisconnected = "disconnected"
)
