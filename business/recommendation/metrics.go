package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of computed recommendation responses by algorithm, data source and cache hit.",
		},
		[]string{"algorithm", "source", "cached"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal)
}
