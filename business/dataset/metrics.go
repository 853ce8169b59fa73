package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MockFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_mock_fallback_total",
			Help: "Count of dataset loads served from mock data, by reason.",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(MockFallbackTotal)
}
