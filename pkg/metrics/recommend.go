package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Latency of HTTP handlers by route
	RequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reco_http_request_latency_seconds",
		Help:    "Latency of recommendation service handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Total number of HTTP requests by route and status code
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_http_requests_total",
		Help: "Total number of requests handled by the recommendation service",
	}, []string{"method", "route", "status"})

	// Recommendations served, by algorithm
	RecommendTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_recommend_total",
		Help: "Total recommendation responses returned over HTTP",
	}, []string{"algorithm"})

	initOnce sync.Once
)

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestLatency,
			RequestsTotal,
			RecommendTotal,
		)
	})
}
