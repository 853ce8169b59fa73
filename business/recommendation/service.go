package recommendation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartCampusReco/domain"
	"smartCampusReco/pkg/logger"
)

// ---- Repository interfaces ----

type DatasetLoader interface {
	Load(ctx context.Context) (domain.Dataset, error)
	StoreStatus(ctx context.Context) string
}

// RecommendationCache stores finished responses per user. Get reports a
// miss with found == false and a nil error.
type RecommendationCache interface {
	Get(ctx context.Context, userID domain.ID) (resp domain.RecommendationResponse, found bool, err error)
	Set(ctx context.Context, userID domain.ID, resp domain.RecommendationResponse) error
	Delete(ctx context.Context, userID domain.ID) error
}

var ErrInvalidUserID = errors.New("user id is required")

// ---- Usecase / Service ----

type RecommendationService struct {
	loader      DatasetLoader
	cache       RecommendationCache
	engine      *Engine
	serviceName string
}

type ServiceOption func(*RecommendationService)

// WithCache enables response caching. A nil cache leaves caching off.
func WithCache(cache RecommendationCache) ServiceOption {
	return func(s *RecommendationService) {
		s.cache = cache
	}
}

func WithServiceName(name string) ServiceOption {
	return func(s *RecommendationService) {
		s.serviceName = name
	}
}

func NewRecommendationService(loader DatasetLoader, engine *Engine, opts ...ServiceOption) *RecommendationService {
	s := &RecommendationService{
		loader:      loader,
		engine:      engine,
		serviceName: "ml_recommendation_engine",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RecommendationService) Recommend(ctx context.Context, userID domain.ID) (domain.RecommendationResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResponse{}, fmt.Errorf("context error: %w", err)
	}
	userID = domain.ID(strings.TrimSpace(userID.String()))
	if userID.IsZero() {
		return domain.RecommendationResponse{}, ErrInvalidUserID
	}

	traceID := TraceIDFromContext(ctx)

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, userID)
		switch {
		case err != nil:
			logger.Warn("recommendation cache read failed", err, "user_id", userID.String(), "trace_id", traceID)
		case found:
			cached.Cached = true
			cached.CacheAge = time.Since(cached.LastUpdated).Milliseconds()
			RecommendationsServedTotal.WithLabelValues(cached.Algorithm, "cache", "true").Inc()
			logger.Debug("recommendations served from cache", "user_id", userID.String(), "trace_id", traceID)
			return cached, nil
		}
	}

	data, err := s.loader.Load(ctx)
	if err != nil {
		logger.Error("failed to load recommendation data", err, "trace_id", traceID)
		return domain.RecommendationResponse{}, fmt.Errorf("load dataset: %w", err)
	}

	resp := s.engine.Recommend(data, userID)
	RecommendationsServedTotal.WithLabelValues(resp.Algorithm, string(data.Source), "false").Inc()

	logger.Info("recommendations generated",
		"user_id", userID.String(),
		"algorithm", resp.Algorithm,
		"source", string(data.Source),
		"foods", len(resp.Foods),
		"parking", len(resp.Parking),
		"trace_id", traceID,
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, resp); err != nil {
			logger.Warn("recommendation cache write failed", err, "user_id", userID.String(), "trace_id", traceID)
		}
	}

	return resp, nil
}

// Train re-runs the aggregation over the current data and reports its size.
func (s *RecommendationService) Train(ctx context.Context) (domain.TrainSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.TrainSummary{}, fmt.Errorf("context error: %w", err)
	}

	data, err := s.loader.Load(ctx)
	if err != nil {
		logger.Error("failed to load training data", err, "trace_id", TraceIDFromContext(ctx))
		return domain.TrainSummary{}, fmt.Errorf("load dataset: %w", err)
	}

	summary := s.engine.Summarize(data)
	logger.Info("model trained",
		"algorithm", summary.Algorithm,
		"orders", summary.OrdersCount,
		"users", summary.UsersCount,
		"foods", summary.FoodsCount,
	)
	return summary, nil
}

// Health pings the store on every call; real-time updates follow the store status.
func (s *RecommendationService) Health(ctx context.Context) domain.HealthStatus {
	status := s.loader.StoreStatus(ctx)
	return domain.HealthStatus{
		Status:          "healthy",
		Service:         s.serviceName,
		MongoDB:         status,
		RealTimeUpdates: status == domain.StoreConnected,
	}
}

// InvalidateCache drops the cached response for a user. Without a cache it is a no-op.
func (s *RecommendationService) InvalidateCache(ctx context.Context, userID domain.ID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if userID.IsZero() {
		return ErrInvalidUserID
	}
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, userID); err != nil {
		return fmt.Errorf("invalidate cache for %s: %w", userID, err)
	}
	logger.Info("recommendation cache cleared", "user_id", userID.String())
	return nil
}
