package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"smartCampusReco/domain"
)

type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

// key format: "rec:{user_id}"
func cacheKey(userID domain.ID) string {
	return fmt.Sprintf("rec:%s", userID)
}

// Get returns the cached response for a user. A miss is not an error.
func (r *RecommendationCache) Get(ctx context.Context, userID domain.ID) (domain.RecommendationResponse, bool, error) {
	val, err := r.client.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.RecommendationResponse{}, false, nil
		}
		return domain.RecommendationResponse{}, false, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var resp domain.RecommendationResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return domain.RecommendationResponse{}, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return resp, true, nil
}

func (r *RecommendationCache) Set(ctx context.Context, userID domain.ID, resp domain.RecommendationResponse) error {
	// never persist the per-read cache markers
	resp.Cached = false
	resp.CacheAge = 0

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(ctx, cacheKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}

func (r *RecommendationCache) Delete(ctx context.Context, userID domain.ID) error {
	if err := r.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached recommendations: %w", err)
	}
	return nil
}
