//go:build !integration

package recommendation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"smartCampusReco/domain"
)

type fakeLoader struct {
	data   domain.Dataset
	err    error
	status string
	calls  int
}

func (f *fakeLoader) Load(ctx context.Context) (domain.Dataset, error) {
	f.calls++
	return f.data, f.err
}

func (f *fakeLoader) StoreStatus(ctx context.Context) string {
	return f.status
}

type fakeCache struct {
	entries map[domain.ID]domain.RecommendationResponse
	getErr  error
	setErr  error
	deleted []domain.ID
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[domain.ID]domain.RecommendationResponse)}
}

func (c *fakeCache) Get(ctx context.Context, userID domain.ID) (domain.RecommendationResponse, bool, error) {
	if c.getErr != nil {
		return domain.RecommendationResponse{}, false, c.getErr
	}
	resp, ok := c.entries[userID]
	return resp, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, userID domain.ID, resp domain.RecommendationResponse) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[userID] = resp
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, userID domain.ID) error {
	c.deleted = append(c.deleted, userID)
	delete(c.entries, userID)
	return nil
}

func newTestService(t *testing.T, loader DatasetLoader, opts ...ServiceOption) *RecommendationService {
	t.Helper()
	return NewRecommendationService(loader, newTestEngine(t, domain.AlgorithmRuleBased, DefaultConfig()), opts...)
}

func TestServiceRecommend(t *testing.T) {
	loader := &fakeLoader{data: engineDataset(), status: domain.StoreConnected}
	svc := newTestService(t, loader)

	counter := RecommendationsServedTotal.WithLabelValues(domain.AlgorithmRuleBased, string(domain.SourceStore), "false")
	before := testutil.ToFloat64(counter)

	resp, err := svc.Recommend(WithTraceID(context.Background(), "trace-1"), " u1 ")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Foods) == 0 || resp.Cached {
		t.Fatalf("unexpected response %+v", resp)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("expected counter to increase by 1, got %v", got)
	}
}

func TestServiceRecommendErrors(t *testing.T) {
	t.Run("empty user", func(t *testing.T) {
		svc := newTestService(t, &fakeLoader{})
		if _, err := svc.Recommend(context.Background(), "  "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("loader failure", func(t *testing.T) {
		boom := errors.New("boom")
		svc := newTestService(t, &fakeLoader{err: boom})
		if _, err := svc.Recommend(context.Background(), "u1"); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped loader error, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		loader := &fakeLoader{}
		svc := newTestService(t, loader)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := svc.Recommend(ctx, "u1"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if loader.calls != 0 {
			t.Fatalf("loader should not be called")
		}
	})
}

func TestServiceRecommendUsesCache(t *testing.T) {
	loader := &fakeLoader{data: engineDataset()}
	cache := newFakeCache()
	svc := newTestService(t, loader, WithCache(cache))

	first, err := svc.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("first Recommend: %v", err)
	}

	// make the cached entry look older
	stored := cache.entries["u1"]
	stored.LastUpdated = time.Now().Add(-2 * time.Minute)
	cache.entries["u1"] = stored

	second, err := svc.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second Recommend: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected one load, got %d", loader.calls)
	}
	if !second.Cached || second.CacheAge < (2*time.Minute).Milliseconds() {
		t.Fatalf("expected cached response with age, got cached=%v age=%d", second.Cached, second.CacheAge)
	}
	if len(second.Foods) != len(first.Foods) {
		t.Fatalf("cached foods differ from computed ones")
	}

	if err := svc.InvalidateCache(context.Background(), "u1"); err != nil {
		t.Fatalf("InvalidateCache: %v", err)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "u1" {
		t.Fatalf("expected u1 deleted, got %v", cache.deleted)
	}

	if _, err := svc.Recommend(context.Background(), "u1"); err != nil {
		t.Fatalf("third Recommend: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected reload after invalidation, got %d loads", loader.calls)
	}
}

func TestServiceRecommendIgnoresCacheFailures(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := newTestService(t, &fakeLoader{data: engineDataset()}, WithCache(cache))

	resp, err := svc.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("cache errors must not fail the request: %v", err)
	}
	if resp.Cached {
		t.Fatalf("response should not be marked cached")
	}
}

func TestServiceTrainAndHealth(t *testing.T) {
	loader := &fakeLoader{data: engineDataset(), status: domain.StoreDisconnected}
	svc := newTestService(t, loader, WithServiceName("reco"))

	summary, err := svc.Train(context.Background())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if summary.OrdersCount != 4 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	health := svc.Health(context.Background())
	want := domain.HealthStatus{Status: "healthy", Service: "reco", MongoDB: domain.StoreDisconnected}
	if health != want {
		t.Fatalf("expected %+v, got %+v", want, health)
	}

	loader.status = domain.StoreConnected
	if !svc.Health(context.Background()).RealTimeUpdates {
		t.Fatalf("expected real-time updates when the store is connected")
	}

	loader.err = errors.New("boom")
	if _, err := svc.Train(context.Background()); err == nil {
		t.Fatalf("expected Train to fail when loading fails")
	}
}

func TestServiceInvalidateWithoutCache(t *testing.T) {
	svc := newTestService(t, &fakeLoader{})
	if err := svc.InvalidateCache(context.Background(), "u1"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if err := svc.InvalidateCache(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}
