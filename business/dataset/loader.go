package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"smartCampusReco/business/recommendation"
	"smartCampusReco/domain"
	"smartCampusReco/pkg/logger"
)

var ErrStoreUnavailable = errors.New("data store unavailable")

const (
	fallbackNoStore     = "no_store"
	fallbackStoreError  = "store_error"
	fallbackBreakerOpen = "breaker_open"
)

// Repository reads the full data set from a backing store.
type Repository interface {
	LoadDataset(ctx context.Context) (domain.Dataset, error)
	Ping(ctx context.Context) error
}

type Options struct {
	Timeout          time.Duration
	FailureThreshold uint32
	Cooldown         time.Duration
	Clock            func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Timeout:          10 * time.Second,
		FailureThreshold: 3,
		Cooldown:         30 * time.Second,
		Clock:            time.Now,
	}
}

// Loader serves the store's data set, or the mock data set whenever the
// store cannot be reached. It never returns ErrStoreUnavailable to callers;
// the error only marks the fallback path.
type Loader struct {
	repo    Repository
	breaker *gobreaker.CircuitBreaker[domain.Dataset]
	opts    Options
}

// NewLoader wraps repo. A nil repo means the service runs on mock data only.
func NewLoader(repo Repository, opts Options) *Loader {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	if opts.FailureThreshold == 0 {
		opts.FailureThreshold = DefaultOptions().FailureThreshold
	}

	l := &Loader{repo: repo, opts: opts}
	l.breaker = gobreaker.NewCircuitBreaker[domain.Dataset](gobreaker.Settings{
		Name:        "dataset-store",
		MaxRequests: 1,
		Timeout:     opts.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit breaker changed state",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return l
}

func (l *Loader) Load(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("context error: %w", err)
	}

	if l.repo == nil {
		MockFallbackTotal.WithLabelValues(fallbackNoStore).Inc()
		return MockDataset(l.opts.Clock()), nil
	}

	data, err := l.breaker.Execute(func() (domain.Dataset, error) {
		tctx, cancel := context.WithTimeout(ctx, l.opts.Timeout)
		defer cancel()

		d, err := l.repo.LoadDataset(tctx)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return d, nil
	})
	if err != nil {
		// a cancelled request is not a store failure
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Dataset{}, fmt.Errorf("context error: %w", ctxErr)
		}

		reason := fallbackStoreError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			reason = fallbackBreakerOpen
		}
		MockFallbackTotal.WithLabelValues(reason).Inc()
		logger.Warn("falling back to mock data", err, "reason", reason, "trace_id", recommendation.TraceIDFromContext(ctx))
		return MockDataset(l.opts.Clock()), nil
	}

	data.Source = domain.SourceStore
	return data, nil
}

// StoreStatus pings the store and reports it as connected or disconnected.
func (l *Loader) StoreStatus(ctx context.Context) string {
	if l.repo == nil {
		return domain.StoreDisconnected
	}

	tctx, cancel := context.WithTimeout(ctx, l.opts.Timeout)
	defer cancel()

	if err := l.repo.Ping(tctx); err != nil {
		logger.Debug("store ping failed", err)
		return domain.StoreDisconnected
	}
	return domain.StoreConnected
}

func (l *Loader) BreakerState() string {
	return l.breaker.State().String()
}
