package bootstrap

import (
	"fmt"

	"smartCampusReco/business/dataset"
	"smartCampusReco/business/recommendation"
	mongoRepo "smartCampusReco/internal/repository/mongo"
	psqlRepo "smartCampusReco/internal/repository/postgres"
	redisRepo "smartCampusReco/internal/repository/redis"
	"smartCampusReco/pkg/config"
	"smartCampusReco/pkg/database"
	redisdb "smartCampusReco/pkg/database/redis"
	"smartCampusReco/pkg/logger"
)

// RecommendationService wires store, cache and engine from cfg. The
// returned cleanup closes every connection that was opened.
func RecommendationService(cfg *config.Config) (*recommendation.RecommendationService, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	repo, closeStore := openStore(cfg)
	closers = append(closers, closeStore)

	loader := dataset.NewLoader(repo, dataset.Options{
		Timeout:          cfg.Store.Timeout,
		FailureThreshold: cfg.Breaker.Failures,
		Cooldown:         cfg.Breaker.Cooldown,
	})

	recoCfg, err := recommendation.LoadConfigFile(cfg.Recommendation.ConfigFile)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load recommendation config: %w", err)
	}

	engine, err := recommendation.NewEngine(recoCfg, cfg.Recommendation.Algorithm, nil)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("init recommendation engine: %w", err)
	}

	opts := []recommendation.ServiceOption{recommendation.WithServiceName(cfg.App.Name)}
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, caching disabled", "error", err)
		} else {
			closers = append(closers, func() { _ = redisdb.CloseRedisClient(client) })
			opts = append(opts, recommendation.WithCache(redisRepo.NewRecommendationCache(client, cfg.Redis.CacheTTL)))
			logger.Info("Recommendation cache enabled", "ttl", cfg.Redis.CacheTTL.String())
		}
	}

	return recommendation.NewRecommendationService(loader, engine, opts...), cleanup, nil
}

// openStore connects the configured store. A store that cannot be reached
// at startup is not fatal: with Mongo the driver keeps retrying behind the
// loader's breaker, with Postgres the service runs on mock data.
func openStore(cfg *config.Config) (dataset.Repository, func()) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Error("Failed to connect to postgres, using mock data", "error", err)
			return nil, func() {}
		}
		logger.Info("Database connected successfully", "driver", cfg.Store.Driver)
		return psqlRepo.NewDatasetRepository(db), func() {
			if err := database.ClosePostgres(db); err != nil {
				logger.Error("Failed to close postgres", "error", err)
			}
		}
	default:
		client, db, err := database.InitMongo(cfg)
		if client == nil {
			logger.Error("Failed to connect to MongoDB, using mock data", "error", err)
			return nil, func() {}
		}
		return mongoRepo.NewDatasetRepository(db), func() {
			if err := database.CloseMongo(client); err != nil {
				logger.Error("Failed to close MongoDB", "error", err)
			}
		}
	}
}
