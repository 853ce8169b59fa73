package database

import (
	"context"
	"fmt"
	"time"

	"smartCampusReco/pkg/config"
	"smartCampusReco/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// InitMongo connects and pings the primary. The returned client is usable
// even if the first ping failed: the driver keeps reconnecting, and the
// dataset loader falls back to mock data until it succeeds.
func InitMongo(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	log := logger.Named("mongodb")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(cfg.Store.Timeout).
		SetConnectTimeout(cfg.Store.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Warn("MongoDB not reachable, serving mock data until it is", zap.Error(err))
		return client, db, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("Connected to MongoDB", zap.String("database", cfg.Mongo.Database))
	return client, db, nil
}

func CloseMongo(client *mongo.Client) error {
	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return client.Disconnect(ctx)
}
