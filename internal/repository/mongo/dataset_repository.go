package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/errgroup"

	"smartCampusReco/domain"
)

const (
	OrdersCollection  = "orders"
	UsersCollection   = "users"
	FoodsCollection   = "foods"
	ParkingCollection = "parking"
)

type DatasetRepository struct {
	DB *mongo.Database
}

func NewDatasetRepository(db *mongo.Database) *DatasetRepository {
	return &DatasetRepository{
		DB: db,
	}
}

// LoadDataset reads the four collections concurrently. Any failed read
// fails the whole load.
func (r *DatasetRepository) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("context error: %w", err)
	}

	var (
		orders  []orderDocument
		users   []userDocument
		foods   []foodDocument
		parking []parkingDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return findAll(gctx, r.DB.Collection(OrdersCollection), &orders) })
	g.Go(func() error { return findAll(gctx, r.DB.Collection(UsersCollection), &users) })
	g.Go(func() error { return findAll(gctx, r.DB.Collection(FoodsCollection), &foods) })
	g.Go(func() error { return findAll(gctx, r.DB.Collection(ParkingCollection), &parking) })

	if err := g.Wait(); err != nil {
		return domain.Dataset{}, err
	}

	return toDataset(orders, users, foods, parking), nil
}

func (r *DatasetRepository) Ping(ctx context.Context) error {
	return r.DB.Client().Ping(ctx, readpref.Primary())
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, out *[]T) error {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return nil
}

func toDataset(orders []orderDocument, users []userDocument, foods []foodDocument, parking []parkingDocument) domain.Dataset {
	data := domain.Dataset{
		Orders:  make([]domain.Order, 0, len(orders)),
		Users:   make([]domain.User, 0, len(users)),
		Foods:   make([]domain.Food, 0, len(foods)),
		Parking: make([]domain.ParkingReservation, 0, len(parking)),
		Source:  domain.SourceStore,
	}

	for _, d := range orders {
		data.Orders = append(data.Orders, d.toDomain())
	}
	for _, d := range users {
		data.Users = append(data.Users, d.toDomain())
	}
	for _, d := range foods {
		data.Foods = append(data.Foods, d.toDomain())
	}
	for _, d := range parking {
		data.Parking = append(data.Parking, d.toDomain())
	}

	return data
}
