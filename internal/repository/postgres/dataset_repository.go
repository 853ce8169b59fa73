package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"smartCampusReco/domain"
)

type OrderRow struct {
	ID        string         `gorm:"column:id;primaryKey"`
	UserID    string         `gorm:"column:user_id;index"`
	Items     datatypes.JSON `gorm:"column:items;type:jsonb"`
	OrderedAt *time.Time     `gorm:"column:ordered_at"`
	Status    string         `gorm:"column:status"`
}

func (OrderRow) TableName() string { return "orders" }

type UserRow struct {
	ID    string `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
	Role  string `gorm:"column:role"`
}

func (UserRow) TableName() string { return "users" }

type FoodRow struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name"`
	Price     float64 `gorm:"column:price"`
	Category  string  `gorm:"column:category"`
	Available bool    `gorm:"column:available;default:true"`
}

func (FoodRow) TableName() string { return "foods" }

type ParkingRow struct {
	ID         string     `gorm:"column:id;primaryKey"`
	Slot       string     `gorm:"column:slot"`
	UserID     string     `gorm:"column:user_id;index"`
	Status     string     `gorm:"column:status"`
	ReservedAt *time.Time `gorm:"column:reserved_at"`
	OccupiedAt *time.Time `gorm:"column:occupied_at"`
}

func (ParkingRow) TableName() string { return "parking_reservations" }

// orderItemJSON is one element of the orders.items jsonb array.
type orderItemJSON struct {
	Food     any  `json:"food"`
	Quantity *int `json:"quantity"`
}

type DatasetRepository struct {
	DB *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{
		DB: db,
	}
}

func (r *DatasetRepository) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("context error: %w", err)
	}

	var (
		orders  []OrderRow
		users   []UserRow
		foods   []FoodRow
		parking []ParkingRow
	)

	db := r.DB.WithContext(ctx)
	if err := db.Find(&orders).Error; err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to query orders: %w", err)
	}
	if err := db.Find(&users).Error; err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to query users: %w", err)
	}
	if err := db.Find(&foods).Error; err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to query foods: %w", err)
	}
	if err := db.Find(&parking).Error; err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to query parking_reservations: %w", err)
	}

	return toDataset(orders, users, foods, parking)
}

func (r *DatasetRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates the tables read by LoadDataset.
func (r *DatasetRepository) AutoMigrate() error {
	return r.DB.AutoMigrate(&OrderRow{}, &UserRow{}, &FoodRow{}, &ParkingRow{})
}

func toDataset(orders []OrderRow, users []UserRow, foods []FoodRow, parking []ParkingRow) (domain.Dataset, error) {
	data := domain.Dataset{
		Orders:  make([]domain.Order, 0, len(orders)),
		Users:   make([]domain.User, 0, len(users)),
		Foods:   make([]domain.Food, 0, len(foods)),
		Parking: make([]domain.ParkingReservation, 0, len(parking)),
		Source:  domain.SourceStore,
	}

	for _, row := range orders {
		order, err := row.toDomain()
		if err != nil {
			return domain.Dataset{}, err
		}
		data.Orders = append(data.Orders, order)
	}
	for _, row := range users {
		data.Users = append(data.Users, domain.User{
			ID: domain.NewID(row.ID), Name: row.Name, Email: row.Email, Role: row.Role,
		})
	}
	for _, row := range foods {
		data.Foods = append(data.Foods, domain.Food{
			ID: domain.NewID(row.ID), Name: row.Name, Price: row.Price,
			Category: row.Category, Available: row.Available,
		})
	}
	for _, row := range parking {
		data.Parking = append(data.Parking, domain.ParkingReservation{
			ID:         domain.NewID(row.ID),
			Slot:       row.Slot,
			UserID:     domain.NewID(row.UserID),
			Status:     row.Status,
			ReservedAt: timestampOf(row.ReservedAt),
			OccupiedAt: timestampOf(row.OccupiedAt),
		})
	}

	return data, nil
}

func (row OrderRow) toDomain() (domain.Order, error) {
	var raw []orderItemJSON
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &raw); err != nil {
			return domain.Order{}, fmt.Errorf("failed to decode items of order %s: %w", row.ID, err)
		}
	}

	items := make([]domain.OrderItem, 0, len(raw))
	for _, it := range raw {
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		items = append(items, domain.OrderItem{FoodID: domain.NewID(it.Food), Quantity: qty})
	}

	return domain.Order{
		ID:        domain.NewID(row.ID),
		UserID:    domain.NewID(row.UserID),
		Items:     items,
		OrderedAt: timestampOf(row.OrderedAt),
		Status:    row.Status,
	}, nil
}

func timestampOf(t *time.Time) domain.Timestamp {
	if t == nil {
		return domain.Timestamp{}
	}
	return domain.TimestampOf(*t)
}
