package mongo

import "smartCampusReco/domain"

type orderItemDocument struct {
	Food     domain.ID `bson:"food"`
	Quantity *int      `bson:"quantity"`
}

type orderDocument struct {
	ID        domain.ID           `bson:"_id"`
	User      domain.ID           `bson:"user"`
	Items     []orderItemDocument `bson:"items"`
	OrderedAt domain.Timestamp    `bson:"orderedAt"`
	Status    string              `bson:"status"`
}

type userDocument struct {
	ID    domain.ID `bson:"_id"`
	Name  string    `bson:"name"`
	Email string    `bson:"email"`
	Role  string    `bson:"role"`
}

type foodDocument struct {
	ID        domain.ID `bson:"_id"`
	Name      string    `bson:"name"`
	Price     float64   `bson:"price"`
	Category  string    `bson:"category"`
	Available *bool     `bson:"available"`
}

type parkingDocument struct {
	ID         domain.ID        `bson:"_id"`
	Slot       string           `bson:"slot"`
	User       domain.ID        `bson:"user"`
	Status     string           `bson:"status"`
	ReservedAt domain.Timestamp `bson:"reservedAt"`
	OccupiedAt domain.Timestamp `bson:"occupiedAt"`
}

func (d orderDocument) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		items = append(items, domain.OrderItem{FoodID: it.Food, Quantity: qty})
	}

	return domain.Order{
		ID:        d.ID,
		UserID:    d.User,
		Items:     items,
		OrderedAt: d.OrderedAt,
		Status:    d.Status,
	}
}

func (d userDocument) toDomain() domain.User {
	return domain.User{ID: d.ID, Name: d.Name, Email: d.Email, Role: d.Role}
}

func (d foodDocument) toDomain() domain.Food {
	available := true
	if d.Available != nil {
		available = *d.Available
	}
	return domain.Food{
		ID:        d.ID,
		Name:      d.Name,
		Price:     d.Price,
		Category:  d.Category,
		Available: available,
	}
}

func (d parkingDocument) toDomain() domain.ParkingReservation {
	return domain.ParkingReservation{
		ID:         d.ID,
		Slot:       d.Slot,
		UserID:     d.User,
		Status:     d.Status,
		ReservedAt: d.ReservedAt,
		OccupiedAt: d.OccupiedAt,
	}
}
