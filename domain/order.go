package domain

const (
	OrderStatusOrdered   = "ordered"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusPicked    = "picked"
)

type OrderItem struct {
	FoodID   ID  `json:"food"`
	Quantity int `json:"quantity"`
}

type Order struct {
	ID        ID          `json:"id"`
	UserID    ID          `json:"user"`
	Items     []OrderItem `json:"items"`
	OrderedAt Timestamp   `json:"-"`
	Status    string      `json:"status"`
}
