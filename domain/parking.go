package domain

const (
	ParkingStatusAvailable = "available"
	ParkingStatusReserved  = "reserved"
	ParkingStatusOccupied  = "occupied"
)

type ParkingReservation struct {
	ID         ID        `json:"id"`
	Slot       string    `json:"slot"`
	UserID     ID        `json:"user"`
	Status     string    `json:"status"`
	ReservedAt Timestamp `json:"-"`
	OccupiedAt Timestamp `json:"-"`
}

// Held reports whether the reservation counts as actual usage of the slot.
func (p ParkingReservation) Held() bool {
	return p.Status == ParkingStatusReserved || p.Status == ParkingStatusOccupied
}

// StartedAt prefers the reservation time and falls back to the occupation time.
func (p ParkingReservation) StartedAt() Timestamp {
	if !p.ReservedAt.IsZero() {
		return p.ReservedAt
	}
	return p.OccupiedAt
}
