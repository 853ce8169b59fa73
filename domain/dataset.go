package domain

// DataSource tells where a Dataset came from.
type DataSource string

const (
	SourceStore DataSource = "store"
	SourceMock  DataSource = "mock"
)

// Dataset is everything a single recommendation computation reads.
type Dataset struct {
	Orders  []Order
	Users   []User
	Foods   []Food
	Parking []ParkingReservation
	Source  DataSource
}

// FoodCatalog indexes foods by id, keeping the first record for duplicated ids.
func (d Dataset) FoodCatalog() map[ID]Food {
	catalog := make(map[ID]Food, len(d.Foods))
	for _, f := range d.Foods {
		if _, ok := catalog[f.ID]; !ok {
			catalog[f.ID] = f
		}
	}
	return catalog
}

func (d Dataset) OrdersOf(userID ID) []Order {
	out := make([]Order, 0)
	for _, o := range d.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (d Dataset) ParkingOf(userID ID) []ParkingReservation {
	out := make([]ParkingReservation, 0)
	for _, p := range d.Parking {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}
