package recommendation

import "smartCampusReco/domain"

// Interactions is the per-request aggregate of all orders and reservations.
// It is built from scratch by Aggregate and never updated afterwards.
type Interactions struct {
	FoodPopularity  *Tally[domain.ID]
	UserPreferences map[domain.ID]*Tally[domain.ID]
	ParkingUsage    map[domain.ID]*Tally[string]

	// users in the order their first order was seen
	users []domain.ID
}

func Aggregate(orders []domain.Order, parking []domain.ParkingReservation) *Interactions {
	in := &Interactions{
		FoodPopularity:  NewTally[domain.ID](),
		UserPreferences: make(map[domain.ID]*Tally[domain.ID]),
		ParkingUsage:    make(map[domain.ID]*Tally[string]),
	}

	for _, order := range orders {
		if order.UserID.IsZero() {
			continue
		}

		prefs, ok := in.UserPreferences[order.UserID]
		if !ok {
			prefs = NewTally[domain.ID]()
			in.UserPreferences[order.UserID] = prefs
			in.users = append(in.users, order.UserID)
		}

		for _, item := range order.Items {
			in.FoodPopularity.Add(item.FoodID, item.Quantity)
			prefs.Add(item.FoodID, item.Quantity)
		}
	}

	for _, res := range parking {
		if res.UserID.IsZero() || res.Slot == "" {
			continue
		}

		usage, ok := in.ParkingUsage[res.UserID]
		if !ok {
			usage = NewTally[string]()
			in.ParkingUsage[res.UserID] = usage
		}
		usage.Add(res.Slot, 1)
	}

	return in
}

// HasOrdered reports whether the user ever ordered the food.
func (in *Interactions) HasOrdered(userID, foodID domain.ID) bool {
	prefs, ok := in.UserPreferences[userID]
	return ok && prefs.Has(foodID)
}

// Users returns the ids of users with at least one order, in first-seen order.
func (in *Interactions) Users() []domain.ID {
	out := make([]domain.ID, len(in.users))
	copy(out, in.users)
	return out
}
