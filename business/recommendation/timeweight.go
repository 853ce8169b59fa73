package recommendation

import (
	"math"
	"time"

	"smartCampusReco/domain"
)

// WeightedOrder is an order annotated for one computation. The weight is
// never written back to the store.
type WeightedOrder struct {
	domain.Order
	At         time.Time
	TimeWeight float64
}

// DaysBetween is the number of whole days from t to now, floored, so a
// timestamp in the future yields a negative count.
func DaysBetween(now, t time.Time) int {
	return int(math.Floor(now.Sub(t).Hours() / 24))
}

// TimeWeight is the exponential recency weight for an order daysDiff days old.
func TimeWeight(daysDiff int, decayDays float64) float64 {
	return math.Exp(-float64(daysDiff) / decayDays)
}

func WeightOrders(orders []domain.Order, now time.Time, decayDays float64) []WeightedOrder {
	out := make([]WeightedOrder, 0, len(orders))
	for _, o := range orders {
		at := o.OrderedAt.Resolve(now)
		out = append(out, WeightedOrder{
			Order:      o,
			At:         at,
			TimeWeight: TimeWeight(DaysBetween(now, at), decayDays),
		})
	}
	return out
}
