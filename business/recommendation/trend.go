package recommendation

import (
	"time"

	"smartCampusReco/domain"
)

const day = 24 * time.Hour

// trendRatio compares the recent count against the older one.
func trendRatio(recent, older int) float64 {
	if older > 0 {
		return float64(recent-older) / float64(older)
	}
	if recent > 0 {
		return 1.0
	}
	return 0.0
}

// AnalyzeTrends splits the user's orders into the recent window and the
// older window before it; orders older than the trend window are ignored.
func AnalyzeTrends(
	orders []WeightedOrder,
	parking []domain.ParkingReservation,
	now time.Time,
	cfg Config,
) domain.Trends {
	if len(orders) == 0 {
		return domain.EmptyTrends()
	}

	recentCutoff := now.Add(-time.Duration(cfg.RecentWindowDays) * day)
	trendCutoff := now.Add(-time.Duration(cfg.TrendWindowDays) * day)

	recent := NewTally[domain.ID]()
	older := NewTally[domain.ID]()
	hasRecent := false

	for _, o := range orders {
		var bucket *Tally[domain.ID]
		switch {
		case o.At.After(recentCutoff):
			bucket = recent
			hasRecent = true
		case o.At.After(trendCutoff):
			bucket = older
		default:
			continue
		}

		for _, item := range o.Items {
			bucket.Add(item.FoodID, item.Quantity)
		}
	}

	foodTrends := make(map[domain.ID]float64, recent.Len()+older.Len())
	for _, id := range append(recent.Keys(), older.Keys()...) {
		foodTrends[id] = trendRatio(recent.Count(id), older.Count(id))
	}

	return domain.Trends{
		FoodTrends:        foodTrends,
		ParkingTrends:     parkingTrends(parking, recentCutoff, trendCutoff),
		HasRecentActivity: hasRecent,
		TrendPeriod:       TrendPeriod7Days,
	}
}

// parkingTrends applies the food formula to held reservations by slot. Only
// slots used in the recent window get an entry. Reservations without a
// usable timestamp are left out.
func parkingTrends(parking []domain.ParkingReservation, recentCutoff, trendCutoff time.Time) map[string]float64 {
	recent := NewTally[string]()
	older := NewTally[string]()

	for _, p := range parking {
		if !p.Held() || p.Slot == "" {
			continue
		}
		at, ok := p.StartedAt().Time()
		if !ok {
			continue
		}

		switch {
		case at.After(recentCutoff):
			recent.Add(p.Slot, 1)
		case at.After(trendCutoff):
			older.Add(p.Slot, 1)
		}
	}

	out := make(map[string]float64, recent.Len())
	for _, slot := range recent.Keys() {
		out[slot] = trendRatio(recent.Count(slot), older.Count(slot))
	}
	return out
}
