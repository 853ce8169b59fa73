package recommendation

import (
	"fmt"

	"smartCampusReco/domain"
)

// ParkingRecommendations ranks the slots the user has held, most used first.
// A user without held reservations gets the fallback slot.
func ParkingRecommendations(reservations []domain.ParkingReservation, cfg Config) []domain.ParkingRecommendation {
	usage := NewTally[string]()
	for _, r := range reservations {
		if !r.Held() || r.Slot == "" {
			continue
		}
		usage.Add(r.Slot, 1)
	}

	if usage.Len() == 0 {
		return []domain.ParkingRecommendation{{
			Slot:   cfg.Parking.FallbackSlot,
			Score:  cfg.Parking.FallbackScore,
			Reason: ReasonPreferredSpot,
		}}
	}

	ranked := topN(usage.MostCommon(), cfg.TopN)
	out := make([]domain.ParkingRecommendation, 0, len(ranked))
	for _, e := range ranked {
		reason := ReasonPreferredSpot
		if e.Count > 1 {
			reason = fmt.Sprintf("Reserved %d times", e.Count)
		}
		out = append(out, domain.ParkingRecommendation{
			Slot:   e.Key,
			Score:  e.Count,
			Reason: reason,
		})
	}
	return out
}
