package dataset

import (
	"time"

	"smartCampusReco/domain"
)

const MockStudentID domain.ID = "68bd8f2c29d488d84d5e10da"

// MockDataset is the fixed data set served while the store is unreachable.
// Times are relative to now so the sample order always counts as recent.
func MockDataset(now time.Time) domain.Dataset {
	hoursAgo := func(h int) domain.Timestamp {
		return domain.TimestampOf(now.Add(-time.Duration(h) * time.Hour))
	}

	reserved := func(id, slot string, h int) domain.ParkingReservation {
		return domain.ParkingReservation{
			ID: domain.ID(id), Slot: slot, UserID: MockStudentID,
			Status: domain.ParkingStatusReserved, ReservedAt: hoursAgo(h),
		}
	}
	occupied := func(id, slot string, h int) domain.ParkingReservation {
		return domain.ParkingReservation{
			ID: domain.ID(id), Slot: slot, UserID: MockStudentID,
			Status: domain.ParkingStatusOccupied, OccupiedAt: hoursAgo(h),
		}
	}

	return domain.Dataset{
		Orders: []domain.Order{{
			ID:     "mock_order_1",
			UserID: MockStudentID,
			Items: []domain.OrderItem{
				{FoodID: "mock_food_1", Quantity: 2},
				{FoodID: "mock_food_2", Quantity: 1},
			},
			OrderedAt: domain.TimestampOf(now),
			Status:    domain.OrderStatusReady,
		}},
		Users: []domain.User{{
			ID:    MockStudentID,
			Name:  "Test Student",
			Email: "student@university.edu",
			Role:  "student",
		}},
		Foods: []domain.Food{
			{ID: "mock_food_1", Name: "Doro Wat", Price: 250, Category: "Main Course", Available: true},
			{ID: "mock_food_2", Name: "Shiro", Price: 150, Category: "Main Course", Available: true},
			{ID: "mock_food_3", Name: "Coca Cola", Price: 25, Category: "Beverage", Available: true},
		},
		Parking: []domain.ParkingReservation{
			reserved("mock_parking_1", "11", 2),
			occupied("mock_parking_2", "11", 24),
			reserved("mock_parking_3", "11", 48),
			occupied("mock_parking_4", "11", 72),
			reserved("mock_parking_5", "11", 96),
			occupied("mock_parking_6", "3", 12),
			reserved("mock_parking_7", "3", 120),
			occupied("mock_parking_8", "A-02", 168),
		},
		Source: domain.SourceMock,
	}
}
