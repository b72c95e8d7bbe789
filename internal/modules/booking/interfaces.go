package booking

import (
	"context"

	"rentmarket/internal/domain"
	"rentmarket/internal/repository"
)

// BookingRepository defines the interface for booking persistence
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRenterWithEquipment(ctx context.Context, renterID int64, limit, offset int) ([]repository.RenterBookingRow, error)
}

// EquipmentRepository defines the interface for equipment lookups
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	GetDailyRateByID(ctx context.Context, id int64) (float64, error)
}
