package booking

import (
	"context"
	"errors"
	"time"

	"rentmarket/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings  BookingRepository
	equipment EquipmentRepository
}

func NewService(bookings BookingRepository, equipment EquipmentRepository) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
	}
}

// CreateBooking validates the request against business rules in order and,
// only if every check passes, persists a pending booking. Amounts are always
// recomputed from the equipment's current daily rate; nothing price-related
// is taken from the request.
func (s *Service) CreateBooking(ctx context.Context, renterID int64, req CreateBookingRequest) (*domain.Booking, error) {
	eq, err := s.equipment.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	if eq.OwnerID == renterID {
		return nil, ErrOwnEquipment
	}

	if eq.Status != domain.EquipmentAvailable {
		return nil, ErrNotAvailable
	}

	start, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return nil, ErrPastStart
	}

	if !end.After(start) {
		return nil, ErrInvalidRange
	}

	days := Days(start, end)
	if days < 1 {
		return nil, ErrMinDuration
	}

	// Fresh rate lookup so the snapshot never comes from a stale display.
	rate, err := s.equipment.GetDailyRateByID(ctx, req.EquipmentID)
	if err != nil {
		return nil, err
	}

	quote := PriceFor(days, rate)

	b := &domain.Booking{
		EquipmentID: req.EquipmentID,
		RenterID:    renterID,
		StartDate:   start,
		EndDate:     end,
		Days:        quote.Days,
		RatePerDay:  quote.RatePerDay,
		Subtotal:    quote.Subtotal,
		ServiceFee:  quote.ServiceFee,
		TotalAmount: quote.Total,
		Status:      domain.BookingPending,
		Notes:       req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23503" {
				return nil, ErrEquipmentNotFound
			}
		}
		return nil, err
	}

	return b, nil
}

// QuoteForEquipment prices a raw date pair against the current daily rate.
// An unparsable or incomplete pair yields an empty quote rather than an
// error; the breakdown simply shows zero.
func (s *Service) QuoteForEquipment(ctx context.Context, equipmentID int64, startStr, endStr string) (*Quote, error) {
	rate, err := s.equipment.GetDailyRateByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	var start, end time.Time
	if startStr != "" {
		start, _ = time.ParseInLocation(dateLayout, startStr, time.UTC)
	}
	if endStr != "" {
		end, _ = time.ParseInLocation(dateLayout, endStr, time.UTC)
	}

	q := QuoteFor(start, end, rate)
	return &q, nil
}

func (s *Service) GetMyBookings(ctx context.Context, renterID int64, limit, offset int) ([]BookingDetails, error) {
	rows, err := s.bookings.GetByRenterWithEquipment(ctx, renterID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingDetails{
			ID:             r.ID,
			Status:         r.Status,
			StartDate:      r.StartDate,
			EndDate:        r.EndDate,
			Days:           r.Days,
			TotalAmount:    r.TotalAmount,
			EquipmentID:    r.EquipmentID,
			EquipmentTitle: r.Title,
			Location:       r.Location,
		})
	}
	return out, nil
}
