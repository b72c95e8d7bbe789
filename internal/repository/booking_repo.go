package repository

import (
	"context"
	"time"

	"rentmarket/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	EquipmentID int64     `gorm:"column:equipment_id"`
	RenterID    int64     `gorm:"column:renter_id"`
	StartDate   time.Time `gorm:"column:start_date"`
	EndDate     time.Time `gorm:"column:end_date"`
	Days        int       `gorm:"column:days"`
	RatePerDay  float64   `gorm:"column:rate_per_day"`
	Subtotal    float64   `gorm:"column:subtotal"`
	ServiceFee  float64   `gorm:"column:service_fee"`
	TotalAmount float64   `gorm:"column:total_amount"`
	Status      string    `gorm:"column:status"`
	Notes       *string   `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:          m.ID,
		EquipmentID: m.EquipmentID,
		RenterID:    m.RenterID,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Days:        m.Days,
		RatePerDay:  m.RatePerDay,
		Subtotal:    m.Subtotal,
		ServiceFee:  m.ServiceFee,
		TotalAmount: m.TotalAmount,
		Status:      domain.BookingStatus(m.Status),
		Notes:       notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	// Blank notes persist as NULL, not an empty string.
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:          b.ID,
		EquipmentID: b.EquipmentID,
		RenterID:    b.RenterID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Days:        b.Days,
		RatePerDay:  b.RatePerDay,
		Subtotal:    b.Subtotal,
		ServiceFee:  b.ServiceFee,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		Notes:       notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// RenterBookingRow is a booking joined with its equipment title for listings.
type RenterBookingRow struct {
	ID          int64     `gorm:"column:id"`
	Status      string    `gorm:"column:status"`
	StartDate   time.Time `gorm:"column:start_date"`
	EndDate     time.Time `gorm:"column:end_date"`
	Days        int       `gorm:"column:days"`
	TotalAmount float64   `gorm:"column:total_amount"`
	EquipmentID int64     `gorm:"column:equipment_id"`
	Title       string    `gorm:"column:title"`
	Location    string    `gorm:"column:location"`
}

func (r *BookingRepository) GetByRenterWithEquipment(ctx context.Context, renterID int64, limit, offset int) ([]RenterBookingRow, error) {
	var rows []RenterBookingRow
	q := `
SELECT b.id, b.status, b.start_date, b.end_date, b.days, b.total_amount,
       b.equipment_id, e.title, e.location
FROM bookings b
JOIN equipment e ON e.id = b.equipment_id
WHERE b.renter_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, renterID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
