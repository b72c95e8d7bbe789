package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking is a rental request for a whole-day date range. RatePerDay is a
// snapshot of the equipment's daily rate at submission time; the stored
// amounts are recomputed server-side, never trusted from the client.
type Booking struct {
	ID          int64         `json:"id"`
	EquipmentID int64         `json:"equipment_id" validate:"required"`
	RenterID    int64         `json:"renter_id" validate:"required"`
	StartDate   time.Time     `json:"start_date" validate:"required"`
	EndDate     time.Time     `json:"end_date" validate:"required"`
	Days        int           `json:"days" validate:"gte=1"`
	RatePerDay  float64       `json:"rate_per_day" validate:"gte=0"`
	Subtotal    float64       `json:"subtotal"`
	ServiceFee  float64       `json:"service_fee"`
	TotalAmount float64       `json:"total_amount"`
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
