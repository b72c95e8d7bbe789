package booking

import "time"

// Dates travel as plain calendar days ("2006-01-02"); time-of-day never
// matters for a daily rental.
type CreateBookingRequest struct {
	EquipmentID int64  `json:"equipment_id" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Notes       string `json:"notes"`
}

type BookingDetails struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Days        int       `json:"days"`
	TotalAmount float64   `json:"total_amount"`

	EquipmentID    int64  `json:"equipment_id"`
	EquipmentTitle string `json:"equipment_title"`
	Location       string `json:"location"`
}
