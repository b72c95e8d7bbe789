package domain

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentUnavailable EquipmentStatus = "unavailable"
	EquipmentRented      EquipmentStatus = "rented"
)

type Equipment struct {
	ID          int64            `json:"id"`
	OwnerID     int64            `json:"owner_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Location    string           `json:"location"`
	DailyRate   float64          `json:"daily_rate" validate:"gte=0"`
	Status      EquipmentStatus  `json:"status"`
	Features    []string         `json:"features"`
	Images      []EquipmentImage `json:"images"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// EquipmentImage belongs to one equipment record. At most one image per
// equipment carries IsMain; the main image sorts first for display.
type EquipmentImage struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipment_id"`
	URL         string `json:"url"`
	IsMain      bool   `json:"is_main"`
}
