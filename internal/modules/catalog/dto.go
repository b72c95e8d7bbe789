package catalog

import "rentmarket/internal/domain"

// fallbackProviderName is shown when a provider has neither a company name
// nor a full name on file.
const fallbackProviderName = "Equipment provider"

// ProviderCard is the compact provider block rendered next to the equipment.
type ProviderCard struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
}

// EquipmentDetail is the full detail payload: the equipment record with its
// normalized image order, the provider card, and the viewer-specific flags
// that drive the booking control.
type EquipmentDetail struct {
	*domain.Equipment
	Provider ProviderCard `json:"provider"`
	IsOwner  bool         `json:"is_owner"`
	CanBook  bool         `json:"can_book"`
}
