package catalog

import (
	"context"

	"rentmarket/internal/domain"
)

// EquipmentRepository defines the interface for equipment reads
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// ProviderRepository defines the interface for provider profile lookups
type ProviderRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.ProviderProfile, error)
}
