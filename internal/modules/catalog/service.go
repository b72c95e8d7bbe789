package catalog

import (
	"context"
	"errors"
	"log"
	"sort"

	"rentmarket/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	equipment EquipmentRepository
	providers ProviderRepository
}

func NewService(equipment EquipmentRepository, providers ProviderRepository) *Service {
	return &Service{
		equipment: equipment,
		providers: providers,
	}
}

// GetEquipmentDetail loads one equipment record with its provider card and
// image set. viewerID is 0 for anonymous viewers. A record that cannot be
// found is reported as ErrNotFound, never as an empty detail.
func (s *Service) GetEquipmentDetail(ctx context.Context, id, viewerID int64) (*EquipmentDetail, error) {
	eq, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	normalizeImages(eq)
	if eq.Features == nil {
		eq.Features = []string{}
	}

	detail := &EquipmentDetail{
		Equipment: eq,
		Provider:  s.providerCard(ctx, eq.OwnerID),
		IsOwner:   viewerID != 0 && viewerID == eq.OwnerID,
	}
	detail.CanBook = eq.Status == domain.EquipmentAvailable && !detail.IsOwner

	return detail, nil
}

// normalizeImages moves a main-flagged image to the front; the rest keep
// their stored order.
func normalizeImages(eq *domain.Equipment) {
	if eq.Images == nil {
		eq.Images = []domain.EquipmentImage{}
		return
	}
	sort.SliceStable(eq.Images, func(i, j int) bool {
		return eq.Images[i].IsMain && !eq.Images[j].IsMain
	})
}

// providerCard resolves the owner's public card. A missing profile is not an
// error from the viewer's perspective; the card falls back to a generic label.
func (s *Service) providerCard(ctx context.Context, ownerID int64) ProviderCard {
	p, err := s.providers.GetByUserID(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("provider lookup failed for user %d: %v", ownerID, err)
		}
		return ProviderCard{DisplayName: fallbackProviderName}
	}

	name := p.CompanyName
	if name == "" {
		name = p.FullName
	}
	if name == "" {
		name = fallbackProviderName
	}

	return ProviderCard{
		DisplayName: name,
		Email:       p.Email,
	}
}
