package repository

import (
	"context"
	"time"

	"rentmarket/internal/domain"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

type providerProfileModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id"`
	CompanyName *string   `gorm:"column:company_name"`
	FullName    *string   `gorm:"column:full_name"`
	Email       string    `gorm:"column:email"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (providerProfileModel) TableName() string { return "provider_profiles" }

func toDomainProvider(m providerProfileModel) *domain.ProviderProfile {
	var company, fullName string
	if m.CompanyName != nil {
		company = *m.CompanyName
	}
	if m.FullName != nil {
		fullName = *m.FullName
	}

	return &domain.ProviderProfile{
		ID:          m.ID,
		UserID:      m.UserID,
		CompanyName: company,
		FullName:    fullName,
		Email:       m.Email,
		CreatedAt:   m.CreatedAt,
	}
}

func toProviderModel(p *domain.ProviderProfile) providerProfileModel {
	var company, fullName *string
	if p.CompanyName != "" {
		v := p.CompanyName
		company = &v
	}
	if p.FullName != "" {
		v := p.FullName
		fullName = &v
	}

	return providerProfileModel{
		ID:          p.ID,
		UserID:      p.UserID,
		CompanyName: company,
		FullName:    fullName,
		Email:       p.Email,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.ProviderProfile) error {
	m := toProviderModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProvider(m)
	return nil
}

func (r *ProviderRepository) GetByUserID(ctx context.Context, userID int64) (*domain.ProviderProfile, error) {
	var m providerProfileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProvider(m), nil
}
