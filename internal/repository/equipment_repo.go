package repository

import (
	"context"
	"encoding/json"
	"time"

	"rentmarket/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Category    string    `gorm:"column:category"`
	Location    string    `gorm:"column:location"`
	DailyRate   float64   `gorm:"column:daily_rate"`
	Status      string    `gorm:"column:status"`
	Features    *string   `gorm:"column:features;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

type equipmentImageModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	EquipmentID int64  `gorm:"column:equipment_id"`
	URL         string `gorm:"column:url"`
	IsMain      bool   `gorm:"column:is_main"`
}

func (equipmentImageModel) TableName() string { return "equipment_images" }

func toDomainEquipment(m equipmentModel, images []equipmentImageModel) *domain.Equipment {
	// Missing or corrupt features column reads as an empty list.
	features := []string{}
	if m.Features != nil && *m.Features != "" {
		_ = json.Unmarshal([]byte(*m.Features), &features)
	}

	imgs := make([]domain.EquipmentImage, 0, len(images))
	for _, im := range images {
		imgs = append(imgs, domain.EquipmentImage{
			ID:          im.ID,
			EquipmentID: im.EquipmentID,
			URL:         im.URL,
			IsMain:      im.IsMain,
		})
	}

	return &domain.Equipment{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Location:    m.Location,
		DailyRate:   m.DailyRate,
		Status:      domain.EquipmentStatus(m.Status),
		Features:    features,
		Images:      imgs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	var features *string
	if len(e.Features) > 0 {
		b, err := json.Marshal(e.Features)
		if err == nil {
			v := string(b)
			features = &v
		}
	}

	return equipmentModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Location:    e.Location,
		DailyRate:   e.DailyRate,
		Status:      string(e.Status),
		Features:    features,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	for i := range e.Images {
		im := equipmentImageModel{
			EquipmentID: m.ID,
			URL:         e.Images[i].URL,
			IsMain:      e.Images[i].IsMain,
		}
		if err := r.db.WithContext(ctx).Create(&im).Error; err != nil {
			return err
		}
		e.Images[i].ID = im.ID
		e.Images[i].EquipmentID = m.ID
	}

	imgs := e.Images
	*e = *toDomainEquipment(m, nil)
	e.Images = imgs
	return nil
}

// GetByID loads one equipment record with its image set in insertion order.
func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var images []equipmentImageModel
	tx = r.db.WithContext(ctx).
		Where("equipment_id = ?", id).
		Order("id ASC").
		Find(&images)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return toDomainEquipment(m, images), nil
}

func (r *EquipmentRepository) GetDailyRateByID(ctx context.Context, id int64) (float64, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).Select("id", "daily_rate").First(&m, id)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return m.DailyRate, nil
}
