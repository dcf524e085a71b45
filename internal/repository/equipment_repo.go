package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rentgear/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	CategoryID        int64     `gorm:"column:category_id"`
	OwnerID           int64     `gorm:"column:owner_id"`
	Name              string    `gorm:"column:name"`
	Description       *string   `gorm:"column:description"`
	Brand             *string   `gorm:"column:brand"`
	Model             *string   `gorm:"column:model"`
	DailyRate         float64   `gorm:"column:daily_rate"`
	WeeklyRate        *float64  `gorm:"column:weekly_rate"`
	DamageDeposit     float64   `gorm:"column:damage_deposit"`
	QuantityAvailable int       `gorm:"column:quantity_available"`
	PhotoURL          *string   `gorm:"column:photo_url"`
	IsActive          bool      `gorm:"column:is_active"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) domain.Equipment {
	var description, brand, model, photo string
	if m.Description != nil {
		description = *m.Description
	}
	if m.Brand != nil {
		brand = *m.Brand
	}
	if m.Model != nil {
		model = *m.Model
	}
	if m.PhotoURL != nil {
		photo = *m.PhotoURL
	}

	return domain.Equipment{
		ID:                m.ID,
		CategoryID:        m.CategoryID,
		OwnerID:           m.OwnerID,
		Name:              m.Name,
		Description:       description,
		Brand:             brand,
		Model:             model,
		DailyRate:         m.DailyRate,
		WeeklyRate:        m.WeeklyRate,
		DamageDeposit:     m.DamageDeposit,
		QuantityAvailable: m.QuantityAvailable,
		PhotoURL:          photo,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	optional := func(s string) *string {
		if s == "" {
			return nil
		}
		v := s
		return &v
	}

	return equipmentModel{
		ID:                e.ID,
		CategoryID:        e.CategoryID,
		OwnerID:           e.OwnerID,
		Name:              e.Name,
		Description:       optional(e.Description),
		Brand:             optional(e.Brand),
		Model:             optional(e.Model),
		DailyRate:         e.DailyRate,
		WeeklyRate:        e.WeeklyRate,
		DamageDeposit:     e.DamageDeposit,
		QuantityAvailable: e.QuantityAvailable,
		PhotoURL:          optional(e.PhotoURL),
		IsActive:          e.IsActive,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*e = toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	// Save writes every column so cleared optional fields persist as NULL.
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*e = toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, mapNotFound(tx.Error)
	}
	e := toDomainEquipment(m)
	return &e, nil
}

func (r *EquipmentRepository) List(ctx context.Context, categoryID int64, activeOnly bool) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Model(&equipmentModel{})
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []equipmentModel
	if tx := q.Order("name").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	items := make([]domain.Equipment, 0, len(models))
	for _, m := range models {
		items = append(items, toDomainEquipment(m))
	}
	return items, nil
}

func (r *EquipmentRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
