package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rentgear/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (categoryModel) TableName() string { return "categories" }

func toDomainCategory(m categoryModel) domain.Category {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: description,
		CreatedAt:   m.CreatedAt,
	}
}

func toCategoryModel(c *domain.Category) categoryModel {
	var description *string
	if c.Description != "" {
		v := c.Description
		description = &v
	}

	return categoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: description,
		CreatedAt:   c.CreatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	m := toCategoryModel(c)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*c = toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var m categoryModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, mapNotFound(tx.Error)
	}
	c := toDomainCategory(m)
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var models []categoryModel
	if tx := r.db.WithContext(ctx).Order("name").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	categories := make([]domain.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, toDomainCategory(m))
	}
	return categories, nil
}
