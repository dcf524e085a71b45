package catalog

import (
	"context"

	"rentgear/internal/domain"
)

type CategoryStore interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type EquipmentStore interface {
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, categoryID int64, activeOnly bool) ([]domain.Equipment, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
