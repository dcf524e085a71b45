package catalog

import (
	"context"
	"errors"

	"rentgear/internal/domain"
	"rentgear/internal/pkg/validator"
)

type Service struct {
	categories CategoryStore
	equipment  EquipmentStore
}

func NewService(categories CategoryStore, equipment EquipmentStore) *Service {
	return &Service{categories: categories, equipment: equipment}
}

/* ---------- CATEGORIES ---------- */

func (s *Service) CreateCategory(ctx context.Context, actor *domain.User, req CreateCategoryRequest) (*domain.Category, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

/* ---------- EQUIPMENT ---------- */

func (s *Service) CreateEquipment(ctx context.Context, actor *domain.User, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if actor.Role != domain.RoleOwner && actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}
	if req.WeeklyRate != nil && *req.WeeklyRate <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	eq := &domain.Equipment{
		CategoryID:        req.CategoryID,
		OwnerID:           actor.ID,
		Name:              req.Name,
		Description:       req.Description,
		Brand:             req.Brand,
		Model:             req.Model,
		DailyRate:         req.DailyRate,
		WeeklyRate:        req.WeeklyRate,
		DamageDeposit:     req.DamageDeposit,
		QuantityAvailable: req.QuantityAvailable,
		PhotoURL:          req.PhotoURL,
		IsActive:          true,
	}
	if err := s.equipment.Create(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, actor *domain.User, equipmentID int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	eq, err := s.getEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if eq.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Description != nil {
		eq.Description = *req.Description
	}
	if req.Brand != nil {
		eq.Brand = *req.Brand
	}
	if req.Model != nil {
		eq.Model = *req.Model
	}
	if req.DailyRate != nil {
		if *req.DailyRate <= 0 {
			return nil, ErrValidation
		}
		eq.DailyRate = *req.DailyRate
	}
	if req.WeeklyRate != nil {
		if *req.WeeklyRate <= 0 {
			return nil, ErrValidation
		}
		eq.WeeklyRate = req.WeeklyRate
	}
	if req.DamageDeposit != nil {
		if *req.DamageDeposit < 0 {
			return nil, ErrValidation
		}
		eq.DamageDeposit = *req.DamageDeposit
	}
	if req.QuantityAvailable != nil {
		if *req.QuantityAvailable < 0 {
			return nil, ErrValidation
		}
		eq.QuantityAvailable = *req.QuantityAvailable
	}
	if req.PhotoURL != nil {
		eq.PhotoURL = *req.PhotoURL
	}
	if req.IsActive != nil {
		eq.IsActive = *req.IsActive
	}

	if err := s.equipment.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *Service) GetEquipment(ctx context.Context, equipmentID int64) (*domain.Equipment, error) {
	return s.getEquipment(ctx, equipmentID)
}

func (s *Service) ListEquipment(ctx context.Context, categoryID int64) ([]domain.Equipment, error) {
	return s.equipment.List(ctx, categoryID, true)
}

// DeactivateEquipment hides the listing instead of deleting it so history
// and existing bookings stay intact.
func (s *Service) DeactivateEquipment(ctx context.Context, actor *domain.User, equipmentID int64) error {
	eq, err := s.getEquipment(ctx, equipmentID)
	if err != nil {
		return err
	}
	if eq.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return ErrForbidden
	}
	return s.equipment.SetActive(ctx, equipmentID, false)
}

func (s *Service) getEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return eq, nil
}
