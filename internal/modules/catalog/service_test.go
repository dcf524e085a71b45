package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentgear/internal/domain"
)

type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 1
	}
	return args.Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockEquipmentStore struct {
	mock.Mock
}

func (m *MockEquipmentStore) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil {
		e.ID = 1
	}
	return args.Error(0)
}

func (m *MockEquipmentStore) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentStore) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentStore) List(ctx context.Context, categoryID int64, activeOnly bool) ([]domain.Equipment, error) {
	args := m.Called(ctx, categoryID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentStore) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func admin() *domain.User    { return &domain.User{ID: 1, Role: domain.RoleAdmin} }
func owner() *domain.User    { return &domain.User{ID: 2, Role: domain.RoleOwner} }
func customer() *domain.User { return &domain.User{ID: 3, Role: domain.RoleCustomer} }

func TestCreateCategory_AdminOnly(t *testing.T) {
	categories := new(MockCategoryStore)
	service := NewService(categories, new(MockEquipmentStore))

	_, err := service.CreateCategory(context.Background(), owner(), CreateCategoryRequest{Name: "Cameras"})
	assert.ErrorIs(t, err, ErrForbidden)
	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCategory_Success(t *testing.T) {
	categories := new(MockCategoryStore)
	categories.On("Create", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)
	service := NewService(categories, new(MockEquipmentStore))

	category, err := service.CreateCategory(context.Background(), admin(), CreateCategoryRequest{
		Name:        "Cameras",
		Description: "DSLR and mirrorless bodies",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cameras", category.Name)
	assert.NotZero(t, category.ID)
	categories.AssertExpectations(t)
}

func TestCreateCategory_ShortName(t *testing.T) {
	service := NewService(new(MockCategoryStore), new(MockEquipmentStore))

	_, err := service.CreateCategory(context.Background(), admin(), CreateCategoryRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateEquipment_Success(t *testing.T) {
	categories := new(MockCategoryStore)
	categories.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1, Name: "Cameras"}, nil)
	equipment := new(MockEquipmentStore)
	equipment.On("Create", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)
	service := NewService(categories, equipment)

	weekly := 300.0
	eq, err := service.CreateEquipment(context.Background(), owner(), CreateEquipmentRequest{
		CategoryID:        1,
		Name:              "Canon EOS R6",
		DailyRate:         50,
		WeeklyRate:        &weekly,
		DamageDeposit:     100,
		QuantityAvailable: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, owner().ID, eq.OwnerID)
	assert.True(t, eq.IsActive)
	equipment.AssertExpectations(t)
}

func TestCreateEquipment_CustomerForbidden(t *testing.T) {
	service := NewService(new(MockCategoryStore), new(MockEquipmentStore))

	_, err := service.CreateEquipment(context.Background(), customer(), CreateEquipmentRequest{
		CategoryID: 1,
		Name:       "Canon EOS R6",
		DailyRate:  50,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateEquipment_UnknownCategory(t *testing.T) {
	categories := new(MockCategoryStore)
	categories.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)
	service := NewService(categories, new(MockEquipmentStore))

	_, err := service.CreateEquipment(context.Background(), owner(), CreateEquipmentRequest{
		CategoryID: 42,
		Name:       "Canon EOS R6",
		DailyRate:  50,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateEquipment_RejectsNonPositiveRates(t *testing.T) {
	service := NewService(new(MockCategoryStore), new(MockEquipmentStore))

	_, err := service.CreateEquipment(context.Background(), owner(), CreateEquipmentRequest{
		CategoryID: 1,
		Name:       "Canon EOS R6",
		DailyRate:  0,
	})
	assert.ErrorIs(t, err, ErrValidation)

	badWeekly := -10.0
	_, err = service.CreateEquipment(context.Background(), owner(), CreateEquipmentRequest{
		CategoryID: 1,
		Name:       "Canon EOS R6",
		DailyRate:  50,
		WeeklyRate: &badWeekly,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateEquipment_OwnershipEnforced(t *testing.T) {
	equipment := new(MockEquipmentStore)
	equipment.On("GetByID", mock.Anything, int64(7)).Return(&domain.Equipment{ID: 7, OwnerID: 99}, nil)
	service := NewService(new(MockCategoryStore), equipment)

	name := "Renamed"
	_, err := service.UpdateEquipment(context.Background(), owner(), 7, UpdateEquipmentRequest{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateEquipment_AdminCanPatchAnything(t *testing.T) {
	equipment := new(MockEquipmentStore)
	equipment.On("GetByID", mock.Anything, int64(7)).Return(&domain.Equipment{ID: 7, OwnerID: 99, DailyRate: 50}, nil)
	equipment.On("Update", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)
	service := NewService(new(MockCategoryStore), equipment)

	rate := 65.0
	eq, err := service.UpdateEquipment(context.Background(), admin(), 7, UpdateEquipmentRequest{DailyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 65.0, eq.DailyRate)
	equipment.AssertExpectations(t)
}

func TestUpdateEquipment_RejectsInvalidPatch(t *testing.T) {
	equipment := new(MockEquipmentStore)
	equipment.On("GetByID", mock.Anything, int64(7)).Return(&domain.Equipment{ID: 7, OwnerID: owner().ID}, nil)
	service := NewService(new(MockCategoryStore), equipment)

	bad := -1.0
	_, err := service.UpdateEquipment(context.Background(), owner(), 7, UpdateEquipmentRequest{DailyRate: &bad})
	assert.ErrorIs(t, err, ErrValidation)
	equipment.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetEquipment_NotFound(t *testing.T) {
	equipment := new(MockEquipmentStore)
	equipment.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)
	service := NewService(new(MockCategoryStore), equipment)

	_, err := service.GetEquipment(context.Background(), 404)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestDeactivateEquipment_OwnerSoftDeletes(t *testing.T) {
	equipment := new(MockEquipmentStore)
	equipment.On("GetByID", mock.Anything, int64(7)).Return(&domain.Equipment{ID: 7, OwnerID: owner().ID, IsActive: true}, nil)
	equipment.On("SetActive", mock.Anything, int64(7), false).Return(nil)
	service := NewService(new(MockCategoryStore), equipment)

	err := service.DeactivateEquipment(context.Background(), owner(), 7)
	require.NoError(t, err)
	equipment.AssertExpectations(t)
}
