package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentgear/internal/domain"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token-under-test", nil
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserStore)
	users.On("ExistsByEmail", mock.Anything, "rita@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, stubJWT{})

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Rita",
		Email:    "Rita@Example.com ",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "rita@example.com", user.Email, "email must be lowercased and trimmed")
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "token-under-test", token)
	users.AssertExpectations(t)
}

func TestRegister_OwnerRole(t *testing.T) {
	users := new(MockUserStore)
	users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, stubJWT{})

	user, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Oleg",
		Email:    "oleg@example.com",
		Password: "secret1",
		Owner:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewService(users, stubJWT{})

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "rita@example.com").Return(&domain.User{
		ID:           5,
		Email:        "rita@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}, nil)

	svc := NewService(users, stubJWT{})

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "rita@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "rita@example.com").Return(&domain.User{
		ID:           5,
		Email:        "rita@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, stubJWT{})

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "rita@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	svc := NewService(users, stubJWT{})

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
