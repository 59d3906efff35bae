package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/auth"
	"github.com/wholestock/inventory-backend/internal/domain"
)

// userRepoMock implements userRepo with configurable funcs.
type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	CreateFunc        func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.CreateFunc(ctx, user)
}

// jwtManagerMock implements jwtManager with configurable funcs.
type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, username string, role domain.UserRole) (string, error)
	ValidateAccessTokenFunc func(token string) (auth.Identity, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, username string, role domain.UserRole) (string, error) {
	return m.GenerateAccessTokenFunc(userID, username, role)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (auth.Identity, error) {
	return m.ValidateAccessTokenFunc(token)
}
