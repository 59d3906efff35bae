// Package auth implements user registration, login, and access token
// validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/auth"
	"github.com/wholestock/inventory-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username string, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}
