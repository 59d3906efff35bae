package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/auth"
	"github.com/wholestock/inventory-backend/internal/domain"
)

// Register creates a new customer account and returns an access token for it.
// Returns ErrAlreadyExists if the username or email is already taken.
// Registration never grants the admin role; admins are provisioned out of band.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Username and email uniqueness are enforced by DB constraints.
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.UserRoleCustomer,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Register generate token: %w", err)
	}

	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)

	return &AuthResult{AccessToken: token, User: user}, nil
}
