package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wholestock/inventory-backend/internal/auth"
	"github.com/wholestock/inventory-backend/internal/domain"
)

// Login verifies username/password credentials and returns an access token.
// Unknown usernames, wrong passwords, and deactivated accounts all return
// ErrUnauthorized so the response does not leak which part failed.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, input.Password) {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated: %w", domain.ErrUnauthorized)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.Info("user logged in", "user_id", user.ID, "username", user.Username)

	return &AuthResult{AccessToken: token, User: user}, nil
}
