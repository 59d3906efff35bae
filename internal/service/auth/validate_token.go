package auth

import (
	"context"
	"fmt"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// ValidateToken validates an access token and returns the actor it encodes.
// Used by the auth middleware; the token is trusted as-is, without a DB
// round-trip per request.
func (s *Service) ValidateToken(_ context.Context, token string) (ctxutil.Actor, error) {
	identity, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return ctxutil.Actor{}, fmt.Errorf("invalid access token: %w", domain.ErrUnauthorized)
	}

	return ctxutil.Actor{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
	}, nil
}
