package auth

import (
	"context"
	"fmt"

	"github.com/wholestock/inventory-backend/internal/domain"
	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// Me returns the profile of the authenticated actor in the context.
// Returns ErrUnauthorized when the context carries no actor, and ErrNotFound
// when the account behind a still-valid token has been deleted.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("no authenticated user: %w", domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}

	return user, nil
}
