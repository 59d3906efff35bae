package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// Actor is the authenticated identity attached to a request context.
// Username is recorded verbatim as performed_by in inventory history.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     domain.UserRole
}

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated actor in the context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the actor from the context.
// Returns false if the value is missing or carries a nil user ID.
func ActorFromCtx(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.UserID == uuid.Nil {
		return Actor{}, false
	}
	return actor, true
}

// IsAdminCtx reports whether the context actor has the admin role.
func IsAdminCtx(ctx context.Context) bool {
	actor, ok := ActorFromCtx(ctx)
	return ok && actor.Role == domain.UserRoleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
