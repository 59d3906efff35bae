package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wholestock/inventory-backend/pkg/ctxutil"
)

// tokenValidator validates a bearer token and returns the actor it encodes.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (ctxutil.Actor, error)
}

// Auth returns middleware that resolves the Authorization header into a
// context actor. Requests without a token pass through anonymously; the
// services decide which operations require authentication. A present but
// invalid token is rejected with 401 immediately.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // anonymous
				return
			}

			actor, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ctxutil.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
