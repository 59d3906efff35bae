package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// PostgreSQL error codes relevant to this application.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors to domain errors. entity names the
// record kind and key identifies it in the wrapped message.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass
// through so callers can distinguish cancellation from data errors.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context, never swallow.
	return fmt.Errorf("%s %v: %w", entity, key, err)
}
