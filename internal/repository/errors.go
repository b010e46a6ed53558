package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"blog-service/internal/domain"
)

// Postgres error codes and constraint names the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"

	postsTitleConstraint   = "posts_title_key"
	postsSlugConstraint    = "posts_slug_key"
	authorsEmailConstraint = "authors_email_key"
)

// wrapErr annotates err with op. Failures that never reached the server
// (dial, broken connection, pool closed) are marked as ErrStorageUnavailable.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

// mapWriteError translates constraint violations into domain errors.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			switch pgErr.ConstraintName {
			case postsTitleConstraint:
				return fmt.Errorf("%s: %w", op, domain.ErrDuplicateTitle)
			case postsSlugConstraint:
				return fmt.Errorf("%s: %w", op, domain.ErrDuplicateSlug)
			case authorsEmailConstraint:
				return fmt.Errorf("%s: %w", op, domain.ErrDuplicateEmail)
			}
		case pgForeignKeyViolation:
			return domain.NewValidationError("author_id", "author_not_found")
		case pgStringTooLong:
			return domain.NewValidationError("input", "value_too_long")
		}
	}
	return wrapErr(op, err)
}
