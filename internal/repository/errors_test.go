package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"blog-service/internal/domain"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "title constraint",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: postsTitleConstraint},
			want: domain.ErrDuplicateTitle,
		},
		{
			name: "slug constraint",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: postsSlugConstraint},
			want: domain.ErrDuplicateSlug,
		},
		{
			name: "email constraint",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: authorsEmailConstraint},
			want: domain.ErrDuplicateEmail,
		},
		{
			name: "wrapped title constraint",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: postsTitleConstraint}),
			want: domain.ErrDuplicateTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError("insert post", tt.err), tt.want)
		})
	}
}

func TestMapWriteError_ForeignKey(t *testing.T) {
	err := mapWriteError("insert post", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "posts_author_id_fkey"})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "author_not_found", ve.Fields["author_id"])
}

func TestMapWriteError_StringTooLong(t *testing.T) {
	err := mapWriteError("insert post", &pgconn.PgError{Code: pgStringTooLong})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "value_too_long", ve.Fields["input"])
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestWrapErr(t *testing.T) {
	t.Run("connection failure is storage unavailable", func(t *testing.T) {
		err := wrapErr("begin transaction", errors.New("dial tcp: connection refused"))
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.Contains(t, err.Error(), "begin transaction")
	})

	t.Run("server error is not storage unavailable", func(t *testing.T) {
		err := wrapErr("query posts", &pgconn.PgError{Code: "42P01"})
		assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
	})

	t.Run("cancellation is passed through", func(t *testing.T) {
		err := wrapErr("query posts", context.Canceled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
	})
}
