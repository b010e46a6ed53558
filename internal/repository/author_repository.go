package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-service/internal/domain"
)

// PostgresAuthorRepository implements AuthorRepository using PostgreSQL.
type PostgresAuthorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuthorRepository creates a new PostgresAuthorRepository.
func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool}
}

// Create inserts an author, assigning an id and creation time when unset.
func (r *PostgresAuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	if author.ID == "" {
		author.ID = uuid.New().String()
	}
	if author.CreatedAt.IsZero() {
		author.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	author.Email = strings.ToLower(strings.TrimSpace(author.Email))

	_, err := r.pool.Exec(ctx, `
		INSERT INTO authors (id, name, email, username, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, author.ID, author.Name, author.Email, author.Username, author.CreatedAt)
	if err != nil {
		return mapWriteError("insert author", err)
	}
	return nil
}

// GetByID retrieves an author by ID.
func (r *PostgresAuthorRepository) GetByID(ctx context.Context, id string) (*domain.Author, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	var a domain.Author
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, username, created_at
		FROM authors
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Email, &a.Username, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr("get author", err)
	}
	return &a, nil
}
