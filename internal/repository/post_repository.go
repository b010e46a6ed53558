package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-service/internal/domain"
	"blog-service/internal/slug"
)

const postDetailColumns = `
	p.id, p.slug, p.title, p.body, p.tags, p.author_id, p.created_at, p.updated_at,
	a.id, a.name, a.email, a.username, a.created_at`

const postListColumns = `
	p.id, p.slug, p.title, p.body, p.tags, p.author_id, p.created_at, p.updated_at,
	a.id, a.name, a.username, a.created_at`

// PostgresPostRepository implements PostRepository using PostgreSQL.
//
// Title and slug uniqueness are enforced by the posts_title_key and
// posts_slug_key constraints; the lookups done before each write only
// produce the matching error earlier.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool, now: time.Now}
}

// Create inserts a new post with a slug derived from its trimmed title.
func (r *PostgresPostRepository) Create(ctx context.Context, input domain.NewPost) (*domain.Post, error) {
	now := r.timestamp()
	post := domain.Post{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(input.Title),
		Body:      strings.TrimSpace(input.Body),
		Tags:      domain.NormalizeTags(input.Tags),
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	post.Slug = slug.Derive(post.Title)
	if post.Slug == "" {
		return nil, domain.NewValidationError("title", "title_has_no_url_characters")
	}
	if _, err := uuid.Parse(post.AuthorID); err != nil {
		return nil, domain.NewValidationError("author_id", "author_not_found")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkUnique(ctx, tx, post.Title, post.Slug, nil); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO posts (id, slug, title, body, tags, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, post.ID, post.Slug, post.Title, post.Body, post.Tags, post.AuthorID, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return nil, mapWriteError("insert post", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapWriteError("commit post", err)
	}

	return &post, nil
}

// Update replaces the title, body and tags of a post. The slug is
// re-derived only when the trimmed title differs from the stored one.
func (r *PostgresPostRepository) Update(ctx context.Context, id string, input domain.PostUpdate) (*domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var post domain.Post
	err = tx.QueryRow(ctx, `
		SELECT id, slug, title, body, tags, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&post.ID, &post.Slug, &post.Title, &post.Body, &post.Tags, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr("lock post", err)
	}

	title := strings.TrimSpace(input.Title)
	if title != post.Title {
		newSlug := slug.Derive(title)
		if newSlug == "" {
			return nil, domain.NewValidationError("title", "title_has_no_url_characters")
		}
		post.Title = title
		post.Slug = newSlug
	}
	post.Body = strings.TrimSpace(input.Body)
	post.Tags = domain.NormalizeTags(input.Tags)
	post.UpdatedAt = r.timestamp()

	if err := checkUnique(ctx, tx, post.Title, post.Slug, &post.ID); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, body = $4, tags = $5, updated_at = $6
		WHERE id = $1
	`, post.ID, post.Title, post.Slug, post.Body, post.Tags, post.UpdatedAt)
	if err != nil {
		return nil, mapWriteError("update post", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapWriteError("commit post", err)
	}

	return &post, nil
}

// GetBySlug loads a post with its author's display fields.
func (r *PostgresPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postDetailColumns+`
		FROM posts p
		JOIN authors a ON a.id = p.author_id
		WHERE p.slug = $1
	`, slug)

	post, err := scanPostDetail(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr("get post by slug", err)
	}
	return post, nil
}

// GetByID loads a post with its author's display fields.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	row := r.pool.QueryRow(ctx, `
		SELECT `+postDetailColumns+`
		FROM posts p
		JOIN authors a ON a.id = p.author_id
		WHERE p.id = $1
	`, id)

	post, err := scanPostDetail(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr("get post by id", err)
	}
	return post, nil
}

// List returns posts ordered by creation time, newest first, with
// insertion order breaking ties. When FilterID is set only that post is
// returned, but Total still counts every post so the caller can render
// the page count of the unfiltered listing.
func (r *PostgresPostRepository) List(ctx context.Context, opts domain.ListOptions) (*domain.PostPage, error) {
	if opts.Limit <= 0 {
		return nil, domain.NewValidationError("limit", "limit_must_be_positive")
	}
	if opts.Page < 0 {
		return nil, domain.NewValidationError("page", "page_must_not_be_negative")
	}
	if opts.Page > domain.MaxPage(opts.Limit) {
		return r.emptyPage(ctx)
	}

	var filter *string
	if opts.FilterID != "" {
		if _, err := uuid.Parse(opts.FilterID); err != nil {
			// No post can match; the total is still reported.
			return r.emptyPage(ctx)
		}
		filter = &opts.FilterID
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		SELECT `+postListColumns+`
		FROM posts p
		JOIN authors a ON a.id = p.author_id
		WHERE ($3::uuid IS NULL OR p.id = $3::uuid)
		ORDER BY p.created_at DESC, p.seq DESC
		LIMIT $1 OFFSET $2
	`, opts.Limit, opts.Offset(), filter)
	if err != nil {
		return nil, wrapErr("query posts", err)
	}

	posts := make([]domain.Post, 0, opts.Limit)
	for rows.Next() {
		var p domain.Post
		var a domain.Author
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.Tags, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
			&a.ID, &a.Name, &a.Username, &a.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.Author = &a
		posts = append(posts, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate posts", err)
	}

	total, err := r.count(ctx, tx)
	if err != nil {
		return nil, err
	}

	return &domain.PostPage{Posts: posts, Total: total}, nil
}

// Delete removes a post. Deleting a missing post returns ErrNotFound.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PostgresPostRepository) emptyPage(ctx context.Context) (*domain.PostPage, error) {
	total, err := r.count(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	return &domain.PostPage{Posts: []domain.Post{}, Total: total}, nil
}

func (r *PostgresPostRepository) count(ctx context.Context, q querier) (int, error) {
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, wrapErr("count posts", err)
	}
	return total, nil
}

// timestamp returns the current time at the precision Postgres stores.
func (r *PostgresPostRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

// checkUnique reports ErrDuplicateTitle or ErrDuplicateSlug when another
// post, other than excludeID, already holds the title or slug.
func checkUnique(ctx context.Context, tx pgx.Tx, title, postSlug string, excludeID *string) error {
	var titleTaken, slugTaken bool
	err := tx.QueryRow(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM posts WHERE title = $1 AND ($3::uuid IS NULL OR id <> $3::uuid)),
			EXISTS (SELECT 1 FROM posts WHERE slug = $2 AND ($3::uuid IS NULL OR id <> $3::uuid))
	`, title, postSlug, excludeID).Scan(&titleTaken, &slugTaken)
	if err != nil {
		return wrapErr("check uniqueness", err)
	}

	if titleTaken {
		return domain.ErrDuplicateTitle
	}
	if slugTaken {
		return domain.ErrDuplicateSlug
	}
	return nil
}

func scanPostDetail(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	var a domain.Author
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.Tags, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&a.ID, &a.Name, &a.Email, &a.Username, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Author = &a
	return &p, nil
}
