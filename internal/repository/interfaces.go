package repository

import (
	"context"

	"blog-service/internal/domain"
)

// PostRepository defines methods for blog post data access.
type PostRepository interface {
	// Create derives the slug and persists a new post.
	Create(ctx context.Context, input domain.NewPost) (*domain.Post, error)
	// Update applies new content to a post, re-deriving the slug only when the title changed.
	Update(ctx context.Context, id string, input domain.PostUpdate) (*domain.Post, error)
	// GetBySlug loads a post and its author by slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	// GetByID loads a post and its author by id.
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns one page of posts, most recent first.
	List(ctx context.Context, opts domain.ListOptions) (*domain.PostPage, error)
	// Delete removes a post.
	Delete(ctx context.Context, id string) error
}

// AuthorRepository defines methods for author data access.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	GetByID(ctx context.Context, id string) (*domain.Author, error)
}
