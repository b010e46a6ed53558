package service

import (
	"context"

	"blog-service/internal/domain"
)

// BlogServiceInterface defines the interface for blog post operations.
// Used for dependency injection and mocking in tests.
type BlogServiceInterface interface {
	// CreatePost validates and stores a new post.
	CreatePost(ctx context.Context, input domain.NewPost) (*domain.Post, error)
	// UpdatePost validates and applies an edit to an existing post.
	UpdatePost(ctx context.Context, id string, input domain.PostUpdate) (*domain.Post, error)
	// GetPost loads a post by slug.
	GetPost(ctx context.Context, slug string) (*domain.Post, error)
	// GetPostByID loads a post by id.
	GetPostByID(ctx context.Context, id string) (*domain.Post, error)
	// ListPosts returns one page of the listing. page is 1-based.
	ListPosts(ctx context.Context, page int, filterID string) (*PostListing, error)
	// DeletePost removes a post.
	DeletePost(ctx context.Context, id string) error
	// ResolveAuthor loads the author behind an identity.
	ResolveAuthor(ctx context.Context, id string) (*domain.Author, error)
	// RegisterAuthor validates and stores a new author.
	RegisterAuthor(ctx context.Context, author *domain.Author) error
}
