package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
	"blog-service/internal/slug"
	"blog-service/internal/validator"
)

// PostListing is a listing page ready for display. Page is 1-based.
type PostListing struct {
	Posts []domain.Post
	Total int
	Page  int
	Pages int
	Limit int
}

// BlogService coordinates validation, persistence and instrumentation
// for blog posts.
type BlogService struct {
	posts     repository.PostRepository
	authors   repository.AuthorRepository
	validator *validator.Validator
	pageSize  int
}

// NewBlogService creates a new BlogService.
func NewBlogService(
	posts repository.PostRepository,
	authors repository.AuthorRepository,
	v *validator.Validator,
	pageSize int,
) *BlogService {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &BlogService{
		posts:     posts,
		authors:   authors,
		validator: v,
		pageSize:  pageSize,
	}
}

// CreatePost validates input and stores a new post.
func (s *BlogService) CreatePost(ctx context.Context, input domain.NewPost) (post *domain.Post, err error) {
	defer observe("create", metrics.NewTimer(), &err)

	input.Tags = domain.NormalizeTags(input.Tags)
	if err := s.validator.ValidateNewPost(&input); err != nil {
		return nil, err
	}

	post, err = s.posts.Create(ctx, input)
	if err != nil {
		logFailure(ctx, "Failed to create post", err, slog.String("author_id", input.AuthorID))
		return nil, err
	}

	logger.InfoContext(ctx, "Post created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.String("author_id", post.AuthorID))
	return post, nil
}

// UpdatePost validates input and applies it to the post with the given id.
func (s *BlogService) UpdatePost(ctx context.Context, id string, input domain.PostUpdate) (post *domain.Post, err error) {
	defer observe("update", metrics.NewTimer(), &err)

	input.Tags = domain.NormalizeTags(input.Tags)
	if err := s.validator.ValidatePostUpdate(&input); err != nil {
		return nil, err
	}

	post, err = s.posts.Update(ctx, id, input)
	if err != nil {
		logFailure(ctx, "Failed to update post", err, slog.String("post_id", id))
		return nil, err
	}

	logger.WithPostID(post.ID).InfoContext(ctx, "Post updated", slog.String("slug", post.Slug))
	return post, nil
}

// GetPost loads a post by slug. Strings that no title can derive to are
// not found without a storage round trip.
func (s *BlogService) GetPost(ctx context.Context, postSlug string) (post *domain.Post, err error) {
	defer observe("get", metrics.NewTimer(), &err)
	if !slug.Valid(postSlug) {
		return nil, domain.ErrNotFound
	}
	return s.posts.GetBySlug(ctx, postSlug)
}

// GetPostByID loads a post by id.
func (s *BlogService) GetPostByID(ctx context.Context, id string) (post *domain.Post, err error) {
	defer observe("get", metrics.NewTimer(), &err)
	return s.posts.GetByID(ctx, id)
}

// ListPosts returns the page-th page (1-based) of the listing. Pages below 1
// are treated as the first page and pages beyond any reachable offset are
// clamped.
func (s *BlogService) ListPosts(ctx context.Context, page int, filterID string) (listing *PostListing, err error) {
	defer observe("list", metrics.NewTimer(), &err)

	if page < 1 {
		page = 1
	}
	if last := domain.MaxPage(s.pageSize); page > last {
		page = last
	}

	result, err := s.posts.List(ctx, domain.ListOptions{
		Page:     page - 1,
		Limit:    s.pageSize,
		FilterID: filterID,
	})
	if err != nil {
		logFailure(ctx, "Failed to list posts", err, slog.Int("page", page))
		return nil, err
	}
	metrics.SetPostsStored(result.Total)

	return &PostListing{
		Posts: result.Posts,
		Total: result.Total,
		Page:  page,
		Pages: domain.PageCount(result.Total, s.pageSize),
		Limit: s.pageSize,
	}, nil
}

// DeletePost removes the post with the given id.
func (s *BlogService) DeletePost(ctx context.Context, id string) (err error) {
	defer observe("delete", metrics.NewTimer(), &err)

	if err = s.posts.Delete(ctx, id); err != nil {
		logFailure(ctx, "Failed to delete post", err, slog.String("post_id", id))
		return err
	}

	logger.WithPostID(id).InfoContext(ctx, "Post deleted")
	return nil
}

// ResolveAuthor loads the author with the given id.
func (s *BlogService) ResolveAuthor(ctx context.Context, id string) (*domain.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}
	return author, nil
}

// RegisterAuthor validates and stores a new author.
func (s *BlogService) RegisterAuthor(ctx context.Context, author *domain.Author) error {
	if err := s.validator.ValidateAuthor(author); err != nil {
		return err
	}
	if err := s.authors.Create(ctx, author); err != nil {
		return fmt.Errorf("register author: %w", err)
	}

	logger.InfoContext(ctx, "Author registered",
		slog.String("author_id", author.ID),
		slog.String("username", author.Username))
	return nil
}

// observe records the outcome of a post operation.
func observe(operation string, timer *metrics.Timer, err *error) {
	metrics.ObservePostOperation(operation, resultOf(*err), timer.Elapsed())
}

func resultOf(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.As(err, &ve):
		return metrics.ResultInvalid
	case errors.Is(err, domain.ErrDuplicateTitle), errors.Is(err, domain.ErrDuplicateSlug):
		return metrics.ResultConflict
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}

// logFailure logs expected outcomes at warn level and everything else as an error.
func logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	args := append([]any{slog.String("error", err.Error())}, attrs...)
	if domain.IsUserError(err) || errors.Is(err, domain.ErrNotFound) {
		logger.WarnContext(ctx, msg, args...)
		return
	}
	logger.ErrorContext(ctx, msg, args...)
}
