package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
)

const (
	// AuthorIDHeader carries the id of the author making the request.
	AuthorIDHeader = "X-Author-ID"
	// AuthorKey is the gin context key holding the resolved *domain.Author.
	AuthorKey = "author"
)

// AuthorResolver looks up the author behind an identity.
type AuthorResolver interface {
	ResolveAuthor(ctx context.Context, id string) (*domain.Author, error)
}

// Identity resolves the X-Author-ID header into an author and stores it in
// the context. Unknown ids continue anonymously; lookup failures abort with 503.
func Identity(resolver AuthorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(AuthorIDHeader))
		if id == "" {
			c.Next()
			return
		}

		author, err := resolver.ResolveAuthor(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.WarnContext(c.Request.Context(), "Unknown author identity",
					slog.String("author_id", id),
					slog.String("request_id", GetRequestID(c)))
				c.Next()
				return
			}

			logger.ErrorContext(c.Request.Context(), "Failed to resolve author",
				slog.String("author_id", id),
				slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "identity lookup unavailable"})
			return
		}

		c.Set(AuthorKey, author)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no resolved author.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentAuthor(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// CurrentAuthor returns the author resolved by Identity, or nil.
func CurrentAuthor(c *gin.Context) *domain.Author {
	if v, ok := c.Get(AuthorKey); ok {
		if author, ok := v.(*domain.Author); ok {
			return author
		}
	}
	return nil
}
