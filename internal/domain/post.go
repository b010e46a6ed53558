package domain

import (
	"math"
	"time"
)

// DefaultPageSize is the number of posts shown per listing page.
const DefaultPageSize = 30

// Post represents a blog post entity in the system.
type Post struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	AuthorID  string    `json:"author_id"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost carries the caller-supplied fields of a post that is about to be created.
// The slug, id and timestamps are assigned by the repository.
type NewPost struct {
	Title    string   `json:"title" form:"title"`
	Body     string   `json:"body" form:"body"`
	Tags     []string `json:"tags" form:"-"`
	AuthorID string   `json:"author_id" form:"-"`
}

// PostUpdate carries the mutable fields of an existing post.
type PostUpdate struct {
	Title string   `json:"title" form:"title"`
	Body  string   `json:"body" form:"body"`
	Tags  []string `json:"tags" form:"-"`
}

// ListOptions controls a post listing. Page is zero-based.
type ListOptions struct {
	Page     int
	Limit    int
	FilterID string
}

// Offset returns the number of rows skipped before the window starts.
// It is only meaningful for pages up to MaxPage(Limit).
func (o ListOptions) Offset() int {
	return o.Limit * o.Page
}

// MaxPage is the highest zero-based page whose offset fits in an int.
func MaxPage(limit int) int {
	if limit <= 0 {
		return 0
	}
	return math.MaxInt / limit
}

// PostPage is one window of a post listing.
// Total counts the whole collection, not the filtered window.
type PostPage struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
}

// PageCount returns how many pages of the given size cover total items.
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
