package handler

import "time"

// TimeFormat is the time layout of post timestamps in responses (RFC3339).
const TimeFormat = time.RFC3339

// Page titles and paths of the blog pages.
const (
	indexTitle   = "blogs"
	newPostTitle = "New blog"
	blogPath     = "/blog"
)
