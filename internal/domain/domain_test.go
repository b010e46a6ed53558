package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"trims whitespace", " go , web ,  blog", []string{"go", "web", "blog"}},
		{"drops empty entries", "a,,b,", []string{"a", "b"}},
		{"empty string", "", []string{}},
		{"blank string", "   ", []string{}},
		{"single tag", "x", []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTags(tt.raw)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) || len(got) != len(tt.want) {
				t.Errorf("SplitTags(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestJoinSplitTags_RoundTrip(t *testing.T) {
	tags := []string{"a", "b", "c"}
	got := SplitTags(JoinTags(tags))
	if fmt.Sprint(got) != fmt.Sprint(tags) {
		t.Errorf("round trip = %q, want %q", got, tags)
	}
}

func TestJoinSplitTags_DelimiterInsideTagIsSplit(t *testing.T) {
	// The form encoding cannot carry a comma inside a tag.
	got := SplitTags(JoinTags([]string{"a,b"}))
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitTags(JoinTags([a,b])) = %q, want [a b]", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" go", "", "  ", "web "})
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("NormalizeTags = %q", got)
	}
}

func TestListOptions_Offset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{0, 30, 0},
		{1, 30, 30},
		{2, 10, 20},
	}
	for _, tt := range tests {
		if got := (ListOptions{Page: tt.page, Limit: tt.limit}).Offset(); got != tt.want {
			t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestMaxPage(t *testing.T) {
	for _, limit := range []int{1, 10, 30} {
		page := MaxPage(limit)
		if offset := (ListOptions{Page: page, Limit: limit}).Offset(); offset < 0 {
			t.Errorf("Offset at MaxPage(%d) = %d, want non-negative", limit, offset)
		}
	}
	if got := MaxPage(0); got != 0 {
		t.Errorf("MaxPage(0) = %d, want 0", got)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 30, 0},
		{1, 30, 1},
		{30, 30, 1},
		{31, 30, 2},
		{61, 30, 3},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.limit); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"title": "title_required",
		"body":  "body_too_long",
	}}

	if got, want := err.Error(), "validation failed: body: body_too_long; title: title_required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	msgs := err.Messages()
	if len(msgs) != 2 || msgs[0] != "body: body_too_long" {
		t.Errorf("Messages() = %q", msgs)
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", NewValidationError("title", "title_required"), true},
		{"wrapped duplicate title", fmt.Errorf("create post: %w", ErrDuplicateTitle), true},
		{"duplicate slug", ErrDuplicateSlug, true},
		{"not found", ErrNotFound, false},
		{"storage", fmt.Errorf("query: %w", ErrStorageUnavailable), false},
		{"other", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserError(tt.err); got != tt.want {
				t.Errorf("IsUserError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
