package validator

import (
	"errors"
	"strings"
	"testing"

	"blog-service/internal/domain"
)

func TestValidateNewPost(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		post    *domain.NewPost
		wantErr bool
		field   string
		code    string
	}{
		{
			name: "valid post",
			post: &domain.NewPost{
				Title:    "Hello World",
				Body:     "text",
				Tags:     []string{"x"},
				AuthorID: "123e4567-e89b-12d3-a456-426614174000",
			},
		},
		{
			name: "valid post without body or tags",
			post: &domain.NewPost{
				Title:    "Hello World",
				AuthorID: "123e4567-e89b-12d3-a456-426614174000",
			},
		},
		{
			name: "missing title",
			post: &domain.NewPost{
				Body:     "text",
				AuthorID: "123e4567-e89b-12d3-a456-426614174000",
			},
			wantErr: true,
			field:   "title",
			code:    "title_required",
		},
		{
			name: "whitespace title",
			post: &domain.NewPost{
				Title:    "   \t ",
				AuthorID: "123e4567-e89b-12d3-a456-426614174000",
			},
			wantErr: true,
			field:   "title",
			code:    "title_required",
		},
		{
			name: "title too long",
			post: &domain.NewPost{
				Title:    strings.Repeat("a", maxTitleLength+1),
				AuthorID: "123e4567-e89b-12d3-a456-426614174000",
			},
			wantErr: true,
			field:   "title",
			code:    "title_too_long",
		},
		{
			name: "missing author",
			post: &domain.NewPost{
				Title: "Hello World",
			},
			wantErr: true,
			field:   "author_id",
			code:    "author_required",
		},
		{
			name: "empty tag",
			post: &domain.NewPost{
				Title:    "Hello World",
				Tags:     []string{"go", " "},
				AuthorID: "123e4567-e89b-12d3-a456-426614174000",
			},
			wantErr: true,
			field:   "tags",
			code:    "tag_empty",
		},
		{
			name: "tag too long",
			post: &domain.NewPost{
				Title:    "Hello World",
				Tags:     []string{strings.Repeat("t", maxTagLength+1)},
				AuthorID: "123e4567-e89b-12d3-a456-426614174000",
			},
			wantErr: true,
			field:   "tags",
			code:    "tag_too_long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateNewPost(tt.post)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateNewPost() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *domain.ValidationError, got %T", err)
			}
			msg, ok := ve.Fields[tt.field]
			if !ok {
				t.Fatalf("expected error on field %q, got %v", tt.field, ve.Fields)
			}
			if !strings.Contains(msg, tt.code) {
				t.Errorf("field %q error = %q, want it to contain %q", tt.field, msg, tt.code)
			}
		})
	}
}

func TestValidatePostUpdate(t *testing.T) {
	v := NewValidator()

	if err := v.ValidatePostUpdate(&domain.PostUpdate{Title: "New title", Body: "b"}); err != nil {
		t.Errorf("valid update rejected: %v", err)
	}

	err := v.ValidatePostUpdate(&domain.PostUpdate{Title: "", Body: "b"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if ve.Fields["title"] != "title_required" {
		t.Errorf("title error = %q", ve.Fields["title"])
	}

	err = v.ValidatePostUpdate(&domain.PostUpdate{
		Title: "ok",
		Body:  strings.Repeat("b", maxBodyLength+1),
	})
	if !errors.As(err, &ve) || ve.Fields["body"] != "body_too_long" {
		t.Errorf("expected body_too_long, got %v", err)
	}
}

func TestValidateAuthor(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		author  *domain.Author
		wantErr bool
		field   string
	}{
		{
			name:   "valid author",
			author: &domain.Author{Name: "Jane Doe", Email: "jane@example.com", Username: "jane"},
		},
		{
			name:    "invalid email",
			author:  &domain.Author{Name: "Jane Doe", Email: "not-an-email", Username: "jane"},
			wantErr: true,
			field:   "email",
		},
		{
			name:    "missing username",
			author:  &domain.Author{Name: "Jane Doe", Email: "jane@example.com"},
			wantErr: true,
			field:   "username",
		},
		{
			name:    "missing name",
			author:  &domain.Author{Email: "jane@example.com", Username: "jane"},
			wantErr: true,
			field:   "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateAuthor(tt.author)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAuthor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ve *domain.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected *domain.ValidationError, got %T", err)
				}
				if _, ok := ve.Fields[tt.field]; !ok {
					t.Errorf("expected error on %q, got %v", tt.field, ve.Fields)
				}
			}
		})
	}
}
