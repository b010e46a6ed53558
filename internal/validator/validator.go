package validator

import (
	"errors"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-service/internal/domain"
)

const (
	maxTitleLength  = 255
	maxBodyLength   = 100000
	maxTagLength    = 64
	maxTagCount     = 32
	maxNameLength   = 100
	maxHandleLength = 50
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNewPost validates the fields of a post about to be created.
func (v *Validator) ValidateNewPost(p *domain.NewPost) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Title, titleRules()...),
		validation.Field(&p.Body, bodyRules()...),
		validation.Field(&p.Tags, tagRules()...),
		validation.Field(&p.AuthorID,
			validation.Required.Error("author_required"),
		),
	)
	return convert(err)
}

// ValidatePostUpdate validates the mutable fields of an existing post.
func (v *Validator) ValidatePostUpdate(u *domain.PostUpdate) error {
	err := validation.ValidateStruct(u,
		validation.Field(&u.Title, titleRules()...),
		validation.Field(&u.Body, bodyRules()...),
		validation.Field(&u.Tags, tagRules()...),
	)
	return convert(err)
}

// ValidateAuthor validates an Author entity.
func (v *Validator) ValidateAuthor(a *domain.Author) error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(0, maxNameLength).Error("name_too_long"),
		),
		validation.Field(&a.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&a.Username,
			validation.Required.Error("username_required"),
			validation.RuneLength(0, maxHandleLength).Error("username_too_long"),
		),
	)
	return convert(err)
}

func titleRules() []validation.Rule {
	return []validation.Rule{
		validation.By(trimmedRequired("title_required")),
		validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
	}
}

func bodyRules() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(0, maxBodyLength).Error("body_too_long"),
	}
}

func tagRules() []validation.Rule {
	return []validation.Rule{
		validation.Length(0, maxTagCount).Error("too_many_tags"),
		validation.Each(validation.By(tagRule)),
	}
}

// trimmedRequired rejects strings that are empty once surrounding whitespace is removed.
func trimmedRequired(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

func tagRule(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return validation.NewError("tag_empty", "tag_empty")
	}
	if utf8.RuneCountInString(s) > maxTagLength {
		return validation.NewError("tag_too_long", "tag_too_long")
	}
	return nil
}

// convert turns ozzo validation errors into a domain.ValidationError.
func convert(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	out := &domain.ValidationError{Fields: make(map[string]string, len(ve))}
	for field, fieldErr := range ve {
		out.Fields[field] = fieldErr.Error()
	}
	return out
}
