package domain

import "strings"

// TagDelimiter separates tags in the single-field form encoding.
const TagDelimiter = ","

// SplitTags decodes the comma-delimited form field into a tag sequence.
// A tag that itself contained the delimiter comes back as two tags.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, TagDelimiter)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags encodes tags into the comma-delimited form field.
func JoinTags(tags []string) string {
	return strings.Join(tags, TagDelimiter)
}

// NormalizeTags trims every tag and drops empty ones, keeping order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
