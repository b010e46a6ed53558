package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"trailing number", "Hello World 2", "hello-world-2"},
		{"surrounding whitespace and punctuation", "  Hello,   World!  ", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"duplicate separators", "a--b__c", "a-b-c"},
		{"diacritics transliterated", "Crème Brûlée", "creme-brulee"},
		{"portuguese", "Ação rápida no coração", "acao-rapida-no-coracao"},
		{"sharp s", "Straße", "strasse"},
		{"ligatures", "Æsir Œuvre", "aesir-oeuvre"},
		{"stroke letters", "Łódź Ørsted", "lodz-orsted"},
		{"apostrophe dropped", "Don't Panic", "dont-panic"},
		{"typographic apostrophe dropped", "It’s here", "its-here"},
		{"symbols become separators", "C++ & Go", "c-go"},
		{"compatibility forms", "ﬁle №5", "file-no5"},
		{"non-latin script stripped", "Привет мир", ""},
		{"mixed scripts", "日本 Go 入門", "go"},
		{"empty", "", ""},
		{"only punctuation", "!!! ??? ...", ""},
		{"only whitespace", " \t\n ", ""},
		{"invalid utf-8", "\xff\xfe abc", "abc"},
		{"digits", "2024: year in review", "2024-year-in-review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.title))
		})
	}
}

func TestDerive_OutputIsURLSafe(t *testing.T) {
	titles := []string{
		"Hello World",
		"  --Leading and trailing--  ",
		"Ünïcödé everywhere ✓",
		"tabs\tand\nnewlines",
		"emoji 🎉 party",
		"100% legit",
		"a",
	}

	for _, title := range titles {
		got := Derive(title)
		if got == "" {
			continue
		}
		assert.True(t, Valid(got), "Derive(%q) = %q is not a valid slug", title, got)
	}
}

func TestDerive_ExpandsLongTitles(t *testing.T) {
	tests := []struct {
		char rune
		want string
	}{
		{'ß', "ss"},
		{'þ', "th"},
		{'ⅷ', "viii"},
		{'㎒', "mhz"},
	}

	for _, tt := range tests {
		got := Derive(strings.Repeat(string(tt.char), 255))
		assert.Equal(t, strings.Repeat(tt.want, 255), got)
		assert.True(t, Valid(got))
	}
}

func TestDerive_Idempotent(t *testing.T) {
	for _, title := range []string{"Hello World", "Crème Brûlée", "C++ & Go", "Don't Panic"} {
		once := Derive(title)
		assert.Equal(t, once, Derive(once), "Derive is not idempotent for %q", title)
	}
}

func TestDerive_DistinctTitlesCanCollide(t *testing.T) {
	// Uniqueness is the repository's job; the deriver maps these together.
	assert.Equal(t, Derive("Hello World"), Derive("Hello, World!"))
	assert.Equal(t, Derive("Hello World"), Derive("hello world"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("hello-world"))
	assert.True(t, Valid("a1"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("-hello"))
	assert.False(t, Valid("hello-"))
	assert.False(t, Valid("hello--world"))
	assert.False(t, Valid("Hello"))
}
