package mdsite

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlugBasic(t *testing.T) {
	assert.Equal(t, "hello-world", GenerateSlug("Hello World"))
	assert.Equal(t, "my-first-post", GenerateSlug("My First Post"))
}

func TestGenerateSlugPunctuation(t *testing.T) {
	assert.Equal(t, "hello-world", GenerateSlug("Hello, World!"))
	assert.Equal(t, "whats-new-in-2025", GenerateSlug("What's New in 2025?"))
}

func TestGenerateSlugCollapsesRuns(t *testing.T) {
	assert.Equal(t, "a-b-c", GenerateSlug("a  -  b --- c"))
	assert.Equal(t, "trimmed", GenerateSlug("  --trimmed--  "))
}

func TestGenerateSlugFoldsAccents(t *testing.T) {
	assert.Equal(t, "cafe-au-lait", GenerateSlug("Café au Lait"))
	assert.Equal(t, "uber-svensk-smorgasbord", GenerateSlug("Über Svensk Smörgåsbord"))
}

func TestGenerateSlugEmptyTitle(t *testing.T) {
	assert.Equal(t, "untitled", GenerateSlug(""))
	assert.Equal(t, "untitled", GenerateSlug("   \t  "))
}

func TestGenerateSlugPreservesNonLatinScripts(t *testing.T) {
	// No ASCII survives folding, so the second tier keeps the script.
	assert.Equal(t, "こんにちは", GenerateSlug("こんにちは"))
	assert.Equal(t, "مرحبا", GenerateSlug("مرحبا"))
}

func TestGenerateSlugShortTitles(t *testing.T) {
	// Below the three-char threshold the second tier still wins over the
	// hash fallback for anything with word characters in it.
	assert.Equal(t, "a", GenerateSlug("A!"))
	assert.Equal(t, "hi", GenerateSlug("Hi"))
}

func TestGenerateSlugHashFallback(t *testing.T) {
	slug := GenerateSlug("!!!")
	require.Regexp(t, regexp.MustCompile(`^post-[0-9a-f]{8}$`), slug)

	// Stable across calls: the fallback is content-addressed, not random.
	assert.Equal(t, slug, GenerateSlug("!!!"))
	assert.NotEqual(t, slug, GenerateSlug("???"))
}

func TestGenerateSlugIsTotal(t *testing.T) {
	titles := []string{
		"", " ", "a", "...", "Hello World", "日本語のタイトル",
		"!@#$%^&*()", "---", "\x00\x01", "Mixed 日本語 and ASCII",
	}
	for _, title := range titles {
		slug := GenerateSlug(title)
		assert.NotEmpty(t, slug, "title %q", title)
		assert.Equal(t, slug, GenerateSlug(title), "title %q must be deterministic", title)
	}
}
