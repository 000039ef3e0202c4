package mdsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownBasics(t *testing.T) {
	out, err := ConvertMarkdown("Some **bold** and *italic* text.", nil)
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>italic</em>")
}

func TestConvertMarkdownAutoHeadingIDs(t *testing.T) {
	out, err := ConvertMarkdown("# Hello World", []string{"toc"})
	require.NoError(t, err)
	assert.Contains(t, out, `id="hello-world"`)
}

func TestConvertMarkdownTables(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	out, err := ConvertMarkdown(src, []string{"tables"})
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")

	// Also part of the "extra" bundle via GFM.
	out, err = ConvertMarkdown(src, []string{"extra"})
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

func TestConvertMarkdownRawHTMLPassesThrough(t *testing.T) {
	// Sanitization is a separate, later step.
	out, err := ConvertMarkdown(`before <span class="x">raw</span> after`, nil)
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="x">raw</span>`)
}

func TestConvertMarkdownUnknownExtensionIgnored(t *testing.T) {
	out, err := ConvertMarkdown("plain text", []string{"definitely_not_real", "toc"})
	require.NoError(t, err)
	assert.Contains(t, out, "plain text")
}

func TestConvertMarkdownFencedCode(t *testing.T) {
	out, err := ConvertMarkdown("```go\nfmt.Println(\"hi\")\n```\n", []string{"fenced_code"})
	require.NoError(t, err)
	assert.Contains(t, out, "fmt.Println")
}
