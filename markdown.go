package mdsite

import (
	"bytes"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultMarkdownExtensions is used when the site config does not list any.
var DefaultMarkdownExtensions = []string{"extra", "codehilite", "toc"}

// newMarkdownConverter builds a goldmark instance for the named extension
// set. Unknown identifiers are skipped so a typo'd extension never hides
// content. Raw HTML passes through unmodified; the sanitizer deals with it
// afterwards.
func newMarkdownConverter(extensionNames []string) goldmark.Markdown {
	if len(extensionNames) == 0 {
		extensionNames = DefaultMarkdownExtensions
	}

	var extenders []goldmark.Extender
	var parserOptions []parser.Option

	for _, name := range extensionNames {
		switch name {
		case "extra":
			extenders = append(extenders, extension.GFM, extension.Footnote, extension.DefinitionList)
		case "tables":
			extenders = append(extenders, extension.Table)
		case "footnotes":
			extenders = append(extenders, extension.Footnote)
		case "strikethrough":
			extenders = append(extenders, extension.Strikethrough)
		case "tasklist":
			extenders = append(extenders, extension.TaskList)
		case "linkify":
			extenders = append(extenders, extension.Linkify)
		case "smarty", "typographer":
			extenders = append(extenders, extension.Typographer)
		case "codehilite":
			extenders = append(extenders, highlighting.NewHighlighting(highlighting.WithStyle("github")))
		case "toc":
			parserOptions = append(parserOptions, parser.WithAutoHeadingID())
		case "fenced_code":
			// Built into goldmark.
		}
	}

	return goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// ConvertMarkdown renders a Markdown body to HTML using the named extension
// set. The result is not yet sanitized.
func ConvertMarkdown(body string, extensionNames []string) (string, error) {
	var buf bytes.Buffer
	if err := newMarkdownConverter(extensionNames).Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
