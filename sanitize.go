package mdsite

import "github.com/microcosm-cc/bluemonday"

// htmlPolicy allows the markup ordinary Markdown conversion produces and
// nothing else. Everything the old denylist named is outside the allowlist:
// script, iframe, object, embed, form, input, link, meta and style elements,
// on* event handlers, javascript: URLs.
var htmlPolicy = buildHTMLPolicy()

func buildHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"strong", "b", "em", "i", "u",
		"code", "pre", "span", "div",
		"ul", "ol", "li",
		"a", "img",
		"table", "thead", "tbody", "tr", "th", "td",
		"blockquote",
	)

	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	p.AllowAttrs("class").Globally()
	// Heading anchors from the toc extension.
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	// http, https, mailto and relative URLs only. Unparseable and
	// javascript: URLs lose their attribute.
	p.AllowStandardURLs()

	// Drop the contents of dangerous elements along with the tags.
	p.SkipElementsContent("script", "style", "iframe", "object", "embed", "form")

	return p
}

// SanitizeHTML strips dangerous markup from converted HTML. Total function:
// any input yields a sanitized (possibly empty) string.
func SanitizeHTML(html string) string {
	return htmlPolicy.Sanitize(html)
}
