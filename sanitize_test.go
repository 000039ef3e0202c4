package mdsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTMLRemovesScripts(t *testing.T) {
	in := `<p>before</p><script>alert("xss")</script><p>after</p>`
	out := SanitizeHTML(in)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "<p>before</p>")
	assert.Contains(t, out, "<p>after</p>")
}

func TestSanitizeHTMLRemovesEmbeddedDocuments(t *testing.T) {
	for _, in := range []string{
		`<iframe src="https://evil.example"></iframe>`,
		`<object data="x"></object>`,
		`<embed src="x">`,
		`<form action="/steal"><input name="pw"></form>`,
		`<link rel="stylesheet" href="x">`,
		`<meta http-equiv="refresh" content="0">`,
		`<style>body { display: none }</style>`,
	} {
		out := SanitizeHTML(in)
		assert.NotContains(t, out, "<iframe", "input %q", in)
		assert.NotContains(t, out, "<object", "input %q", in)
		assert.NotContains(t, out, "<embed", "input %q", in)
		assert.NotContains(t, out, "<form", "input %q", in)
		assert.NotContains(t, out, "<input", "input %q", in)
		assert.NotContains(t, out, "<link", "input %q", in)
		assert.NotContains(t, out, "<meta", "input %q", in)
		assert.NotContains(t, out, "<style", "input %q", in)
		assert.NotContains(t, out, "display: none", "style content must go too")
	}
}

func TestSanitizeHTMLRemovesEventHandlers(t *testing.T) {
	out := SanitizeHTML(`<p onclick="alert(1)" onmouseover='x()'>text</p>`)
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "onmouseover")
	assert.Contains(t, out, "text")
}

func TestSanitizeHTMLRemovesJavascriptURLs(t *testing.T) {
	out := SanitizeHTML(`<a href="javascript:alert(1)">click</a>`)
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, "click")
}

func TestSanitizeHTMLKeepsBlogMarkup(t *testing.T) {
	in := `<h2 id="intro">Intro</h2>` +
		`<p><strong>bold</strong> and <em>italic</em></p>` +
		`<pre><code class="language-go">fmt.Println()</code></pre>` +
		`<ul><li>one</li></ul>` +
		`<blockquote><p>quoted</p></blockquote>` +
		`<a href="https://example.com" title="t">link</a>` +
		`<a href="/posts/hello/">relative</a>` +
		`<img src="https://example.com/x.png" alt="x">` +
		`<table><thead><tr><th>h</th></tr></thead><tbody><tr><td>d</td></tr></tbody></table>`

	out := SanitizeHTML(in)

	for _, want := range []string{
		`id="intro"`, "<strong>bold</strong>", "<em>italic</em>",
		`class="language-go"`, "<li>one</li>", "<blockquote>",
		`href="https://example.com"`, `href="/posts/hello/"`,
		`src="https://example.com/x.png"`, "<th>h</th>", "<td>d</td>",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSanitizeHTMLIsTotal(t *testing.T) {
	assert.Equal(t, "", SanitizeHTML(""))
	assert.NotPanics(t, func() { SanitizeHTML("<<not <html") })
}
