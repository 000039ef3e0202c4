package mdsite

import (
	"bytes"
	"encoding/xml"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"
)

// PostView is the template-facing record for one post or page.
type PostView struct {
	Title       string
	Date        time.Time
	Slug        string
	Tags        []string
	Draft       bool
	Description string
	Content     htmltemplate.HTML
	URL         string
}

func newPostView(p ParsedContent, urlPath string) PostView {
	return PostView{
		Title:       p.Metadata.Title,
		Date:        p.Metadata.Date,
		Slug:        p.Metadata.Slug,
		Tags:        p.Metadata.Tags,
		Draft:       p.Metadata.Draft,
		Description: p.Metadata.Description,
		Content:     htmltemplate.HTML(p.Content),
		URL:         urlPath,
	}
}

// Called from templates.
func (v PostView) FormatDate() string      { return v.Date.Format("January 2, 2006") }
func (v PostView) FormatDateShort() string { return v.Date.Format("Jan 2, 2006") }

// SitemapURL is one entry in the sitemap context.
type SitemapURL struct {
	Loc     string
	LastMod time.Time
}

type postContext struct {
	Post      PostView
	Site      *SiteConfig
	PageTitle string
}

type pageContext struct {
	Page      PostView
	Site      *SiteConfig
	PageTitle string
}

type indexContext struct {
	Posts      []PostView
	Site       *SiteConfig
	Pagination Page
	PageTitle  string
}

type tagContext struct {
	Tag       string
	Posts     []PostView
	Site      *SiteConfig
	PageTitle string
}

type tagIndexContext struct {
	Tags      []TagCount
	Site      *SiteConfig
	PageTitle string
}

type feedContext struct {
	Posts     []PostView
	Site      *SiteConfig
	BuildDate time.Time
}

type sitemapContext struct {
	URLs []SitemapURL
	Site *SiteConfig
}

var xmlTemplateFuncs = texttemplate.FuncMap{
	"xml": func(s string) string {
		var b strings.Builder
		if err := xml.EscapeText(&b, []byte(s)); err != nil {
			return ""
		}
		return b.String()
	},
	"rfc1123z": func(t time.Time) string { return t.Format(time.RFC1123Z) },
	"w3c":      func(t time.Time) string { return t.Format("2006-01-02") },
}

// Renderer renders site templates from a single template directory.
//
// HTML page templates are parsed together with base.html when it exists, so
// pages can fill {{block}} sections of a shared skeleton. The XML templates
// (feed.xml, sitemap.xml) render through text/template with an xml escape
// func. Parsed templates are cached per name for the build's duration.
type Renderer struct {
	templateDir string
	htmlCache   map[string]*htmltemplate.Template
	textCache   map[string]*texttemplate.Template
}

// NewRenderer fails with the os not-found error when the template directory
// is absent.
func NewRenderer(templateDir string) (*Renderer, error) {
	info, err := os.Stat(templateDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", templateDir)
	}
	return &Renderer{
		templateDir: templateDir,
		htmlCache:   make(map[string]*htmltemplate.Template),
		textCache:   make(map[string]*texttemplate.Template),
	}, nil
}

// RenderPost renders one post through post.html.
func (r *Renderer) RenderPost(post PostView, site *SiteConfig) (string, error) {
	return r.renderHTML("post.html", postContext{Post: post, Site: site, PageTitle: post.Title})
}

// RenderPage renders one static page through page.html.
func (r *Renderer) RenderPage(page PostView, site *SiteConfig) (string, error) {
	return r.renderHTML("page.html", pageContext{Page: page, Site: site, PageTitle: page.Title})
}

// RenderIndexPage renders one slice of the chronological index through
// index.html. Pages past the first get a " - Page n" title suffix.
func (r *Renderer) RenderIndexPage(page Page, site *SiteConfig) (string, error) {
	title := site.SiteName
	if page.PageNumber > 1 {
		title = fmt.Sprintf("%s - Page %d", title, page.PageNumber)
	}
	return r.renderHTML("index.html", indexContext{
		Posts:      page.Posts,
		Site:       site,
		Pagination: page,
		PageTitle:  title,
	})
}

// RenderTagPage renders a tag archive through tag.html.
func (r *Renderer) RenderTagPage(tag string, posts []PostView, site *SiteConfig) (string, error) {
	return r.renderHTML("tag.html", tagContext{
		Tag:       tag,
		Posts:     posts,
		Site:      site,
		PageTitle: fmt.Sprintf("Posts tagged %q", tag),
	})
}

// RenderTagIndex renders the all-tags overview through tag_index.html.
func (r *Renderer) RenderTagIndex(tags []TagCount, site *SiteConfig) (string, error) {
	return r.renderHTML("tag_index.html", tagIndexContext{Tags: tags, Site: site, PageTitle: "Tags"})
}

// RenderFeed renders the RSS feed through feed.xml.
func (r *Renderer) RenderFeed(posts []PostView, site *SiteConfig) (string, error) {
	return r.renderText("feed.xml", feedContext{Posts: posts, Site: site, BuildDate: time.Now()})
}

// RenderSitemap renders sitemap.xml from a list of absolute URLs.
func (r *Renderer) RenderSitemap(urls []SitemapURL, site *SiteConfig) (string, error) {
	return r.renderText("sitemap.xml", sitemapContext{URLs: urls, Site: site})
}

func (r *Renderer) renderHTML(name string, data any) (string, error) {
	t, err := r.htmlTemplate(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) renderText(name string, data any) (string, error) {
	t, err := r.textTemplate(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) htmlTemplate(name string) (*htmltemplate.Template, error) {
	if t, ok := r.htmlCache[name]; ok {
		return t, nil
	}

	page := filepath.Join(r.templateDir, name)
	if _, err := os.Stat(page); err != nil {
		return nil, err
	}

	files := []string{page}
	base := filepath.Join(r.templateDir, "base.html")
	if _, err := os.Stat(base); err == nil && name != "base.html" {
		files = []string{base, page}
	}

	t, err := htmltemplate.ParseFiles(files...)
	if err != nil {
		return nil, err
	}
	r.htmlCache[name] = t
	return t, nil
}

func (r *Renderer) textTemplate(name string) (*texttemplate.Template, error) {
	if t, ok := r.textCache[name]; ok {
		return t, nil
	}

	page := filepath.Join(r.templateDir, name)
	if _, err := os.Stat(page); err != nil {
		return nil, err
	}

	t, err := texttemplate.New(name).Funcs(xmlTemplateFuncs).ParseFiles(page)
	if err != nil {
		return nil, err
	}
	r.textCache[name] = t
	return t, nil
}
