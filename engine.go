package mdsite

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
)

// BuildOptions controls a single build pass.
type BuildOptions struct {
	// IncludeDrafts puts posts marked draft: true into every output
	// artifact instead of dropping them.
	IncludeDrafts bool
}

// Generator drives a full site build: discover content, parse it, resolve
// slug collisions, and write every output artifact.
//
// Configuration and template errors abort the build. From content
// processing onward, a broken file or a failed per-item render is logged and
// skipped so one bad post cannot take the whole site down. The index is the
// exception: a site without its root pages is not a partial site, so index
// render failures are fatal.
type Generator struct {
	projectRoot string
	configPath  string
	contentDir  string
	templateDir string
	staticDir   string
	outputDir   string

	conf     *SiteConfig
	renderer *Renderer
	logger   *slog.Logger
}

// NewGenerator creates a generator for the project rooted at projectRoot.
// The logger is the generator's only diagnostic sink; nil means
// slog.Default(). Multiple generators can run in-process without cross-talk.
func NewGenerator(projectRoot string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		projectRoot: projectRoot,
		configPath:  filepath.Join(projectRoot, "config.yaml"),
		contentDir:  filepath.Join(projectRoot, "content"),
		templateDir: filepath.Join(projectRoot, "templates"),
		staticDir:   filepath.Join(projectRoot, "static"),
		logger:      logger,
	}
}

// Build runs the whole pipeline once and returns the first fatal error.
func (g *Generator) Build(opts BuildOptions) error {
	g.logger.Info("starting site build", "project", g.projectRoot)

	conf, err := LoadSiteConf(g.configPath)
	if err != nil {
		return err
	}
	g.conf = conf
	g.outputDir = filepath.Join(g.projectRoot, conf.OutputDir)

	renderer, err := NewRenderer(g.templateDir)
	if err != nil {
		return err
	}
	g.renderer = renderer

	if err := CleanOutputDir(g.outputDir); err != nil {
		return err
	}

	postFiles, pageFiles, err := g.discoverContent()
	if err != nil {
		return err
	}
	g.logger.Info("discovered content", "posts", len(postFiles), "pages", len(pageFiles))

	parsedPosts := g.processContent(postFiles, "post")
	parsedPages := g.processContent(pageFiles, "page")

	if !opts.IncludeDrafts {
		parsedPosts = filterPublished(parsedPosts)
	}
	g.logger.Info("processing content", "posts", len(parsedPosts), "pages", len(parsedPages))

	posts := make([]PostView, 0, len(parsedPosts))
	for _, p := range parsedPosts {
		posts = append(posts, newPostView(p, PostURL(p.Metadata.Slug)))
	}
	posts = sortPostsByDate(posts)

	pages := make([]PostView, 0, len(parsedPages))
	for _, p := range parsedPages {
		pages = append(pages, newPostView(p, PageURL(p.Metadata.Slug)))
	}

	if err := g.generatePosts(posts); err != nil {
		return err
	}
	if err := g.generateIndex(posts); err != nil {
		return err
	}
	if err := g.generateTagPages(posts); err != nil {
		return err
	}
	if err := g.generateTagIndex(posts); err != nil {
		return err
	}
	g.generateFeed(posts)
	g.generateAtomFeed(posts)
	if err := g.generatePages(pages); err != nil {
		return err
	}
	g.generateSitemap(posts, pages)

	if err := g.copyAssets(); err != nil {
		return err
	}

	g.logger.Info("site build complete", "output", g.outputDir)
	return nil
}

// discoverContent lists the Markdown files under content/posts and
// content/pages. Glob output is sorted, which makes slug collision order
// deterministic.
func (g *Generator) discoverContent() (postFiles, pageFiles []string, err error) {
	postFiles, err = filepath.Glob(filepath.Join(g.contentDir, "posts", "*.md"))
	if err != nil {
		return nil, nil, err
	}
	pageFiles, err = filepath.Glob(filepath.Join(g.contentDir, "pages", "*.md"))
	if err != nil {
		return nil, nil, err
	}
	return postFiles, pageFiles, nil
}

// processContent parses one content class, skipping broken files and
// resolving slug collisions first-wins within the class.
func (g *Generator) processContent(files []string, kind string) []ParsedContent {
	usedSlugs := make(map[string]bool)
	parsed := make([]ParsedContent, 0, len(files))

	for _, file := range files {
		item, err := ParseContentFile(file, g.conf.MarkdownExtensions, g.conf.Timezone)
		if err != nil {
			g.logger.Error("skipping "+kind, "file", file, "error", err)
			continue
		}

		slug := resolveSlugCollision(item.Metadata.Slug, usedSlugs)
		if slug != item.Metadata.Slug {
			g.logger.Warn("slug collision resolved",
				"kind", kind,
				"title", item.Metadata.Title,
				"old", item.Metadata.Slug,
				"new", slug)
			item = item.WithSlug(slug)
		}
		usedSlugs[slug] = true
		parsed = append(parsed, item)
	}

	return parsed
}

// resolveSlugCollision probes slug, slug-2, slug-3, ... for the first unused
// candidate. The first claimant of a slug keeps it untouched.
func resolveSlugCollision(slug string, used map[string]bool) string {
	if !used[slug] {
		return slug
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", slug, n)
		if !used[candidate] {
			return candidate
		}
	}
}

func filterPublished(items []ParsedContent) []ParsedContent {
	published := make([]ParsedContent, 0, len(items))
	for _, item := range items {
		if !item.Metadata.Draft {
			published = append(published, item)
		}
	}
	return published
}

func (g *Generator) generatePosts(posts []PostView) error {
	for _, post := range posts {
		err := g.renderToURL(post.URL, func() (string, error) {
			return g.renderer.RenderPost(post, g.conf)
		})
		if errors.Is(err, ErrUnsafePath) {
			return err
		}
		if err != nil {
			g.logger.Error("skipping post", "title", post.Title, "slug", post.Slug, "error", err)
		}
	}
	return nil
}

func (g *Generator) generateIndex(posts []PostView) error {
	pages, err := Paginate(posts, g.conf.PostsPerPage)
	if err != nil {
		return err
	}
	for _, page := range pages {
		err := g.renderToURL(PaginationURL(page.PageNumber), func() (string, error) {
			return g.renderer.RenderIndexPage(page, g.conf)
		})
		if err != nil {
			return fmt.Errorf("generating index page %d: %w", page.PageNumber, err)
		}
	}
	return nil
}

func (g *Generator) generateTagPages(posts []PostView) error {
	for tag, tagPosts := range collectPostsByTag(posts) {
		sorted := sortPostsByDate(tagPosts)
		err := g.renderToURL(TagURL(tag), func() (string, error) {
			return g.renderer.RenderTagPage(tag, sorted, g.conf)
		})
		if errors.Is(err, ErrUnsafePath) {
			return err
		}
		if err != nil {
			g.logger.Error("skipping tag page", "tag", tag, "error", err)
		}
	}
	return nil
}

func (g *Generator) generateTagIndex(posts []PostView) error {
	counts := tagCounts(collectPostsByTag(posts))
	err := g.renderToURL("/tag/", func() (string, error) {
		return g.renderer.RenderTagIndex(counts, g.conf)
	})
	if errors.Is(err, ErrUnsafePath) {
		return err
	}
	if err != nil {
		g.logger.Error("skipping tag index", "error", err)
	}
	return nil
}

func (g *Generator) generateFeed(posts []PostView) {
	content, err := g.renderer.RenderFeed(posts, g.conf)
	if err == nil {
		err = writeFile(filepath.Join(g.outputDir, "feed.xml"), content)
	}
	if err != nil {
		g.logger.Error("skipping feed", "error", err)
	}
}

func (g *Generator) generatePages(pages []PostView) error {
	for _, page := range pages {
		err := g.renderToURL(page.URL, func() (string, error) {
			return g.renderer.RenderPage(page, g.conf)
		})
		if errors.Is(err, ErrUnsafePath) {
			return err
		}
		if err != nil {
			g.logger.Error("skipping page", "title", page.Title, "slug", page.Slug, "error", err)
		}
	}
	return nil
}

func (g *Generator) generateSitemap(posts, pages []PostView) {
	urls := make([]SitemapURL, 0, len(posts)+len(pages))
	for _, post := range posts {
		urls = append(urls, SitemapURL{Loc: g.absoluteURL(post.URL), LastMod: post.Date})
	}
	for _, page := range pages {
		urls = append(urls, SitemapURL{Loc: g.absoluteURL(page.URL), LastMod: page.Date})
	}
	for tag, tagPosts := range collectPostsByTag(posts) {
		urls = append(urls, SitemapURL{
			Loc:     g.absoluteURL(TagURL(tag)),
			LastMod: sortPostsByDate(tagPosts)[0].Date,
		})
	}

	content, err := g.renderer.RenderSitemap(urls, g.conf)
	if err == nil {
		err = writeFile(filepath.Join(g.outputDir, "sitemap.xml"), content)
	}
	if err != nil {
		g.logger.Error("skipping sitemap", "error", err)
	}
}

// copyAssets mirrors static/ into the output tree. A missing source
// directory is fine; the site just has no assets.
func (g *Generator) copyAssets() error {
	if _, err := os.Stat(g.staticDir); os.IsNotExist(err) {
		return nil
	}
	dest := filepath.Join(g.outputDir, "static")
	if err := os.RemoveAll(dest); err != nil {
		return err
	}
	g.logger.Info("copying static files", "from", g.staticDir, "to", dest)
	return copy.Copy(g.staticDir, dest)
}

// renderToURL renders content for a site URL and writes it at the mapped
// output path. Path-safety errors come back as-is and are never downgraded.
func (g *Generator) renderToURL(urlPath string, render func() (string, error)) error {
	outputPath, err := OutputPath(g.outputDir, urlPath)
	if err != nil {
		return err
	}
	content, err := render()
	if err != nil {
		return err
	}
	return writeFile(outputPath, content)
}

func (g *Generator) absoluteURL(urlPath string) string {
	return strings.TrimRight(g.conf.BaseURL, "/") + urlPath
}
