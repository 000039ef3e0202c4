package mdsite

import (
	"os"
	"path/filepath"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

// generateAtomFeed writes atom.xml next to the RSS feed. Skipped when there
// are no posts; an empty feed does not validate.
func (g *Generator) generateAtomFeed(posts []PostView) {
	if len(posts) == 0 {
		return
	}
	if err := g.writeAtomFeed(posts); err != nil {
		g.logger.Error("skipping atom feed", "error", err)
	}
}

func (g *Generator) writeAtomFeed(posts []PostView) error {
	feed := atom.Feed{
		Title:   g.conf.SiteName,
		Link:    g.conf.BaseURL,
		PubDate: time.Now(),
	}
	feed.AddAuthor(atom.Author{
		Name: g.conf.Author,
		Uri:  g.conf.BaseURL,
	})

	for _, post := range posts {
		entry := &atom.Entry{
			Title:       post.Title,
			Description: post.Description,
			Link:        g.absoluteURL(post.URL),
			PubDate:     post.Date,
			Content:     string(post.Content),
		}
		for _, tag := range post.Tags {
			entry.AddCategory(atom.Category{Term: tag})
		}
		feed.AddEntry(entry)
	}

	if errs := feed.Validate(); len(errs) > 0 {
		for _, err := range errs {
			g.logger.Error("atom feed is not valid", "error", err)
		}
		return errs[0]
	}

	atomXML, err := feed.GenXml()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.outputDir, "atom.xml"), atomXML, os.FileMode(0664))
}
