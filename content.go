package mdsite

import (
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// ContentMetadata holds the validated front-matter fields of one content
// file. Construct through NewContentMetadata so tags are always normalized.
type ContentMetadata struct {
	Title       string
	Date        time.Time
	Slug        string
	Tags        []string
	Draft       bool
	Description string
}

// NewContentMetadata trims the title and description and normalizes tags:
// lowercased, whitespace-trimmed, blanks dropped. A constructed value is
// valid by construction; there is no post-hoc fixup step.
func NewContentMetadata(title string, date time.Time, slug string, tags []string, draft bool, description string) ContentMetadata {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			normalized = append(normalized, tag)
		}
	}
	return ContentMetadata{
		Title:       strings.TrimSpace(title),
		Date:        date,
		Slug:        slug,
		Tags:        normalized,
		Draft:       draft,
		Description: strings.TrimSpace(description),
	}
}

// ParsedContent is the result of parsing one content file.
type ParsedContent struct {
	Metadata   ContentMetadata
	Content    string // sanitized HTML body
	RawContent string // original file text, kept for diagnostics
	Filepath   string
}

// WithSlug returns a copy whose metadata carries the given slug. Every other
// metadata field is preserved exactly as authored.
func (p ParsedContent) WithSlug(slug string) ParsedContent {
	p.Metadata.Slug = slug
	return p
}

// ParseContentFile reads and parses a Markdown file with YAML front matter.
//
// A missing file surfaces as the os not-found error, unwrapped. Everything
// else that goes wrong with the file's contents is a *ParseError.
func ParseContentFile(path string, markdownExtensions []string, timezone string) (ParsedContent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParsedContent{}, err
	}
	if !utf8.Valid(raw) {
		return ParsedContent{}, parseErrorf(path, "file is not valid UTF-8")
	}
	rawContent := string(raw)

	fields, body, err := ExtractFrontMatter(rawContent, path)
	if err != nil {
		return ParsedContent{}, err
	}
	if err := ValidateFrontMatter(fields, path); err != nil {
		return ParsedContent{}, err
	}

	date, err := ParseDate(fields["date"], timezone, path)
	if err != nil {
		return ParsedContent{}, err
	}

	title := fields["title"].(string)

	slug, _ := fields["slug"].(string)
	if strings.TrimSpace(slug) == "" {
		slug = GenerateSlug(title)
	}

	var tags []string
	if value, ok := fields["tags"]; ok && value != nil {
		items, isList := value.([]any)
		if !isList {
			return ParsedContent{}, parseErrorf(path, "field 'tags' must be a list")
		}
		for _, item := range items {
			s, isString := item.(string)
			if !isString {
				return ParsedContent{}, parseErrorf(path, "field 'tags' must be a list of strings")
			}
			tags = append(tags, s)
		}
	}

	draft := false
	if value, ok := fields["draft"]; ok && value != nil {
		b, isBool := value.(bool)
		if !isBool {
			return ParsedContent{}, parseErrorf(path, "field 'draft' must be a boolean")
		}
		draft = b
	}

	description := ""
	if value, ok := fields["description"]; ok && value != nil {
		s, isString := value.(string)
		if !isString {
			return ParsedContent{}, parseErrorf(path, "field 'description' must be a string")
		}
		description = s
	}

	htmlBody, err := ConvertMarkdown(body, markdownExtensions)
	if err != nil {
		return ParsedContent{}, &ParseError{Path: path, Msg: "markdown conversion failed: " + err.Error(), Err: err}
	}

	return ParsedContent{
		Metadata:   NewContentMetadata(title, date, slug, tags, draft, description),
		Content:    SanitizeHTML(htmlBody),
		RawContent: rawContent,
		Filepath:   path,
	}, nil
}
