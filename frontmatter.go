package mdsite

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// ExtractFrontMatter splits raw file text into its YAML front-matter block
// and Markdown body.
//
// Only the first two delimiter occurrences take part in the split, so a body
// that itself contains "---" (a horizontal rule, say) is never truncated.
func ExtractFrontMatter(content, path string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, frontMatterDelimiter) {
		return nil, "", parseErrorf(path, "missing front matter (content must start with %q)", frontMatterDelimiter)
	}

	parts := strings.SplitN(content, frontMatterDelimiter, 3)
	if len(parts) < 3 {
		return nil, "", parseErrorf(path, "malformed front matter (missing closing %q)", frontMatterDelimiter)
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &fields); err != nil {
		return nil, "", &ParseError{Path: path, Msg: "invalid YAML syntax: " + err.Error(), Err: err}
	}
	if fields == nil {
		fields = map[string]any{}
	}

	return fields, strings.TrimSpace(parts[2]), nil
}

// ValidateFrontMatter checks the required title and date fields. Type checks
// for the optional fields (tags, draft, description) happen in
// ParseContentFile.
func ValidateFrontMatter(fields map[string]any, path string) error {
	title, ok := fields["title"]
	if !ok {
		return parseErrorf(path, "missing required field 'title'")
	}
	if s, isString := title.(string); !isString || strings.TrimSpace(s) == "" {
		return parseErrorf(path, "field 'title' must be a non-empty string")
	}

	date, ok := fields["date"]
	if !ok {
		return parseErrorf(path, "missing required field 'date'")
	}
	switch date.(type) {
	case string, time.Time:
	default:
		return parseErrorf(path, "field 'date' must be a string (YYYY-MM-DD) or timestamp")
	}

	return nil
}
