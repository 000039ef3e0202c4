package mdsite

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds the site-wide settings from config.yaml. Immutable for
// the duration of a build.
type SiteConfig struct {
	SiteName           string
	BaseURL            string
	Author             string
	Timezone           string
	OutputDir          string
	PostsPerPage       int
	Description        string
	Keywords           []string
	MarkdownExtensions []string
}

var requiredConfigFields = []string{"site_name", "base_url", "author"}

// LoadSiteConf reads and validates the site configuration.
//
// A missing file surfaces as the os not-found error, unwrapped. Violations
// of the three required fields are collected and reported in one combined
// error so several mistakes cost one round-trip, not three.
func LoadSiteConf(path string) (*SiteConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("configuration file %s is empty or invalid", path)
	}

	var violations []string
	for _, field := range requiredConfigFields {
		value, ok := fields[field]
		switch {
		case !ok:
			violations = append(violations, field+" is missing")
		case value == nil:
			violations = append(violations, field+" is null")
		default:
			if s, isString := value.(string); !isString {
				violations = append(violations, fmt.Sprintf("%s must be a string, got %T", field, value))
			} else if strings.TrimSpace(s) == "" {
				violations = append(violations, field+" is empty")
			}
		}
	}
	if len(violations) > 0 {
		return nil, fmt.Errorf("invalid required config fields: %s", strings.Join(violations, ", "))
	}

	conf := &SiteConfig{
		SiteName:     fields["site_name"].(string),
		BaseURL:      fields["base_url"].(string),
		Author:       fields["author"].(string),
		Timezone:     "UTC",
		OutputDir:    "site",
		PostsPerPage: 10,
	}

	base, err := url.Parse(conf.BaseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("base_url must be an absolute http(s) URL, got %q", conf.BaseURL)
	}

	if value, ok := fields["timezone"]; ok && value != nil {
		name, isString := value.(string)
		if !isString {
			return nil, fmt.Errorf("timezone must be a string, got %T", value)
		}
		if _, err := time.LoadLocation(name); err != nil {
			return nil, fmt.Errorf("timezone %q is not a valid IANA zone name", name)
		}
		conf.Timezone = name
	}

	if value, ok := fields["output_dir"]; ok && value != nil {
		dir, isString := value.(string)
		if !isString || strings.TrimSpace(dir) == "" {
			return nil, fmt.Errorf("output_dir must be a non-empty string, got %v", value)
		}
		conf.OutputDir = dir
	}

	if value, ok := fields["posts_per_page"]; ok && value != nil {
		n, isInt := value.(int)
		if !isInt || n <= 0 {
			return nil, fmt.Errorf("posts_per_page must be a positive integer, got %v", value)
		}
		conf.PostsPerPage = n
	}

	if value, ok := fields["description"]; ok && value != nil {
		if s, isString := value.(string); isString {
			conf.Description = s
		}
	}
	conf.Keywords = stringList(fields["keywords"])
	conf.MarkdownExtensions = stringList(fields["markdown_extensions"])

	return conf, nil
}

// stringList extracts the string items of a YAML sequence value.
func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			out = append(out, s)
		}
	}
	return out
}
