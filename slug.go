package mdsite

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	nonWordASCII   = regexp.MustCompile(`[^\w\s-]`)
	nonWordUnicode = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	hyphenRuns     = regexp.MustCompile(`[-\s]+`)
)

// GenerateSlug turns a title into a URL-safe identifier. It never fails and
// never returns an empty string.
//
// Accented Latin titles are decomposed and folded to ASCII first. If that
// leaves too little to work with, a second pass keeps non-Latin scripts
// (CJK, Arabic, ...) intact. Titles made of nothing but symbols fall back to
// a stable digest so the same title maps to the same slug on every run.
func GenerateSlug(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "untitled"
	}

	ascii := stripToASCII(norm.NFD.String(title))
	slug := cleanSlug(strings.ToLower(ascii), nonWordASCII)
	if len(slug) >= 3 {
		return slug
	}

	slug = cleanSlug(strings.ToLower(title), nonWordUnicode)
	if slug != "" {
		return slug
	}

	sum := sha256.Sum256([]byte(title))
	return "post-" + hex.EncodeToString(sum[:])[:8]
}

// stripToASCII drops every non-ASCII code point. Run after NFD decomposition
// this strips combining marks, so "é" folds to "e".
func stripToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cleanSlug(s string, drop *regexp.Regexp) string {
	s = drop.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
