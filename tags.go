package mdsite

import (
	"cmp"
	"slices"
)

// TagCount is one row of the tag index page.
type TagCount struct {
	Tag   string
	Count int
	URL   string
}

// collectPostsByTag groups posts by tag. Tags are already normalized by the
// content parser.
func collectPostsByTag(posts []PostView) map[string][]PostView {
	byTag := make(map[string][]PostView)
	for _, post := range posts {
		for _, tag := range post.Tags {
			byTag[tag] = append(byTag[tag], post)
		}
	}
	return byTag
}

// tagCounts flattens a tag grouping into index rows, most-used tags first,
// ties broken alphabetically.
func tagCounts(byTag map[string][]PostView) []TagCount {
	counts := make([]TagCount, 0, len(byTag))
	for tag, posts := range byTag {
		counts = append(counts, TagCount{Tag: tag, Count: len(posts), URL: TagURL(tag)})
	}
	slices.SortFunc(counts, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	return counts
}

// sortPostsByDate orders posts newest first. The sort is stable so posts
// sharing a date keep their discovery order.
func sortPostsByDate(posts []PostView) []PostView {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b PostView) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}
