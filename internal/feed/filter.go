// Package feed derives what a post list renders: the filtered subset, the
// selectable tags and plain-text excerpts. Everything here is recomputed
// from the loaded collection on each call.
package feed

import (
	"html"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"blogapi/internal/models"
)

// Filter returns the posts that match both the free-text query and the
// selected tag, in their original order. Empty criteria match everything.
func Filter(posts []models.Post, query, tag string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if Matches(p, query, tag) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p passes both criteria. The query is a
// case-insensitive substring of title, subtitle or content. The tag is a
// case-insensitive substring of the raw tags string.
func Matches(p models.Post, query, tag string) bool {
	return matchesText(p, query) && matchesTag(p, tag)
}

func matchesText(p models.Post, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return containsFold(p.Title, q) || containsFold(p.SubtitleText(), q) || containsFold(p.Content, q)
}

func matchesTag(p models.Post, tag string) bool {
	if tag == "" {
		return true
	}
	if p.Tags == nil || *p.Tags == "" {
		return false
	}
	return containsFold(*p.Tags, strings.ToLower(tag))
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// UniqueTags collects every trimmed, non-empty tag across posts once, in
// order of first appearance.
func UniqueTags(posts []models.Post) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range posts {
		for _, tag := range p.TagList() {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// TopTags returns at most n of the post's tags for compact display.
func TopTags(p models.Post, n int) []string {
	tags := p.TagList()
	if len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

var (
	stripOnce   sync.Once
	stripPolicy *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	stripOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// PlainText strips all markup from content and collapses whitespace.
func PlainText(content string) string {
	// keep words in adjacent elements apart
	spaced := strings.ReplaceAll(content, "<", " <")
	text := html.UnescapeString(strictPolicy().Sanitize(spaced))
	return strings.Join(strings.Fields(text), " ")
}

// Excerpt returns the plain text of content cut to n runes, with "..."
// appended when something was cut.
func Excerpt(content string, n int) string {
	text := PlainText(content)
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:n]), " ") + "..."
}
