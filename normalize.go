package stash

import (
	"strings"
	"time"
)

// dateLayouts are the accepted publication date formats, tried in order.
// Most specific first so "2023-11-05" never half-matches a longer layout.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Normalize cleans and canonicalizes a raw Resolution into an Article. It
// is a pure transformation with no failure mode: fields that are empty
// after cleaning simply end up unresolved on the Article.
func Normalize(res *Resolution) *Article {
	article := &Article{
		SourceDomain: res.Domain,
		Title:        NormalizeTitle(res.Title.Raw),
		Body:         strings.TrimSpace(res.Body.Raw),
		Authors:      SplitAuthors(res.Authors.Raw),
		Provenance: map[Field]Source{
			FieldTitle:   res.Title.Source,
			FieldBody:    res.Body.Source,
			FieldAuthors: res.Authors.Source,
			FieldDate:    res.Date.Source,
		},
	}

	raw := strings.TrimSpace(res.Date.Raw)
	article.PublishedAtRaw = raw
	if t, ok := ParseDate(raw); ok {
		article.PublishedAt = t
	}

	return article
}

// NormalizeTitle trims surrounding whitespace and collapses internal
// whitespace runs to a single space.
func NormalizeTitle(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// SplitAuthors splits a raw byline on the conventional separators (comma
// and ampersand), trims each token, and drops empty ones. Order is
// preserved and duplicates are kept.
func SplitAuthors(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '&'
	})

	var authors []string
	for _, token := range tokens {
		if name := strings.TrimSpace(token); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// ParseDate attempts to parse raw date text against the accepted layouts in
// order; the first layout that parses wins. The second return value is
// false when no layout matches.
func ParseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
