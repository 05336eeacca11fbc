// Package readability provides an alternate automatic article extractor.
package readability

import (
	"strings"

	"github.com/fwojciec/stash"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements stash.AutoExtractor at compile time.
var _ stash.AutoExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content from HTML.
// Selectable instead of the trafilatura engine via configuration.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the best-effort article fields.
func (e *Extractor) Extract(rawHTML string) (*stash.AutoResult, error) {
	if rawHTML == "" {
		return nil, stash.Errorf(stash.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	var dateRaw string
	if article.PublishedTime != nil {
		dateRaw = article.PublishedTime.Format("2006-01-02")
	}

	return &stash.AutoResult{
		Title:    article.Title,
		BodyHTML: article.Content,
		Authors:  article.Byline,
		DateRaw:  dateRaw,
	}, nil
}
