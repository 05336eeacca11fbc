// Package trafilatura provides the primary automatic article extractor.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/stash"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements stash.AutoExtractor at compile time.
var _ stash.AutoExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var bodyHTML string
	if result.ContentNode != nil {
		bodyHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	var dateRaw string
	if !result.Metadata.Date.IsZero() {
		dateRaw = result.Metadata.Date.Format("2006-01-02")
	}

	return &stash.AutoResult{
		Title:    result.Metadata.Title,
		BodyHTML: bodyHTML,
		Authors:  result.Metadata.Author,
		DateRaw:  dateRaw,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
