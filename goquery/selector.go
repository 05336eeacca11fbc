// Package goquery implements manual field extraction with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/stash"
)

// Ensure Extractor implements stash.SelectorExtractor at compile time.
var _ stash.SelectorExtractor = (*Extractor)(nil)

// Extractor applies operator-configured CSS selectors to HTML documents.
// Selectors are compiled explicitly with cascadia so that an unparseable
// selector reports EINVALID instead of silently matching nothing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// SelectText returns the concatenated text content of the first element
// matching the selector.
func (e *Extractor) SelectText(html, selector string) (string, error) {
	sel, err := e.first(html, selector)
	if err != nil {
		return "", err
	}
	return sel.Text(), nil
}

// SelectHTML returns the inner HTML of the first element matching the
// selector.
func (e *Extractor) SelectHTML(html, selector string) (string, error) {
	sel, err := e.first(html, selector)
	if err != nil {
		return "", err
	}
	inner, err := sel.Html()
	if err != nil {
		return "", err
	}
	return inner, nil
}

// first parses the document and returns the first match for the selector.
func (e *Extractor) first(html, selector string) (*goquery.Selection, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, stash.Errorf(stash.EINVALID, "invalid selector %q: %v", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, stash.Errorf(stash.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.FindMatcher(matcher).First()
	if sel.Length() == 0 {
		return nil, stash.Errorf(stash.ENOTFOUND, "no match for selector %q", selector)
	}
	return sel, nil
}
