package stash

// AutoResult holds the best-effort article fields produced by automatic
// heuristic extraction over a whole document. Empty strings mean the
// heuristic found nothing for that field.
type AutoResult struct {
	// Title extracted from page metadata or headings.
	Title string

	// BodyHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	BodyHTML string

	// Authors is the raw byline text, unsplit.
	Authors string

	// DateRaw is the raw publication date text, unparsed.
	DateRaw string
}

// Get returns the raw value the heuristic produced for the given field.
func (r *AutoResult) Get(f Field) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldBody:
		return r.BodyHTML
	case FieldAuthors:
		return r.Authors
	case FieldDate:
		return r.DateRaw
	}
	return ""
}

// AutoExtractor extracts article content from HTML using document-wide
// heuristics. It processes the whole document holistically, so the
// Resolver invokes it at most once per resolution and slices its result
// per field.
type AutoExtractor interface {
	Extract(html string) (*AutoResult, error)
}

// SelectorExtractor applies a single CSS selector to an HTML document.
//
// Both methods return an ENOTFOUND error when the selector matches nothing
// (informational: it triggers fallback, never surfaces to the user) and an
// EINVALID error when the selector cannot be parsed.
type SelectorExtractor interface {
	// SelectText returns the concatenated text content of the first match.
	SelectText(html, selector string) (string, error)

	// SelectHTML returns the inner HTML of the first match.
	SelectHTML(html, selector string) (string, error)
}

// ArticleExtractor resolves and normalizes one HTML document into a
// canonical Article. Implemented by Resolver; wrapped by logging decorators
// and mocked in tests.
type ArticleExtractor interface {
	ExtractArticle(domain, html string, table SelectorTable) (*Article, error)
}
