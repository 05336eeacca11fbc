package mock

import "github.com/fwojciec/stash"

var _ stash.AutoExtractor = (*AutoExtractor)(nil)

// AutoExtractor is a mock implementation of stash.AutoExtractor.
type AutoExtractor struct {
	ExtractFn      func(html string) (*stash.AutoResult, error)
	ExtractInvoked int
}

func (e *AutoExtractor) Extract(html string) (*stash.AutoResult, error) {
	e.ExtractInvoked++
	return e.ExtractFn(html)
}

var _ stash.SelectorExtractor = (*SelectorExtractor)(nil)

// SelectorExtractor is a mock implementation of stash.SelectorExtractor.
type SelectorExtractor struct {
	SelectTextFn func(html, selector string) (string, error)
	SelectHTMLFn func(html, selector string) (string, error)
}

func (e *SelectorExtractor) SelectText(html, selector string) (string, error) {
	return e.SelectTextFn(html, selector)
}

func (e *SelectorExtractor) SelectHTML(html, selector string) (string, error) {
	return e.SelectHTMLFn(html, selector)
}

var _ stash.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of stash.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(domain, html string, table stash.SelectorTable) (*stash.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(domain, html string, table stash.SelectorTable) (*stash.Article, error) {
	return e.ExtractArticleFn(domain, html, table)
}
