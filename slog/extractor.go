package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/stash"
)

// Ensure LoggingExtractor implements stash.ArticleExtractor.
var _ stash.ArticleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ArticleExtractor with per-field provenance
// logging, which is the main diagnostic for tuning manual selectors.
type LoggingExtractor struct {
	next   stash.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next stash.ArticleExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractArticle(domain, html string, table stash.SelectorTable) (*stash.Article, error) {
	begin := time.Now()
	article, err := e.next.ExtractArticle(domain, html, table)
	if err != nil {
		e.logger.Error("extraction failed",
			"domain", domain,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	attrs := []any{
		"domain", domain,
		"duration", time.Since(begin),
	}
	for _, f := range stash.Fields() {
		source := article.Provenance[f]
		name := string(source)
		if source == stash.SourceNone {
			name = "(unresolved)"
		}
		attrs = append(attrs, string(f), name)
	}
	e.logger.Info("extracted article", attrs...)

	if warning := article.Warning(); warning != nil {
		e.logger.Warn("partial extraction", "warning", warning.String())
	}

	return article, nil
}
