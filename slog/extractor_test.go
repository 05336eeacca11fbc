package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/mock"
	stashslog "github.com/fwojciec/stash/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingExtractor_LogsProvenance(t *testing.T) {
	t.Parallel()

	next := &mock.ArticleExtractor{
		ExtractArticleFn: func(domain, html string, table stash.SelectorTable) (*stash.Article, error) {
			return &stash.Article{
				SourceDomain: domain,
				Title:        "T",
				Body:         "B",
				Provenance: map[stash.Field]stash.Source{
					stash.FieldTitle: stash.SourceManual,
					stash.FieldBody:  stash.SourceAuto,
				},
			}, nil
		},
	}

	var buf bytes.Buffer
	ext := stashslog.NewLoggingExtractor(next, testLogger(&buf))

	article, err := ext.ExtractArticle("example.com", "<html></html>", stash.SelectorTable{})

	require.NoError(t, err)
	require.NotNil(t, article)
	out := buf.String()
	assert.Contains(t, out, "extracted article")
	assert.Contains(t, out, "title=manual")
	assert.Contains(t, out, "body=auto")
	assert.Contains(t, out, "domain=example.com")
}

func TestLoggingExtractor_LogsPartialWarning(t *testing.T) {
	t.Parallel()

	next := &mock.ArticleExtractor{
		ExtractArticleFn: func(domain, html string, table stash.SelectorTable) (*stash.Article, error) {
			return &stash.Article{SourceDomain: domain, Title: "T", Body: "B"}, nil
		},
	}

	var buf bytes.Buffer
	ext := stashslog.NewLoggingExtractor(next, testLogger(&buf))

	_, err := ext.ExtractArticle("example.com", "<html></html>", stash.SelectorTable{})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "partial extraction")
}

func TestLoggingExtractor_LogsFailure(t *testing.T) {
	t.Parallel()

	next := &mock.ArticleExtractor{
		ExtractArticleFn: func(domain, html string, table stash.SelectorTable) (*stash.Article, error) {
			return nil, stash.Errorf(stash.EEXTRACT, "no usable content for domain %q: missing title, body", domain)
		},
	}

	var buf bytes.Buffer
	ext := stashslog.NewLoggingExtractor(next, testLogger(&buf))

	_, err := ext.ExtractArticle("example.com", "<html></html>", stash.SelectorTable{})

	require.Error(t, err)
	assert.Contains(t, buf.String(), "extraction failed")
}
