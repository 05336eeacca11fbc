// Package fs provides a file-based output sink writing articles as
// Markdown documents.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/stash"
	"github.com/gosimple/slug"
)

// Ensure Sink implements stash.Sink at compile time.
var _ stash.Sink = (*Sink)(nil)

// Sink writes each article as a Markdown file with YAML frontmatter, named
// after the slugified title.
type Sink struct {
	dir       string
	converter stash.Converter
}

// NewSink creates a Sink writing to the given directory, rendering body
// HTML with the converter.
func NewSink(dir string, converter stash.Converter) *Sink {
	return &Sink{dir: dir, converter: converter}
}

// Emit writes the article and returns the path of the written file.
func (s *Sink) Emit(ctx context.Context, article *stash.Article) (string, error) {
	markdown, err := s.converter.Convert(article.Body)
	if err != nil {
		return "", stash.Errorf(stash.ESINK, "failed to render body: %v", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", stash.Errorf(stash.ESINK, "failed to create output directory: %v", err)
	}

	path := filepath.Join(s.dir, slugify(article)+".md")
	content := FormatArticle(article, markdown)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", stash.Errorf(stash.ESINK, "failed to write %q: %v", path, err)
	}

	return path, nil
}

// slugify names the output file after the title, falling back to the source
// domain and then the URL when the title is unresolved.
func slugify(article *stash.Article) string {
	for _, candidate := range []string{article.Title, article.SourceDomain, article.URL} {
		if name := slug.Make(candidate); name != "" {
			return name
		}
	}
	return "article"
}

// FormatArticle formats an article with YAML frontmatter followed by the
// rendered Markdown body.
func FormatArticle(article *stash.Article, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(article.Title)
	if len(article.Authors) > 0 {
		b.WriteString("\nauthors: ")
		b.WriteString(strings.Join(article.Authors, ", "))
	}
	if !article.PublishedAt.IsZero() {
		b.WriteString("\npublished: ")
		b.WriteString(article.PublishedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}
