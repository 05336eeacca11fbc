// Package epub packages articles as self-contained EPUB documents.
package epub

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/stash"
	"github.com/go-shiori/go-epub"
	"github.com/gosimple/slug"
)

// Ensure Sink implements stash.Sink at compile time.
var _ stash.Sink = (*Sink)(nil)

// Sink writes each article as an .epub file named after the slugified
// title in the output directory.
type Sink struct {
	dir string
}

// NewSink creates a Sink writing to the given directory.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Emit packages the article and returns the path of the written file.
func (s *Sink) Emit(ctx context.Context, article *stash.Article) (string, error) {
	book, err := epub.NewEpub(article.Title)
	if err != nil {
		return "", stash.Errorf(stash.ESINK, "failed to create epub: %v", err)
	}

	if len(article.Authors) > 0 {
		book.SetAuthor(strings.Join(article.Authors, ", "))
	}
	book.SetDescription(article.URL)

	if _, err := book.AddSection(sectionBody(article), article.Title, "", ""); err != nil {
		return "", stash.Errorf(stash.ESINK, "failed to add content: %v", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", stash.Errorf(stash.ESINK, "failed to create output directory: %v", err)
	}

	path := filepath.Join(s.dir, slugify(article)+".epub")
	if err := book.Write(path); err != nil {
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

// sectionBody renders the chapter markup: a heading, an optional byline and
// date, then the article body HTML.
func sectionBody(article *stash.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(article.Title))
	if len(article.Authors) > 0 {
		fmt.Fprintf(&b, "<p><em>%s</em></p>\n", html.EscapeString(strings.Join(article.Authors, ", ")))
	}
	if !article.PublishedAt.IsZero() {
		fmt.Fprintf(&b, "<p><em>%s</em></p>\n", article.PublishedAt.Format("January 2, 2006"))
	}
	b.WriteString(article.Body)
	return b.String()
}
