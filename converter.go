package stash

// Converter converts HTML to Markdown. Used by the Markdown file sink to
// render the article body.
type Converter interface {
	Convert(html string) (string, error)
}
