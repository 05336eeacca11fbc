package stash

import "context"

// Sink consumes a canonical Article. Implementations include EPUB
// packaging, Markdown files, and pushing to a remote article-management
// service. The dest return value is a human-readable destination (a file
// path or remote location) for reporting.
//
// The extraction pipeline never calls Emit with an article missing both
// title and body. Sink failures are terminal ESINK errors; any retry policy
// lives inside the sink.
type Sink interface {
	Emit(ctx context.Context, article *Article) (dest string, err error)
}
