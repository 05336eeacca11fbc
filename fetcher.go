package stash

import "context"

// Fetcher retrieves raw HTML from a URL. The context controls timeout and
// cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (html string, err error)
}
