// Package pipeline orchestrates article extraction end to end: fetch,
// resolve, normalize, emit, record. Each URL is processed independently;
// a failed URL never aborts the rest of a batch.
package pipeline

import (
	"context"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/stash"
	"golang.org/x/sync/errgroup"
)

// Pipeline coordinates the extraction of one or more URLs. The selector
// table is read-only, so a single Pipeline is safe for concurrent batches.
type Pipeline struct {
	Fetcher     stash.Fetcher
	Extractor   stash.ArticleExtractor
	Table       stash.SelectorTable
	Sink        stash.Sink
	Records     stash.RecordService // optional history
	RateLimiter stash.DomainLimiter // optional
	SinkName    string
	Concurrency int
}

// Result holds the outcome of a batch.
type Result struct {
	Saved  int
	Failed int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress as URLs are processed.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Dest      string
	Warning   *stash.PartialExtractionWarning
	Error     error
}

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// urlResult holds the outcome of processing a single URL.
type urlResult struct {
	url     string
	dest    string
	warning *stash.PartialExtractionWarning
	err     error
}

// Run processes the given URLs and returns the batch result. The progress
// callback, if provided, receives events as processing proceeds. Only a
// canceled context aborts the batch; per-URL failures are reported through
// progress events and the Failed count.
func (p *Pipeline) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	resultCh := make(chan urlResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, url := range urls {
			g.Go(func() error {
				dest, warning, err := p.processURL(gctx, url)
				resultCh <- urlResult{url: url, dest: dest, warning: warning, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{}
	completed := 0
	for r := range resultCh {
		completed++
		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     len(urls),
					URL:       r.url,
					Error:     r.err,
				})
			}
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     len(urls),
				URL:       r.url,
				Dest:      r.dest,
				Warning:   r.warning,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(urls)})
	}
	return result, nil
}

// processURL runs the full chain for one URL.
func (p *Pipeline) processURL(ctx context.Context, url string) (string, *stash.PartialExtractionWarning, error) {
	domain, err := stash.DomainFromURL(url)
	if err != nil {
		return "", nil, err
	}

	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, domain); err != nil {
			return "", nil, err
		}
	}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", nil, err
	}

	article, err := p.Extractor.ExtractArticle(domain, html, p.Table)
	if err != nil {
		return "", nil, err
	}
	article.URL = url

	dest, err := p.Sink.Emit(ctx, article)
	if err != nil {
		return "", nil, err
	}

	if p.Records != nil {
		record := &stash.Record{
			URL:         url,
			Domain:      domain,
			Title:       article.Title,
			Sink:        p.SinkName,
			Destination: dest,
			BodyHash:    hashContent(article.Body),
		}
		if err := p.Records.CreateRecord(ctx, record); err != nil {
			return "", nil, err
		}
	}

	return dest, article.Warning(), nil
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
