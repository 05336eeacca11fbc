package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/stash"
	"github.com/google/uuid"
)

// Ensure Pusher implements stash.Sink at compile time.
var _ stash.Sink = (*Pusher)(nil)

// Pusher submits canonical articles to a remote article-management service.
// Failures are terminal ESINK errors; the service is expected to deduplicate
// retried submissions via the Idempotency-Key header.
type Pusher struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewPusher creates a Pusher for the service at baseURL. The token, if
// non-empty, is sent as a bearer credential.
func NewPusher(baseURL, token string, opts ...Option) *Pusher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	return &Pusher{
		client:  &http.Client{Timeout: f.timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}
}

// articlePayload is the wire shape of a pushed article.
type articlePayload struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Authors     []string `json:"authors,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
}

// Emit pushes the article to the remote service and returns its location.
func (p *Pusher) Emit(ctx context.Context, article *stash.Article) (string, error) {
	payload := articlePayload{
		URL:     article.URL,
		Title:   article.Title,
		Content: article.Body,
		Authors: article.Authors,
	}
	if !article.PublishedAt.IsZero() {
		payload.PublishedAt = article.PublishedAt.Format(time.RFC3339)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", stash.Errorf(stash.ESINK, "failed to encode article: %v", err)
	}

	endpoint := p.baseURL + "/api/articles"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", stash.Errorf(stash.ESINK, "invalid request for %q: %v", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.New().String())
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", stash.Errorf(stash.ESINK, "push to %q failed: %v", endpoint, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", stash.Errorf(stash.ESINK, "push to %q failed: HTTP %d", endpoint, resp.StatusCode)
	}

	if loc := resp.Header.Get("Location"); loc != "" {
		return loc, nil
	}
	return fmt.Sprintf("%s (HTTP %d)", endpoint, resp.StatusCode), nil
}
