package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/stash"
	stashhttp "github.com/fwojciec/stash/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle() *stash.Article {
	return &stash.Article{
		URL:          "https://example.com/articles/1",
		SourceDomain: "example.com",
		Title:        "The Big Story",
		Body:         "<p>Body</p>",
		Authors:      []string{"Jane Doe", "John Smith"},
		PublishedAt:  time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestPusher_Emit(t *testing.T) {
	t.Parallel()

	t.Run("posts canonical fields with auth and idempotency key", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotAuth, gotKey string
		var gotPayload map[string]any
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotKey = r.Header.Get("Idempotency-Key")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotPayload)
			w.Header().Set("Location", "/api/articles/42")
			w.WriteHeader(nethttp.StatusCreated)
		}))
		defer srv.Close()

		p := stashhttp.NewPusher(srv.URL, "secret")
		dest, err := p.Emit(context.Background(), testArticle())

		require.NoError(t, err)
		assert.Equal(t, "/api/articles/42", dest)
		assert.Equal(t, "/api/articles", gotPath)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.NotEmpty(t, gotKey)
		assert.Equal(t, "The Big Story", gotPayload["title"])
		assert.Equal(t, "<p>Body</p>", gotPayload["content"])
		assert.Equal(t, "2023-11-05T00:00:00Z", gotPayload["published_at"])
	})

	t.Run("server error reports ESINK", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
		}))
		defer srv.Close()

		p := stashhttp.NewPusher(srv.URL, "")
		_, err := p.Emit(context.Background(), testArticle())

		require.Error(t, err)
		assert.Equal(t, stash.ESINK, stash.ErrorCode(err))
	})

	t.Run("unreachable service reports ESINK", func(t *testing.T) {
		t.Parallel()

		p := stashhttp.NewPusher("http://127.0.0.1:1", "")
		_, err := p.Emit(context.Background(), testArticle())

		require.Error(t, err)
		assert.Equal(t, stash.ESINK, stash.ErrorCode(err))
	})

	t.Run("omits auth header without token", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(nethttp.StatusCreated)
		}))
		defer srv.Close()

		p := stashhttp.NewPusher(srv.URL, "")
		_, err := p.Emit(context.Background(), testArticle())

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}
