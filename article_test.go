package stash_test

import (
	"testing"
	"time"

	"github.com/fwojciec/stash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Unresolved(t *testing.T) {
	t.Parallel()

	t.Run("fully resolved article has no unresolved fields", func(t *testing.T) {
		t.Parallel()

		a := &stash.Article{
			Title:       "T",
			Body:        "<p>B</p>",
			Authors:     []string{"Jane Doe"},
			PublishedAt: time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
		}

		assert.Empty(t, a.Unresolved())
		assert.Nil(t, a.Warning())
		assert.True(t, a.Usable())
	})

	t.Run("missing optional fields flag a warning without breaking usability", func(t *testing.T) {
		t.Parallel()

		a := &stash.Article{SourceDomain: "example.com", Title: "T", Body: "B"}

		assert.True(t, a.Usable())
		warning := a.Warning()
		require.NotNil(t, warning)
		assert.Equal(t, []stash.Field{stash.FieldAuthors, stash.FieldDate}, warning.Fields)
		assert.Equal(t, "example.com", warning.Domain)
	})
}

func TestPartialExtractionWarning_String(t *testing.T) {
	t.Parallel()

	w := &stash.PartialExtractionWarning{
		Domain: "example.com",
		Fields: []stash.Field{stash.FieldAuthors, stash.FieldDate},
	}

	assert.Equal(t, "unresolved fields for example.com: authors, date", w.String())
}

func TestDomainFromURL(t *testing.T) {
	t.Parallel()

	t.Run("extracts lower-cased host", func(t *testing.T) {
		t.Parallel()

		domain, err := stash.DomainFromURL("https://Example.COM/articles/1?x=y")

		require.NoError(t, err)
		assert.Equal(t, "example.com", domain)
	})

	t.Run("strips port", func(t *testing.T) {
		t.Parallel()

		domain, err := stash.DomainFromURL("http://example.com:8080/a")

		require.NoError(t, err)
		assert.Equal(t, "example.com", domain)
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := stash.DomainFromURL("/relative/path")

		require.Error(t, err)
		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})
}

func TestSelectorTable_Lookup(t *testing.T) {
	t.Parallel()

	table := stash.NewSelectorTable(map[string]stash.FieldSelectors{
		"Example.com": {Body: ".content .main"},
	})

	s, ok := table.Lookup("example.COM")
	require.True(t, ok)
	assert.Equal(t, ".content .main", s.Selector(stash.FieldBody))
	assert.Empty(t, s.Selector(stash.FieldTitle))

	_, ok = table.Lookup("other.com")
	assert.False(t, ok)
}
