package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads settings with defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "config.toml", `output_dir = "/tmp/articles"`)

		cfg, err := toml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/articles", cfg.OutputDir)
		assert.Equal(t, toml.SinkEPUB, cfg.Sink)
		assert.Equal(t, toml.EngineTrafilatura, cfg.Engine)
	})

	t.Run("loads remote settings for push sink", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "config.toml", `
sink = "push"

[remote]
base_url = "https://read.example.net"
token = "secret"
`)

		cfg, err := toml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, toml.SinkPush, cfg.Sink)
		assert.Equal(t, "https://read.example.net", cfg.Remote.BaseURL)
		assert.Equal(t, "secret", cfg.Remote.Token)
	})

	t.Run("rejects unknown sink", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "config.toml", `sink = "carrier-pigeon"`)

		_, err := toml.LoadConfig(path)

		require.Error(t, err)
		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})

	t.Run("rejects push sink without base URL", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "config.toml", `sink = "push"`)

		_, err := toml.LoadConfig(path)

		require.Error(t, err)
		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})

	t.Run("missing file reports ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := toml.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))

		require.Error(t, err)
		assert.Equal(t, stash.ENOTFOUND, stash.ErrorCode(err))
	})
}

func TestLoadSelectorTable(t *testing.T) {
	t.Parallel()

	t.Run("loads domain tables with partial selectors", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "sites.toml", `
["example.com"]
title = "h1.headline"
body = ".content .main"

["blog.example.org"]
body = "article"
authors = ".byline"
date = "time.published"
`)

		table, err := toml.LoadSelectorTable(path)

		require.NoError(t, err)

		s, ok := table.Lookup("example.com")
		require.True(t, ok)
		assert.Equal(t, "h1.headline", s.Title)
		assert.Equal(t, ".content .main", s.Body)
		assert.Empty(t, s.Authors)

		s, ok = table.Lookup("blog.example.org")
		require.True(t, ok)
		assert.Equal(t, "article", s.Body)
		assert.Equal(t, "time.published", s.Date)
	})

	t.Run("missing file yields empty table", func(t *testing.T) {
		t.Parallel()

		table, err := toml.LoadSelectorTable(filepath.Join(t.TempDir(), "absent.toml"))

		require.NoError(t, err)
		assert.Empty(t, table)
	})

	t.Run("malformed file reports EINVALID", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "sites.toml", `not valid toml [`)

		_, err := toml.LoadSelectorTable(path)

		require.Error(t, err)
		assert.Equal(t, stash.EINVALID, stash.ErrorCode(err))
	})
}
