// Package toml loads stash configuration files. Two files live in the
// config directory: config.toml (program settings) and sites.toml (the
// per-domain selector table).
package toml

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/stash"
)

// Sink names accepted in config.toml.
const (
	SinkEPUB     = "epub"
	SinkMarkdown = "markdown"
	SinkPush     = "push"
)

// Extraction engine names accepted in config.toml.
const (
	EngineTrafilatura = "trafilatura"
	EngineReadability = "readability"
)

// Remote holds the article-management service settings for the push sink.
type Remote struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

// Config holds program settings loaded from config.toml.
type Config struct {
	OutputDir string `toml:"output_dir"`
	Sink      string `toml:"sink"`
	Engine    string `toml:"engine"`
	Remote    Remote `toml:"remote"`
}

// LoadConfig reads config.toml from the given path, applying defaults for
// unset fields and expanding a leading ~ in the output directory.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		OutputDir: ".",
		Sink:      SinkEPUB,
		Engine:    EngineTrafilatura,
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, stash.Errorf(stash.ENOTFOUND, "config file %q not found", path)
		}
		return nil, stash.Errorf(stash.EINVALID, "failed to parse %q: %v", path, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	cfg.OutputDir = expandHome(cfg.OutputDir)
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Sink {
	case SinkEPUB, SinkMarkdown, SinkPush:
	default:
		return stash.Errorf(stash.EINVALID, "unknown sink %q (expected epub, markdown, or push)", cfg.Sink)
	}

	switch cfg.Engine {
	case EngineTrafilatura, EngineReadability:
	default:
		return stash.Errorf(stash.EINVALID, "unknown engine %q (expected trafilatura or readability)", cfg.Engine)
	}

	if cfg.Sink == SinkPush && cfg.Remote.BaseURL == "" {
		return stash.Errorf(stash.EINVALID, "push sink requires remote.base_url")
	}

	return nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
