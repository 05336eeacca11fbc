package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/epub"
	"github.com/fwojciec/stash/fs"
	"github.com/fwojciec/stash/goquery"
	"github.com/fwojciec/stash/htmltomarkdown"
	stashhttp "github.com/fwojciec/stash/http"
	"github.com/fwojciec/stash/pipeline"
	"github.com/fwojciec/stash/readability"
	stashslog "github.com/fwojciec/stash/slog"
	"github.com/fwojciec/stash/sqlite"
	"github.com/fwojciec/stash/toml"
	"github.com/fwojciec/stash/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config directory holding config.toml and sites.toml. Set before
	// calling Run().
	ConfigDir string

	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the record service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService stash.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigDir: defaultConfigDir(),
		DBPath:    defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("stash"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'stash --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(m.ConfigDir)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STASH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.Records = m.RecordService

	// Wire the extraction chain only for the save command. The selected
	// command comes from the parsed context, so global flags placed before
	// the command name ("stash -v save ...") are handled.
	if cmd, _, _ := strings.Cut(kongCtx.Command(), " "); cmd == "save" {
		if err := m.wireSave(cli, cfg, deps, stderr); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireSave builds the fetch/extract/emit chain from the config and the
// save flags.
func (m *Main) wireSave(cli *CLI, cfg *toml.Config, deps *Dependencies, stderr io.Writer) error {
	logger := newLogger(stderr, cli.Verbose)

	table, err := toml.LoadSelectorTable(filepath.Join(m.ConfigDir, "sites.toml"))
	if err != nil {
		return err
	}

	var auto stash.AutoExtractor
	switch cfg.Engine {
	case toml.EngineReadability:
		auto = readability.NewExtractor()
	default:
		auto = trafilatura.NewExtractor()
	}

	resolver := &stash.Resolver{
		Auto:      auto,
		Selectors: goquery.NewExtractor(),
	}

	deps.Fetcher = stashslog.NewLoggingFetcher(stashhttp.NewFetcher(), logger)
	deps.Extractor = stashslog.NewLoggingExtractor(resolver, logger)
	deps.Table = table

	sinkName := cfg.Sink
	if cli.Save.Sink != "" {
		sinkName = cli.Save.Sink
	}
	outputDir := cfg.OutputDir
	if cli.Save.Output != "" {
		outputDir = cli.Save.Output
	}

	var sink stash.Sink
	switch sinkName {
	case toml.SinkEPUB:
		sink = epub.NewSink(outputDir)
	case toml.SinkMarkdown:
		sink = fs.NewSink(outputDir, htmltomarkdown.NewConverter())
	case toml.SinkPush:
		if cfg.Remote.BaseURL == "" {
			return stash.Errorf(stash.EINVALID, "push sink requires remote.base_url in config.toml")
		}
		sink = stashhttp.NewPusher(cfg.Remote.BaseURL, cfg.Remote.Token)
	default:
		return stash.Errorf(stash.EINVALID, "unknown sink %q (expected epub, markdown, or push)", sinkName)
	}

	deps.SinkName = sinkName
	deps.Pipeline = &pipeline.Pipeline{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Table:       table,
		Sink:        stashslog.NewLoggingSink(sink, logger),
		Records:     m.RecordService,
		RateLimiter: pipeline.NewDomainLimiter(1.0),
		SinkName:    sinkName,
		Concurrency: cli.Save.Concurrency,
	}
	return nil
}

// loadConfig reads config.toml from the config directory. A missing file is
// not an error: every setting has a usable default.
func loadConfig(dir string) (*toml.Config, error) {
	cfg, err := toml.LoadConfig(filepath.Join(dir, "config.toml"))
	if err != nil {
		if stash.ErrorCode(err) == stash.ENOTFOUND {
			return &toml.Config{
				OutputDir: ".",
				Sink:      toml.SinkEPUB,
				Engine:    toml.EngineTrafilatura,
			}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultConfigDir() string {
	if dir := os.Getenv("STASH_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "stash")
}

func defaultDBPath() string {
	if path := os.Getenv("STASH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "stash.db"
	}
	dir := filepath.Join(home, ".stash")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "stash.db")
}
