package main

import (
	"context"
	"io"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Extraction chain for save and preview.
	Fetcher   stash.Fetcher
	Extractor stash.ArticleExtractor
	Table     stash.SelectorTable
	Pipeline  *pipeline.Pipeline

	// History storage.
	Records stash.RecordService

	// SinkName is the name of the sink the pipeline emits to, for display.
	SinkName string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Save   SaveCmd   `cmd:"" help:"Fetch articles and save them to the configured sink"`
	List   ListCmd   `cmd:"" help:"List stashed articles"`
	Delete DeleteCmd `cmd:"" help:"Delete an article from the stash history"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URLs        []string `arg:"" help:"Article URLs to save"`
	Sink        string   `short:"s" help:"Override the configured sink (epub, markdown, or push)"`
	Output      string   `short:"o" help:"Override the configured output directory"`
	Preview     bool     `short:"p" help:"Show extracted fields without saving"`
	Yes         bool     `short:"y" help:"Skip the confirmation prompt"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Domain string `short:"d" help:"Only show articles from this domain"`
	Limit  int    `default:"50" help:"Maximum number of records to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL string `arg:"" help:"URL of the stashed article to delete"`
}
