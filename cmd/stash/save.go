package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/pipeline"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	// Preview mode: extract and print, never emit.
	if c.Preview {
		return c.preview(deps)
	}

	if !c.Yes {
		ok, err := confirm(deps, fmt.Sprintf("Save %d article(s) via the %s sink?", len(c.URLs), deps.SinkName))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(deps.Stdout, "Aborted.")
			return nil
		}
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  saved %s -> %s\n", event.URL, event.Dest)
			if event.Warning != nil {
				fmt.Fprintf(deps.Stderr, "  warning: %s\n", event.Warning)
			}
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, stash.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d article(s), %d failed\n", result.Saved, result.Failed)

	if result.Saved == 0 && result.Failed > 0 {
		return stash.Errorf(stash.EEXTRACT, "no articles could be saved")
	}
	return nil
}

// preview fetches and extracts each URL sequentially, printing the resolved
// fields and their provenance.
func (c *SaveCmd) preview(deps *Dependencies) error {
	for _, url := range c.URLs {
		domain, err := stash.DomainFromURL(url)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", url, stash.ErrorMessage(err))
			continue
		}

		html, err := deps.Fetcher.Fetch(deps.Ctx, url)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", url, stash.ErrorMessage(err))
			continue
		}

		article, err := deps.Extractor.ExtractArticle(domain, html, deps.Table)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", url, stash.ErrorMessage(err))
			continue
		}

		printArticle(deps, article, url)
	}
	return nil
}

// printArticle writes a human-readable summary of the extracted fields.
func printArticle(deps *Dependencies, article *stash.Article, url string) {
	fmt.Fprintf(deps.Stdout, "URL:       %s\n", url)
	fmt.Fprintf(deps.Stdout, "Title:     %s%s\n", article.Title, provenance(article, stash.FieldTitle))
	fmt.Fprintf(deps.Stdout, "Authors:   %s%s\n", strings.Join(article.Authors, ", "), provenance(article, stash.FieldAuthors))
	published := article.PublishedAtRaw
	if !article.PublishedAt.IsZero() {
		published = article.PublishedAt.Format("2006-01-02")
	}
	fmt.Fprintf(deps.Stdout, "Published: %s%s\n", published, provenance(article, stash.FieldDate))
	fmt.Fprintf(deps.Stdout, "Body:      %d bytes%s\n", len(article.Body), provenance(article, stash.FieldBody))
	if warning := article.Warning(); warning != nil {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", warning)
	}
	fmt.Fprintln(deps.Stdout)
}

func provenance(article *stash.Article, f stash.Field) string {
	if source := article.Provenance[f]; source != stash.SourceNone {
		return fmt.Sprintf(" (%s)", source)
	}
	return ""
}

// confirm prompts on stdout and reads a yes/no answer from stdin. Anything
// other than y or yes declines.
func confirm(deps *Dependencies, prompt string) (bool, error) {
	fmt.Fprintf(deps.Stdout, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(deps.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
