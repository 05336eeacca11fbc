// Package stash provides a CLI tool for saving readable copies of web
// articles. It fetches a page, extracts the article content (title, body,
// authors, publication date) using either operator-configured CSS selectors
// or automatic heuristic extraction, normalizes the result into a canonical
// record, and emits it through an output sink (EPUB file, Markdown file, or
// push to a remote article-management service).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, sqlite/).
package stash
