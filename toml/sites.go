package toml

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/stash"
)

// siteEntry mirrors one domain table in sites.toml. Every field is
// optional; a domain with no fields set is legal and simply falls back to
// automatic extraction for everything.
type siteEntry struct {
	Title   string `toml:"title"`
	Body    string `toml:"body"`
	Authors string `toml:"authors"`
	Date    string `toml:"date"`
}

// LoadSelectorTable reads sites.toml from the given path. The file consists
// of top-level tables keyed by domain name:
//
//	["example.com"]
//	title = "h1.headline"
//	body = ".content .main"
//
// A missing file yields an empty table: manual selectors are an optional
// refinement, not a requirement.
func LoadSelectorTable(path string) (stash.SelectorTable, error) {
	var entries map[string]siteEntry
	if _, err := toml.DecodeFile(path, &entries); err != nil {
		if os.IsNotExist(err) {
			return stash.SelectorTable{}, nil
		}
		return nil, stash.Errorf(stash.EINVALID, "failed to parse %q: %v", path, err)
	}

	table := make(map[string]stash.FieldSelectors, len(entries))
	for domain, entry := range entries {
		table[domain] = stash.FieldSelectors{
			Title:   entry.Title,
			Body:    entry.Body,
			Authors: entry.Authors,
			Date:    entry.Date,
		}
	}
	return stash.NewSelectorTable(table), nil
}
