package stash

import (
	"net/url"
	"strings"
)

// FieldSelectors holds a domain's manual extraction configuration: an
// optional CSS selector per article field. Any subset may be configured;
// an empty string means the field falls back to automatic extraction.
type FieldSelectors struct {
	Title   string
	Body    string
	Authors string
	Date    string
}

// Selector returns the configured selector for the given field, or the
// empty string if none is configured.
func (s FieldSelectors) Selector(f Field) string {
	switch f {
	case FieldTitle:
		return s.Title
	case FieldBody:
		return s.Body
	case FieldAuthors:
		return s.Authors
	case FieldDate:
		return s.Date
	}
	return ""
}

// Empty reports whether no field has a selector configured.
func (s FieldSelectors) Empty() bool {
	return s == FieldSelectors{}
}

// SelectorTable maps domain names to manual field selectors. It is built
// once at startup and read-only afterwards, so it is safe to share across
// concurrent extractions without locking.
//
// Lookup is exact-match on the domain key (case-insensitive): no subdomain
// wildcards and no URL-path overrides. Operators who need distinct rules
// register distinct domain keys.
type SelectorTable map[string]FieldSelectors

// NewSelectorTable builds a SelectorTable from the given entries,
// normalizing domain keys to lower case.
func NewSelectorTable(entries map[string]FieldSelectors) SelectorTable {
	t := make(SelectorTable, len(entries))
	for domain, selectors := range entries {
		t[strings.ToLower(domain)] = selectors
	}
	return t
}

// Lookup returns the selectors registered for the domain.
func (t SelectorTable) Lookup(domain string) (FieldSelectors, bool) {
	s, ok := t[strings.ToLower(domain)]
	return s, ok
}

// DomainFromURL extracts the lower-cased host portion of a URL, which is
// the key used for selector table lookup.
func DomainFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	return strings.ToLower(host), nil
}
