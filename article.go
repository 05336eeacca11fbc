package stash

import (
	"fmt"
	"strings"
	"time"
)

// Field identifies one of the four extractable article fields. Fields are
// always resolved independently of each other.
type Field string

// Extractable article fields.
const (
	FieldTitle   Field = "title"
	FieldBody    Field = "body"
	FieldAuthors Field = "authors"
	FieldDate    Field = "date"
)

// Fields returns all extractable fields in canonical order.
func Fields() []Field {
	return []Field{FieldTitle, FieldBody, FieldAuthors, FieldDate}
}

// Source records which extraction strategy produced a field value.
type Source string

// Field value provenance.
const (
	// SourceNone marks a field that no strategy could resolve.
	SourceNone Source = ""

	// SourceManual marks a value produced by an operator-configured CSS
	// selector.
	SourceManual Source = "manual"

	// SourceAuto marks a value produced by automatic heuristic extraction.
	SourceAuto Source = "auto"
)

// FieldValue is the raw outcome of resolving a single field: the payload
// plus its provenance. A zero FieldValue (SourceNone) means the field is
// unresolved, which is distinct from a resolved-but-empty value.
type FieldValue struct {
	Source Source
	Raw    string
}

// Resolved reports whether any extraction strategy produced this value.
// A whitespace-only manual match still counts as resolved here; emptiness
// is the Normalizer's concern.
func (v FieldValue) Resolved() bool {
	return v.Source != SourceNone
}

// Resolution holds the raw per-field outcome of resolving one HTML document
// against a domain's selector configuration.
type Resolution struct {
	Domain  string
	Title   FieldValue
	Body    FieldValue
	Authors FieldValue
	Date    FieldValue
}

// Get returns the value resolved for the given field.
func (r *Resolution) Get(f Field) FieldValue {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldBody:
		return r.Body
	case FieldAuthors:
		return r.Authors
	case FieldDate:
		return r.Date
	}
	return FieldValue{}
}

// Set records the value resolved for the given field.
func (r *Resolution) Set(f Field, v FieldValue) {
	switch f {
	case FieldTitle:
		r.Title = v
	case FieldBody:
		r.Body = v
	case FieldAuthors:
		r.Authors = v
	case FieldDate:
		r.Date = v
	}
}

// Article is the canonical, normalized record produced by extraction,
// independent of source markup quirks and ready for any output sink.
// It is created once per extraction and not mutated after normalization.
type Article struct {
	// URL the article was fetched from. Set by the caller that knows it;
	// the core resolves against the domain only.
	URL string

	// SourceDomain is the domain the selector table was resolved against.
	SourceDomain string

	// Title of the article, or empty if unresolved.
	Title string

	// Body is the main content as an HTML fragment, or empty if unresolved.
	Body string

	// Authors holds normalized author names in document order. May be empty
	// without making the article unusable.
	Authors []string

	// PublishedAt is the parsed publication time. The zero value means the
	// date could not be parsed or was not found.
	PublishedAt time.Time

	// PublishedAtRaw preserves the unparsed date text for diagnostics,
	// whether or not parsing succeeded.
	PublishedAtRaw string

	// Provenance records which strategy supplied each field.
	Provenance map[Field]Source
}

// Unresolved returns the fields that could not be resolved, in canonical
// field order.
func (a *Article) Unresolved() []Field {
	var fields []Field
	if a.Title == "" {
		fields = append(fields, FieldTitle)
	}
	if a.Body == "" {
		fields = append(fields, FieldBody)
	}
	if len(a.Authors) == 0 {
		fields = append(fields, FieldAuthors)
	}
	if a.PublishedAt.IsZero() {
		fields = append(fields, FieldDate)
	}
	return fields
}

// Usable reports whether the article meets the minimum bar for emission:
// both title and body resolved. Authors and date are optional.
func (a *Article) Usable() bool {
	return a.Title != "" && a.Body != ""
}

// Warning returns a PartialExtractionWarning listing the unresolved fields,
// or nil if every field resolved.
func (a *Article) Warning() *PartialExtractionWarning {
	fields := a.Unresolved()
	if len(fields) == 0 {
		return nil
	}
	return &PartialExtractionWarning{
		Domain: a.SourceDomain,
		Fields: fields,
	}
}

// PartialExtractionWarning flags an article that was emitted with some
// fields unresolved. It is reported to the caller alongside a usable
// article, never as an error.
type PartialExtractionWarning struct {
	Domain string
	Fields []Field
}

// String formats the warning for display.
func (w *PartialExtractionWarning) String() string {
	names := make([]string, len(w.Fields))
	for i, f := range w.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("unresolved fields for %s: %s", w.Domain, strings.Join(names, ", "))
}
