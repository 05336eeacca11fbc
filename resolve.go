package stash

import "strings"

// Ensure Resolver implements ArticleExtractor at compile time.
var _ ArticleExtractor = (*Resolver)(nil)

// Resolver is the extraction resolution engine. For each article field it
// decides between an operator-configured CSS selector and automatic
// heuristic extraction, independently per field:
//
//  1. If the domain has a selector configured for the field, apply it. A
//     match wins outright, even when the matched content is whitespace-only
//     (the operator's explicit choice is authoritative; emptiness is caught
//     downstream by the Normalizer). A miss falls through; manual
//     configuration is a preference, not a guarantee.
//  2. Otherwise take the automatic extractor's value for the field. The
//     automatic extractor runs at most once per resolution; its result is
//     cached and sliced per field.
//  3. If neither strategy produced a value, the field stays unresolved.
//
// The Resolver holds no cross-call state: concurrent resolutions over a
// shared read-only SelectorTable are safe.
type Resolver struct {
	Auto      AutoExtractor
	Selectors SelectorExtractor
}

// Resolve combines manual and automatic extraction into a raw per-field
// Resolution. It degrades field-by-field to unresolved rather than failing;
// the only error it returns is EINVALID for a selector that cannot be
// parsed, which is an operator configuration mistake worth surfacing.
func (r *Resolver) Resolve(domain, html string, table SelectorTable) (*Resolution, error) {
	selectors, _ := table.Lookup(domain)
	res := &Resolution{Domain: domain}

	// Lazy, at-most-once automatic extraction. A heuristic failure is not
	// an error at this layer: every field degrades to its manual result or
	// to unresolved.
	var auto *AutoResult
	var autoDone bool
	autoValue := func(f Field) string {
		if !autoDone {
			autoDone = true
			result, err := r.Auto.Extract(html)
			if err == nil {
				auto = result
			}
		}
		if auto == nil {
			return ""
		}
		return auto.Get(f)
	}

	for _, f := range Fields() {
		if sel := selectors.Selector(f); sel != "" {
			value, err := r.selectField(f, html, sel)
			if err == nil {
				res.Set(f, FieldValue{Source: SourceManual, Raw: value})
				continue
			}
			if ErrorCode(err) != ENOTFOUND {
				return nil, err
			}
			// No match: fall through to automatic extraction.
		}

		if value := autoValue(f); value != "" {
			res.Set(f, FieldValue{Source: SourceAuto, Raw: value})
		}
	}

	return res, nil
}

// selectField applies a manual selector for one field. The body keeps its
// markup; all other fields are plain text.
func (r *Resolver) selectField(f Field, html, selector string) (string, error) {
	if f == FieldBody {
		return r.Selectors.SelectHTML(html, selector)
	}
	return r.Selectors.SelectText(html, selector)
}

// ExtractArticle resolves the document and normalizes the result into a
// canonical Article. It returns an EEXTRACT error naming the domain and the
// missing required fields when both title and body are unresolved after
// normalization; such a document is not actionable and must not reach an
// output sink. An article with at least one of title/body resolved is
// returned with its Warning() listing whatever stayed unresolved.
func (r *Resolver) ExtractArticle(domain, html string, table SelectorTable) (*Article, error) {
	res, err := r.Resolve(domain, html, table)
	if err != nil {
		return nil, err
	}

	article := Normalize(res)
	if article.Title == "" && article.Body == "" {
		missing := strings.Join([]string{string(FieldTitle), string(FieldBody)}, ", ")
		return nil, Errorf(EEXTRACT, "no usable content for domain %q: missing %s", domain, missing)
	}

	return article, nil
}
