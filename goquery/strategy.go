// Package goquery implements the rank, event and announcement extractors
// using goquery selections.
//
// Every field is located by an ordered list of strategies ("try selector
// A, else B, else raw text"). Each strategy is a small value that can be
// tested on its own against fixture markup, so the heuristics stay
// auditable as upstream markup drifts.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy extracts one candidate value for a field from a selection.
// It returns "" when it does not apply.
type Strategy interface {
	Name() string
	Extract(sel *goquery.Selection) string
}

// FirstOf runs strategies in order and returns the first non-empty result.
func FirstOf(sel *goquery.Selection, strategies []Strategy) string {
	for _, s := range strategies {
		if v := s.Extract(sel); v != "" {
			return v
		}
	}
	return ""
}

// SelectorText returns the collapsed text of the first descendant matching
// Selector whose text is not blank.
type SelectorText struct {
	Selector string
}

// Name returns the strategy identifier.
func (s SelectorText) Name() string { return "text(" + s.Selector + ")" }

// Extract implements Strategy.
func (s SelectorText) Extract(sel *goquery.Selection) string {
	var out string
	sel.Find(s.Selector).EachWithBreak(func(_ int, match *goquery.Selection) bool {
		out = collapse(match.Text())
		return out == ""
	})
	return out
}

// FirstAttr returns the first non-empty attribute, in Attrs order, of the
// first descendant matching Selector. Values rejected by Skip are ignored.
type FirstAttr struct {
	Selector string
	Attrs    []string
	Skip     func(string) bool
}

// Name returns the strategy identifier.
func (s FirstAttr) Name() string {
	return "attr(" + s.Selector + "[" + strings.Join(s.Attrs, "|") + "])"
}

// Extract implements Strategy.
func (s FirstAttr) Extract(sel *goquery.Selection) string {
	first := sel.Find(s.Selector).First()
	if first.Length() == 0 {
		return ""
	}
	for _, attr := range s.Attrs {
		v, ok := first.Attr(attr)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			continue
		}
		if s.Skip != nil && s.Skip(v) {
			continue
		}
		return v
	}
	return ""
}

// FirstLine returns the first non-empty line of the selection's own
// visible text.
type FirstLine struct{}

// Name returns the strategy identifier.
func (FirstLine) Name() string { return "first-line" }

// Extract implements Strategy.
func (FirstLine) Extract(sel *goquery.Selection) string {
	lines := VisibleLines(sel)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// SelectorChain is a prioritized list of CSS selectors. The first selector
// that matches anything wins.
type SelectorChain []string

// Find returns the matches of the first selector in the chain that matches
// at least one element, or an empty selection.
func (c SelectorChain) Find(sel *goquery.Selection) *goquery.Selection {
	for _, selector := range c {
		if found := sel.Find(selector); found.Length() > 0 {
			return found
		}
	}
	return sel.Slice(0, 0)
}

// isDataURI reports whether v is an inline data: URI, as used by lazy-loading
// placeholders.
func isDataURI(v string) bool {
	return strings.HasPrefix(strings.ToLower(v), "data:")
}

// collapse trims s and replaces internal whitespace runs with single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
