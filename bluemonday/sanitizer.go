// Package bluemonday implements gamecat.Sanitizer on top of the bluemonday
// HTML sanitizer.
package bluemonday

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gamecat"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements gamecat.Sanitizer at compile time.
var _ gamecat.Sanitizer = (*Sanitizer)(nil)

// forbiddenTags never survive sanitization, even when a policy lists them.
// Their content is dropped too.
var forbiddenTags = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"frame":    true,
	"frameset": true,
	"object":   true,
	"embed":    true,
	"noscript": true,
	"template": true,
}

// styleProperties are the CSS properties kept inside an allowed style attribute.
var styleProperties = []string{
	"color", "background-color", "text-align", "vertical-align",
	"font-size", "font-style", "font-weight", "text-decoration",
	"width", "height",
}

// Sanitizer cleans HTML with bluemonday policies compiled from
// gamecat.SanitizePolicy values. It is safe for concurrent use.
type Sanitizer struct {
	mu       sync.Mutex
	policies map[string]*bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policies: make(map[string]*bluemonday.Policy)}
}

// Sanitize reduces html to the tags and attributes allowed by policy.
func (s *Sanitizer) Sanitize(html string, policy gamecat.SanitizePolicy) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	if !policy.KeepContent {
		html = dropDisallowed(html, allowedSet(policy.AllowedTags))
	}

	return strings.TrimSpace(s.policy(policy).Sanitize(html))
}

// policy returns the compiled bluemonday policy for p, building it on first use.
func (s *Sanitizer) policy(p gamecat.SanitizePolicy) *bluemonday.Policy {
	key := strings.Join(p.AllowedTags, ",") + "|" + strings.Join(p.AllowedAttributes, ",")

	s.mu.Lock()
	defer s.mu.Unlock()

	if bp, ok := s.policies[key]; ok {
		return bp
	}
	bp := compile(p)
	s.policies[key] = bp
	return bp
}

// compile translates an allow-list into a bluemonday policy.
// No data-* attributes and no on* handlers are ever allowed.
func compile(p gamecat.SanitizePolicy) *bluemonday.Policy {
	bp := bluemonday.NewPolicy()
	bp.AllowStandardURLs()
	for tag := range forbiddenTags {
		bp.SkipElementsContent(tag)
	}

	var tags []string
	for _, tag := range p.AllowedTags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || forbiddenTags[tag] {
			continue
		}
		tags = append(tags, tag)
	}
	bp.AllowElements(tags...)

	var attrs []string
	for _, attr := range p.AllowedAttributes {
		attr = strings.ToLower(strings.TrimSpace(attr))
		switch {
		case attr == "":
		case strings.HasPrefix(attr, "on"), strings.HasPrefix(attr, "data-"):
		case attr == "style":
			bp.AllowStyles(styleProperties...).Globally()
		default:
			attrs = append(attrs, attr)
		}
	}
	if len(attrs) > 0 {
		bp.AllowAttrs(attrs...).Globally()
	}

	return bp
}

// dropDisallowed removes elements outside the allow-list together with
// their subtree.
func dropDisallowed(html string, allowed map[string]bool) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	body := doc.Find("body")
	body.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if !allowed[goquery.NodeName(sel)] {
			sel.Remove()
		}
	})

	out, err := body.Html()
	if err != nil {
		return ""
	}
	return out
}

func allowedSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if !forbiddenTags[tag] {
			set[tag] = true
		}
	}
	return set
}
