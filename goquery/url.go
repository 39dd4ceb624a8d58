package goquery

import (
	"net/url"
	"strings"
)

// NormalizeURL makes an image or link reference usable outside the page it
// came from. Scheme-relative references get "https:", root-relative ones
// are prefixed with the base origin and other relative references are
// resolved against base. Returns "" for inline and script references, or
// when a relative reference cannot be resolved because base is nil.
func NormalizeURL(raw string, base *url.URL) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || isNonHTTPLink(raw) {
		return ""
	}

	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}

	if strings.HasPrefix(raw, "/") {
		if base == nil || base.Host == "" {
			return raw
		}
		return base.Scheme + "://" + base.Host + raw
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		if ref.Scheme != "http" && ref.Scheme != "https" {
			return ""
		}
		return ref.String()
	}
	if base == nil || base.Host == "" {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// resolveLink resolves an anchor href against base and strips the fragment.
// Returns "" for non-HTTP links.
func resolveLink(base *url.URL, href string) string {
	resolved := NormalizeURL(href, base)
	if resolved == "" || strings.HasPrefix(resolved, "/") {
		return ""
	}
	u, err := url.Parse(resolved)
	if err != nil {
		return ""
	}
	u.Fragment = ""
	return u.String()
}

// isNonHTTPLink checks if a reference is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// parseBase parses a page URL for use as a resolution base. Unparsable
// URLs yield nil.
func parseBase(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil
	}
	return u
}
