package gamecat

import (
	"context"
	"net/url"
)

// RawPage is fetched markup together with the URL it came from.
type RawPage struct {
	URL  string
	HTML string
}

// Origin returns the scheme and host of the page URL (e.g. "https://example.com").
// Returns an empty string if the URL cannot be parsed or is not absolute.
func (p *RawPage) Origin() string {
	u, err := url.Parse(p.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// Timeouts, DNS failures and non-2xx responses are reported as ENETWORK.
	// Implementations do not retry; retry policy belongs to the caller.
	Fetch(ctx context.Context, url string) (*RawPage, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
