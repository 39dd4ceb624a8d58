// Package http provides an HTTP-based implementation of gamecat.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/gamecat"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = gamecat.DefaultFetchTimeout

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 10 << 20

// Ensure Fetcher implements gamecat.Fetcher at compile time.
var _ gamecat.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a single GET request.
// It does not execute JavaScript and does not retry.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   gamecat.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to gamecat.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter makes every request wait on the limiter for its host.
func WithLimiter(l gamecat.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: gamecat.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*gamecat.RawPage, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, gamecat.Errorf(gamecat.EINVALID, "invalid URL %q", rawURL)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return nil, gamecat.Errorf(gamecat.ENETWORK, "rate limit wait for %s: %v", rawURL, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, gamecat.Errorf(gamecat.EINVALID, "invalid request for %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, networkError(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, gamecat.Errorf(gamecat.ENETWORK, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, networkError(rawURL, err)
	}

	return &gamecat.RawPage{URL: rawURL, HTML: string(body)}, nil
}

// networkError converts a transport failure into an ENETWORK error,
// keeping the upstream message.
func networkError(rawURL string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return gamecat.Errorf(gamecat.ENETWORK, "timeout fetching %s: %v", rawURL, err)
	}
	return gamecat.Errorf(gamecat.ENETWORK, "fetching %s: %v", rawURL, err)
}
