package mock

import (
	"context"

	"github.com/fwojciec/gamecat"
)

var _ gamecat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gamecat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*gamecat.RawPage, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*gamecat.RawPage, error) {
	return f.FetchFn(ctx, url)
}

var _ gamecat.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of gamecat.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
