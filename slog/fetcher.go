// Package slog provides logging decorators for gamecat services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gamecat"
)

// Ensure LoggingFetcher implements gamecat.Fetcher.
var _ gamecat.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   gamecat.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next gamecat.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *gamecat.RawPage, err error) {
	defer func(begin time.Time) {
		var n int
		if page != nil {
			n = len(page.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
