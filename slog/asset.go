package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/gamecat"
)

// Ensure LoggingAssetResolver implements gamecat.AssetResolver.
var _ gamecat.AssetResolver = (*LoggingAssetResolver)(nil)

// LoggingAssetResolver wraps an AssetResolver with debug logging.
type LoggingAssetResolver struct {
	next   gamecat.AssetResolver
	logger *slog.Logger
}

// NewLoggingAssetResolver creates a new LoggingAssetResolver.
func NewLoggingAssetResolver(next gamecat.AssetResolver, logger *slog.Logger) *LoggingAssetResolver {
	return &LoggingAssetResolver{next: next, logger: logger}
}

// Initialize logs index construction and delegates to the wrapped resolver.
func (r *LoggingAssetResolver) Initialize() (err error) {
	defer func(begin time.Time) {
		r.logger.Debug("asset index",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Initialize()
}

// Resolve logs the lookup and its result.
func (r *LoggingAssetResolver) Resolve(name string) string {
	path := r.next.Resolve(name)
	match := path
	if match == "" {
		match = "(none)"
	}
	r.logger.Debug("asset fallback",
		"name", name,
		"path", match,
	)
	return path
}

// Clear delegates to the wrapped resolver.
func (r *LoggingAssetResolver) Clear() {
	r.next.Clear()
}
