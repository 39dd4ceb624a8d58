package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/gamecat"
)

// Ensure logging extractors implement their interfaces.
var (
	_ gamecat.RankExtractor         = (*LoggingRankExtractor)(nil)
	_ gamecat.EventExtractor        = (*LoggingEventExtractor)(nil)
	_ gamecat.AnnouncementExtractor = (*LoggingAnnouncementExtractor)(nil)
)

// LoggingRankExtractor wraps a RankExtractor with debug logging.
type LoggingRankExtractor struct {
	next   gamecat.RankExtractor
	logger *slog.Logger
}

// NewLoggingRankExtractor creates a new LoggingRankExtractor.
func NewLoggingRankExtractor(next gamecat.RankExtractor, logger *slog.Logger) *LoggingRankExtractor {
	return &LoggingRankExtractor{next: next, logger: logger}
}

// Extract logs the number of ranks found.
func (e *LoggingRankExtractor) Extract(page *gamecat.RawPage) (ranks []*gamecat.Rank, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract ranks",
			"url", pageURL(page),
			"ranks", len(ranks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}

// LoggingEventExtractor wraps an EventExtractor with debug logging.
type LoggingEventExtractor struct {
	next   gamecat.EventExtractor
	logger *slog.Logger
}

// NewLoggingEventExtractor creates a new LoggingEventExtractor.
func NewLoggingEventExtractor(next gamecat.EventExtractor, logger *slog.Logger) *LoggingEventExtractor {
	return &LoggingEventExtractor{next: next, logger: logger}
}

// Extract logs the extracted title and content size.
func (e *LoggingEventExtractor) Extract(page *gamecat.RawPage) (event *gamecat.Event, err error) {
	defer func(begin time.Time) {
		var title string
		var n int
		if event != nil {
			title, n = event.Title, len(event.Content)
		}
		e.logger.Debug("extract event",
			"url", pageURL(page),
			"title", title,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}

// LoggingAnnouncementExtractor wraps an AnnouncementExtractor with debug logging.
type LoggingAnnouncementExtractor struct {
	next   gamecat.AnnouncementExtractor
	logger *slog.Logger
}

// NewLoggingAnnouncementExtractor creates a new LoggingAnnouncementExtractor.
func NewLoggingAnnouncementExtractor(next gamecat.AnnouncementExtractor, logger *slog.Logger) *LoggingAnnouncementExtractor {
	return &LoggingAnnouncementExtractor{next: next, logger: logger}
}

// Extract logs the number of announcements found.
func (e *LoggingAnnouncementExtractor) Extract(page *gamecat.RawPage) (items []*gamecat.Announcement, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract announcements",
			"url", pageURL(page),
			"announcements", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}

func pageURL(page *gamecat.RawPage) string {
	if page == nil {
		return ""
	}
	return page.URL
}
