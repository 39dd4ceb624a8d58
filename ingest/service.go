// Package ingest drives fetching and extraction of game-information pages.
//
// Single-page operations (ScrapeRanks, ScrapeEvent, ScrapeAnnouncements)
// propagate every failure to the caller. ScrapeMany isolates failures per
// URL, logging and skipping them, and paces requests with a fixed delay.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/gamecat"
)

// Service scrapes ranks, events and announcements.
type Service struct {
	Fetcher       gamecat.Fetcher
	Ranks         gamecat.RankExtractor
	Events        gamecat.EventExtractor
	Announcements gamecat.AnnouncementExtractor

	// RanksURL and AnnouncementsURL are the fixed listing pages.
	RanksURL         string
	AnnouncementsURL string

	// Delay is the pause between items in ScrapeMany.
	Delay time.Duration

	Logger   *slog.Logger
	Progress ProgressFunc
	// Now stamps ScrapedAt on events. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a Service using the URLs and delay from cfg.
// Listing URLs whose base is not configured are left empty.
func NewService(cfg *gamecat.Config, fetcher gamecat.Fetcher, ranks gamecat.RankExtractor, events gamecat.EventExtractor, announcements gamecat.AnnouncementExtractor) *Service {
	ranksURL, _ := cfg.RanksURL()
	announcementsURL, _ := cfg.AnnouncementsURL()
	return &Service{
		Fetcher:          fetcher,
		Ranks:            ranks,
		Events:           events,
		Announcements:    announcements,
		RanksURL:         ranksURL,
		AnnouncementsURL: announcementsURL,
		Delay:            cfg.Batch.Delay,
	}
}

// BatchResult holds the outcome of ScrapeMany.
type BatchResult struct {
	// Events are the successfully extracted events in input order.
	Events    []*gamecat.Event
	Attempted int
	Succeeded int
	Failures  []Failure
}

// Failure records a URL skipped by ScrapeMany.
type Failure struct {
	URL string
	Err error
}

// ProgressEvent reports progress during ScrapeMany.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeRanks fetches the rank listing and extracts every rank.
// The call fails as a whole on any fetch or extraction error.
func (s *Service) ScrapeRanks(ctx context.Context) ([]*gamecat.Rank, error) {
	if s.RanksURL == "" {
		return nil, gamecat.Errorf(gamecat.EINVALID, "ranks URL not configured")
	}
	page, err := s.Fetcher.Fetch(ctx, s.RanksURL)
	if err != nil {
		return nil, fmt.Errorf("fetch ranks: %w", err)
	}
	ranks, err := s.Ranks.Extract(page)
	if err != nil {
		return nil, fmt.Errorf("extract ranks: %w", err)
	}
	return ranks, nil
}

// ScrapeAnnouncements fetches the forum listing and extracts announcements.
// The call fails as a whole on any fetch or extraction error.
func (s *Service) ScrapeAnnouncements(ctx context.Context) ([]*gamecat.Announcement, error) {
	if s.AnnouncementsURL == "" {
		return nil, gamecat.Errorf(gamecat.EINVALID, "announcements URL not configured")
	}
	page, err := s.Fetcher.Fetch(ctx, s.AnnouncementsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch announcements: %w", err)
	}
	items, err := s.Announcements.Extract(page)
	if err != nil {
		return nil, fmt.Errorf("extract announcements: %w", err)
	}
	return items, nil
}

// ScrapeEvent fetches and extracts a single event page. rawURL must be an
// absolute http or https URL.
func (s *Service) ScrapeEvent(ctx context.Context, rawURL string) (*gamecat.Event, error) {
	if !gamecat.IsAbsoluteURL(rawURL) {
		return nil, gamecat.Errorf(gamecat.EINVALID, "invalid event URL %q", rawURL)
	}
	page, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	event, err := s.Events.Extract(page)
	if err != nil {
		return nil, err
	}
	if event.ScrapedAt.IsZero() {
		event.ScrapedAt = s.now().UTC()
	}
	return event, nil
}

// ScrapeMany scrapes urls one at a time, waiting Delay between items.
// Failed items are logged and skipped. If ctx is canceled the batch stops
// and the items collected so far are returned with ctx.Err().
func (s *Service) ScrapeMany(ctx context.Context, urls []string) (*BatchResult, error) {
	logger := s.logger()
	result := &BatchResult{Events: []*gamecat.Event{}}
	total := len(urls)

	s.progress(ProgressEvent{Type: ProgressStarted, Total: total})

	for i, u := range urls {
		if i > 0 && s.Delay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(s.Delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Attempted++
		event, err := s.ScrapeEvent(ctx, u)
		if err != nil {
			logger.Warn("skipping event", "url", u, "err", err)
			result.Failures = append(result.Failures, Failure{URL: u, Err: err})
			s.progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, URL: u, Error: err})
			continue
		}

		result.Events = append(result.Events, event)
		result.Succeeded++
		s.progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, URL: u})
	}

	s.progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	logger.Info("batch complete", "attempted", result.Attempted, "succeeded", result.Succeeded)

	return result, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Service) progress(event ProgressEvent) {
	if s.Progress != nil {
		s.Progress(event)
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
