package ingest

import (
	"context"
	"log/slog"

	"github.com/fwojciec/gamecat"
	"golang.org/x/sync/errgroup"
)

// Counts reports attempted and succeeded items for one record kind.
type Counts struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
}

// IngestResult holds the outcome of a full ingestion run.
type IngestResult struct {
	Ranks         Counts `json:"ranks"`
	Events        Counts `json:"events"`
	Announcements Counts `json:"announcements"`
}

// Ingester runs a full ingestion: ranks and announcements are scraped
// concurrently, then every announcement and extra URL is scraped as an
// event. Records are handed to the writers one at a time; a failed write
// is logged and counted, never fatal.
type Ingester struct {
	Service *Service

	// Writers may be nil, in which case records of that kind are only
	// counted.
	Ranks         gamecat.RankWriter
	Events        gamecat.EventWriter
	Announcements gamecat.AnnouncementWriter

	// NewURLSet creates the set used to deduplicate event URLs in a run.
	// Defaults to an exact in-memory set.
	NewURLSet func() gamecat.URLSet

	Logger *slog.Logger
}

// Ingest performs a full run. Listings whose URL is not configured are
// skipped. A failing listing scrape aborts the run before anything is
// written. If ctx is canceled during the event batch, the counts so far
// are returned with ctx.Err().
func (in *Ingester) Ingest(ctx context.Context, extraURLs []string) (*IngestResult, error) {
	logger := in.logger()

	var ranks []*gamecat.Rank
	var announcements []*gamecat.Announcement

	g, gctx := errgroup.WithContext(ctx)
	if in.Service.RanksURL != "" {
		g.Go(func() error {
			var err error
			ranks, err = in.Service.ScrapeRanks(gctx)
			return err
		})
	}
	if in.Service.AnnouncementsURL != "" {
		g.Go(func() error {
			var err error
			announcements, err = in.Service.ScrapeAnnouncements(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &IngestResult{}

	for _, rank := range ranks {
		result.Ranks.Attempted++
		if err := in.writeRank(ctx, rank); err != nil {
			logger.Warn("skipping rank", "id", rank.ID, "err", err)
			continue
		}
		result.Ranks.Succeeded++
	}

	seen := in.urlSet()
	var urls []string
	for _, a := range announcements {
		result.Announcements.Attempted++
		if err := in.writeAnnouncement(ctx, a); err != nil {
			logger.Warn("skipping announcement", "url", a.URL, "err", err)
		} else {
			result.Announcements.Succeeded++
		}
		if seen.Add(a.URL) {
			urls = append(urls, a.URL)
		}
	}
	for _, u := range extraURLs {
		if seen.Add(u) {
			urls = append(urls, u)
		}
	}

	batch, batchErr := in.Service.ScrapeMany(ctx, urls)
	result.Events.Attempted = batch.Attempted
	for _, event := range batch.Events {
		if err := in.writeEvent(ctx, event); err != nil {
			logger.Warn("skipping event", "url", event.URL, "err", err)
			continue
		}
		result.Events.Succeeded++
	}

	logger.Info("ingest complete",
		"ranks", result.Ranks.Succeeded,
		"announcements", result.Announcements.Succeeded,
		"events", result.Events.Succeeded,
		"events_attempted", result.Events.Attempted,
	)

	return result, batchErr
}

func (in *Ingester) writeRank(ctx context.Context, rank *gamecat.Rank) error {
	if in.Ranks == nil {
		return rank.Validate()
	}
	return in.Ranks.CreateRank(ctx, rank)
}

func (in *Ingester) writeEvent(ctx context.Context, event *gamecat.Event) error {
	if in.Events == nil {
		return event.Validate()
	}
	return in.Events.CreateEvent(ctx, event)
}

func (in *Ingester) writeAnnouncement(ctx context.Context, a *gamecat.Announcement) error {
	if in.Announcements == nil {
		return a.Validate()
	}
	return in.Announcements.CreateAnnouncement(ctx, a)
}

func (in *Ingester) urlSet() gamecat.URLSet {
	if in.NewURLSet == nil {
		return exactSet{}
	}
	return in.NewURLSet()
}

func (in *Ingester) logger() *slog.Logger {
	if in.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return in.Logger
}

// exactSet is a URLSet without false positives.
type exactSet map[string]struct{}

func (s exactSet) Add(url string) bool {
	if _, ok := s[url]; ok {
		return false
	}
	s[url] = struct{}{}
	return true
}
