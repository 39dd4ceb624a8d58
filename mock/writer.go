package mock

import (
	"context"

	"github.com/fwojciec/gamecat"
)

var _ gamecat.RankWriter = (*RankWriter)(nil)

// RankWriter is a mock implementation of gamecat.RankWriter.
type RankWriter struct {
	CreateRankFn func(ctx context.Context, rank *gamecat.Rank) error
}

func (w *RankWriter) CreateRank(ctx context.Context, rank *gamecat.Rank) error {
	return w.CreateRankFn(ctx, rank)
}

var _ gamecat.EventWriter = (*EventWriter)(nil)

// EventWriter is a mock implementation of gamecat.EventWriter.
type EventWriter struct {
	CreateEventFn func(ctx context.Context, event *gamecat.Event) error
}

func (w *EventWriter) CreateEvent(ctx context.Context, event *gamecat.Event) error {
	return w.CreateEventFn(ctx, event)
}

var _ gamecat.AnnouncementWriter = (*AnnouncementWriter)(nil)

// AnnouncementWriter is a mock implementation of gamecat.AnnouncementWriter.
type AnnouncementWriter struct {
	CreateAnnouncementFn func(ctx context.Context, a *gamecat.Announcement) error
}

func (w *AnnouncementWriter) CreateAnnouncement(ctx context.Context, a *gamecat.Announcement) error {
	return w.CreateAnnouncementFn(ctx, a)
}
