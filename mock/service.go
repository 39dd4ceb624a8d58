package mock

import (
	"context"

	"github.com/fwojciec/gamecat"
)

var _ gamecat.RankService = (*RankService)(nil)

// RankService is a mock implementation of gamecat.RankService.
type RankService struct {
	CreateRankFn func(ctx context.Context, rank *gamecat.Rank) error
	FindRanksFn  func(ctx context.Context, filter gamecat.RankFilter) ([]*gamecat.Rank, error)
	DeleteRankFn func(ctx context.Context, id string) error
}

func (s *RankService) CreateRank(ctx context.Context, rank *gamecat.Rank) error {
	return s.CreateRankFn(ctx, rank)
}

func (s *RankService) FindRanks(ctx context.Context, filter gamecat.RankFilter) ([]*gamecat.Rank, error) {
	return s.FindRanksFn(ctx, filter)
}

func (s *RankService) DeleteRank(ctx context.Context, id string) error {
	return s.DeleteRankFn(ctx, id)
}

var _ gamecat.EventService = (*EventService)(nil)

// EventService is a mock implementation of gamecat.EventService.
type EventService struct {
	CreateEventFn   func(ctx context.Context, event *gamecat.Event) error
	FindEventByIDFn func(ctx context.Context, id string) (*gamecat.Event, error)
	FindEventsFn    func(ctx context.Context, filter gamecat.EventFilter) ([]*gamecat.Event, error)
	DeleteEventFn   func(ctx context.Context, id string) error
}

func (s *EventService) CreateEvent(ctx context.Context, event *gamecat.Event) error {
	return s.CreateEventFn(ctx, event)
}

func (s *EventService) FindEventByID(ctx context.Context, id string) (*gamecat.Event, error) {
	return s.FindEventByIDFn(ctx, id)
}

func (s *EventService) FindEvents(ctx context.Context, filter gamecat.EventFilter) ([]*gamecat.Event, error) {
	return s.FindEventsFn(ctx, filter)
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.DeleteEventFn(ctx, id)
}

var _ gamecat.AnnouncementService = (*AnnouncementService)(nil)

// AnnouncementService is a mock implementation of gamecat.AnnouncementService.
type AnnouncementService struct {
	CreateAnnouncementFn func(ctx context.Context, a *gamecat.Announcement) error
	FindAnnouncementsFn  func(ctx context.Context, filter gamecat.AnnouncementFilter) ([]*gamecat.Announcement, error)
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, a *gamecat.Announcement) error {
	return s.CreateAnnouncementFn(ctx, a)
}

func (s *AnnouncementService) FindAnnouncements(ctx context.Context, filter gamecat.AnnouncementFilter) ([]*gamecat.Announcement, error) {
	return s.FindAnnouncementsFn(ctx, filter)
}
