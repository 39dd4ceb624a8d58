package mock

import "github.com/fwojciec/gamecat"

var _ gamecat.RankExtractor = (*RankExtractor)(nil)

// RankExtractor is a mock implementation of gamecat.RankExtractor.
type RankExtractor struct {
	ExtractFn func(page *gamecat.RawPage) ([]*gamecat.Rank, error)
}

func (e *RankExtractor) Extract(page *gamecat.RawPage) ([]*gamecat.Rank, error) {
	return e.ExtractFn(page)
}

var _ gamecat.EventExtractor = (*EventExtractor)(nil)

// EventExtractor is a mock implementation of gamecat.EventExtractor.
type EventExtractor struct {
	ExtractFn func(page *gamecat.RawPage) (*gamecat.Event, error)
}

func (e *EventExtractor) Extract(page *gamecat.RawPage) (*gamecat.Event, error) {
	return e.ExtractFn(page)
}

var _ gamecat.AnnouncementExtractor = (*AnnouncementExtractor)(nil)

// AnnouncementExtractor is a mock implementation of gamecat.AnnouncementExtractor.
type AnnouncementExtractor struct {
	ExtractFn func(page *gamecat.RawPage) ([]*gamecat.Announcement, error)
}

func (e *AnnouncementExtractor) Extract(page *gamecat.RawPage) ([]*gamecat.Announcement, error) {
	return e.ExtractFn(page)
}
