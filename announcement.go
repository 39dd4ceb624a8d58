package gamecat

import "context"

// MaxAnnouncements caps the number of items taken from one forum listing.
const MaxAnnouncements = 20

// Announcement is a forum thread link taken from a listing page.
type Announcement struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Validate returns an error if the announcement contains invalid fields.
func (a *Announcement) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "announcement URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "announcement title required")
	}
	return nil
}

// AnnouncementExtractor converts a forum listing page into announcements.
type AnnouncementExtractor interface {
	// Extract returns at most MaxAnnouncements items. Rows missing a title
	// or a link are skipped.
	Extract(page *RawPage) ([]*Announcement, error)
}

// AnnouncementWriter writes announcements to storage.
type AnnouncementWriter interface {
	CreateAnnouncement(ctx context.Context, a *Announcement) error
}

// AnnouncementService represents a service for managing announcements.
type AnnouncementService interface {
	// CreateAnnouncement stores an announcement, replacing any with the same URL.
	CreateAnnouncement(ctx context.Context, a *Announcement) error

	// FindAnnouncements retrieves announcements in the order they were first stored.
	FindAnnouncements(ctx context.Context, filter AnnouncementFilter) ([]*Announcement, error)
}

// AnnouncementFilter represents a filter for FindAnnouncements.
type AnnouncementFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
