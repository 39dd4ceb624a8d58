package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/gamecat"
)

// Compile-time interface verification.
var _ gamecat.AnnouncementService = (*AnnouncementService)(nil)

// AnnouncementService implements gamecat.AnnouncementService using SQLite.
type AnnouncementService struct {
	db *DB
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(db *DB) *AnnouncementService {
	return &AnnouncementService{db: db}
}

// CreateAnnouncement stores an announcement, replacing any with the same URL.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, a *gamecat.Announcement) error {
	if err := a.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO announcements (url, title, scraped_at)
		VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			scraped_at = excluded.scraped_at
	`, a.URL, a.Title, timestamp(time.Now()))

	return err
}

// FindAnnouncements retrieves announcements matching the filter in the
// order they were first stored.
func (s *AnnouncementService) FindAnnouncements(ctx context.Context, filter gamecat.AnnouncementFilter) ([]*gamecat.Announcement, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT url, title FROM announcements WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY rowid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*gamecat.Announcement
	for rows.Next() {
		var a gamecat.Announcement
		if err := rows.Scan(&a.URL, &a.Title); err != nil {
			return nil, err
		}
		announcements = append(announcements, &a)
	}

	return announcements, rows.Err()
}
