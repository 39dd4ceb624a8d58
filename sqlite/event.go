package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/gamecat"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ gamecat.EventService = (*EventService)(nil)

const eventColumns = "id, url, title, date, image, content, category, content_hash, scraped_at"

// EventService implements gamecat.EventService using SQLite.
type EventService struct {
	db *DB
}

// NewEventService creates a new EventService.
func NewEventService(db *DB) *EventService {
	return &EventService{db: db}
}

// CreateEvent stores an event keyed by URL. A new event gets a generated
// ID; an existing one keeps its ID and has its fields replaced. ID,
// ContentHash and ScrapedAt are set on the passed event.
func (s *EventService) CreateEvent(ctx context.Context, event *gamecat.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if event.ScrapedAt.IsZero() {
		event.ScrapedAt = time.Now().UTC()
	}
	event.ContentHash = hashContent(event.Content)

	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			date = excluded.date,
			image = excluded.image,
			content = excluded.content,
			category = excluded.category,
			content_hash = excluded.content_hash,
			scraped_at = excluded.scraped_at
		RETURNING id
	`, uuid.New().String(), event.URL, event.Title, event.Date, event.Image, event.Content,
		event.Category, event.ContentHash, timestamp(event.ScrapedAt)).Scan(&id)
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// FindEventByID retrieves an event by ID.
func (s *EventService) FindEventByID(ctx context.Context, id string) (*gamecat.Event, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE id = ?", id)

	event, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, gamecat.Errorf(gamecat.ENOTFOUND, "event not found")
	}
	if err != nil {
		return nil, err
	}

	return event, nil
}

// FindEvents retrieves events matching the filter, most recently scraped first.
func (s *EventService) FindEvents(ctx context.Context, filter gamecat.EventFilter) ([]*gamecat.Event, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + eventColumns + " FROM events WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*gamecat.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// DeleteEvent permanently removes an event.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return gamecat.Errorf(gamecat.ENOTFOUND, "event not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*gamecat.Event, error) {
	var event gamecat.Event
	var scrapedAt string

	if err := row.Scan(&event.ID, &event.URL, &event.Title, &event.Date, &event.Image,
		&event.Content, &event.Category, &event.ContentHash, &scrapedAt); err != nil {
		return nil, err
	}

	var err error
	event.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &event, nil
}
