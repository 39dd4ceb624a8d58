package gamecat

import (
	"context"
	"time"
)

// EventCategory is the fixed classification of records produced by the
// event extractor.
const EventCategory = "event"

// DefaultEventTitle is used when an event page has no heading.
const DefaultEventTitle = "Untitled Event"

// Event represents a scraped event or announcement detail page.
type Event struct {
	ID       string `json:"id,omitempty"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Image    string `json:"image,omitempty"`
	Content  string `json:"content"` // Sanitized HTML
	Category string `json:"category"`

	ContentHash string    `json:"contentHash,omitempty"`
	ScrapedAt   time.Time `json:"scrapedAt,omitzero"`
}

// Validate returns an error if the event contains invalid fields.
func (e *Event) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "event URL required")
	}
	if e.Title == "" {
		return Errorf(EINVALID, "event title required")
	}
	if e.Content == "" {
		return Errorf(EINVALID, "event content required")
	}
	return nil
}

// EventExtractor converts an event detail page into an event record.
type EventExtractor interface {
	// Extract never returns an event with empty content. It fails with
	// EEXTRACT when no content can be assembled even via fallbacks.
	Extract(page *RawPage) (*Event, error)
}

// EventWriter writes events to storage.
type EventWriter interface {
	CreateEvent(ctx context.Context, event *Event) error
}

// EventService represents a service for managing events.
type EventService interface {
	// CreateEvent stores an event. An event with the same URL is updated
	// in place and keeps its ID.
	CreateEvent(ctx context.Context, event *Event) error

	// FindEventByID retrieves an event by ID.
	// Returns ENOTFOUND if event does not exist.
	FindEventByID(ctx context.Context, id string) (*Event, error)

	// FindEvents retrieves events matching the filter.
	FindEvents(ctx context.Context, filter EventFilter) ([]*Event, error)

	// DeleteEvent permanently removes an event.
	// Returns ENOTFOUND if event does not exist.
	DeleteEvent(ctx context.Context, id string) error
}

// EventFilter represents a filter for FindEvents.
type EventFilter struct {
	ID       *string `json:"id"`
	URL      *string `json:"url"`
	Category *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
