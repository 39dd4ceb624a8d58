package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/gamecat"
)

// Export file names written by JSONStore.Commit.
const (
	RanksFile         = "ranks.json"
	EventsFile        = "events.json"
	AnnouncementsFile = "announcements.json"
)

// Compile-time interface verification.
var (
	_ gamecat.RankWriter         = (*JSONStore)(nil)
	_ gamecat.EventWriter        = (*JSONStore)(nil)
	_ gamecat.AnnouncementWriter = (*JSONStore)(nil)
)

// JSONStore collects records in memory and exports them as JSON arrays with
// atomic update semantics. Commit writes to baseDir/name.tmp and renames it
// to baseDir/name; Abort discards pending records.
type JSONStore struct {
	baseDir string
	name    string

	mu            sync.Mutex
	ranks         []*gamecat.Rank
	events        []*gamecat.Event
	announcements []*gamecat.Announcement
}

// NewJSONStore creates a new JSONStore.
func NewJSONStore(baseDir, name string) *JSONStore {
	return &JSONStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *JSONStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *JSONStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateRank queues a rank for export.
func (s *JSONStore) CreateRank(ctx context.Context, rank *gamecat.Rank) error {
	if err := rank.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranks = append(s.ranks, rank)
	return nil
}

// CreateEvent queues an event for export.
func (s *JSONStore) CreateEvent(ctx context.Context, event *gamecat.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// CreateAnnouncement queues an announcement for export.
func (s *JSONStore) CreateAnnouncement(ctx context.Context, a *gamecat.Announcement) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = append(s.announcements, a)
	return nil
}

// Commit writes all queued records and replaces the export directory.
func (s *JSONStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	files := []struct {
		name string
		v    any
	}{
		{RanksFile, nonNil(s.ranks)},
		{EventsFile, nonNil(s.events)},
		{AnnouncementsFile, nonNil(s.announcements)},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(s.tempDir(), f.name), f.v); err != nil {
			_ = os.RemoveAll(s.tempDir())
			return err
		}
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards queued records and any partially written export.
func (s *JSONStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranks, s.events, s.announcements = nil, nil, nil
	return os.RemoveAll(s.tempDir())
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// nonNil makes empty exports encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
