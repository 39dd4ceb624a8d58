package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/gamecat"
	"github.com/fwojciec/gamecat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic JSON Export
// Records are queued in memory and written to a temp directory on commit

func readJSON[T any](t *testing.T, path string) T {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestJSONStore_CommitWritesAllExports(t *testing.T) {
	t.Parallel()

	// Given a store with one record of each kind
	base := t.TempDir()
	store := fs.NewJSONStore(base, "catalog")
	ctx := context.Background()

	require.NoError(t, store.CreateRank(ctx, &gamecat.Rank{ID: "rank-0", Name: "Private", Requirements: ""}))
	require.NoError(t, store.CreateEvent(ctx, &gamecat.Event{
		URL:      "https://game.example.com/events/1",
		Title:    "Double XP",
		Date:     "2026-10-01",
		Content:  "<p>All weekend</p>",
		Category: gamecat.EventCategory,
	}))
	require.NoError(t, store.CreateAnnouncement(ctx, &gamecat.Announcement{URL: "https://forum.example.com/t/1", Title: "Patch"}))

	// When I commit
	require.NoError(t, store.Commit())

	// Then each export is in the final directory
	ranks := readJSON[[]gamecat.Rank](t, filepath.Join(base, "catalog", fs.RanksFile))
	require.Len(t, ranks, 1)
	assert.Equal(t, "Private", ranks[0].Name)

	events := readJSON[[]gamecat.Event](t, filepath.Join(base, "catalog", fs.EventsFile))
	require.Len(t, events, 1)
	assert.Equal(t, "Double XP", events[0].Title)
	assert.Equal(t, gamecat.EventCategory, events[0].Category)

	anns := readJSON[[]gamecat.Announcement](t, filepath.Join(base, "catalog", fs.AnnouncementsFile))
	require.Len(t, anns, 1)
	assert.Equal(t, "https://forum.example.com/t/1", anns[0].URL)

	// And the temp directory is gone
	_, err := os.Stat(filepath.Join(base, "catalog.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestJSONStore_EmptyExportsAreArrays(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewJSONStore(base, "catalog")

	require.NoError(t, store.Commit())

	data, err := os.ReadFile(filepath.Join(base, "catalog", fs.EventsFile))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestJSONStore_CommitReplacesPreviousExport(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	ctx := context.Background()

	first := fs.NewJSONStore(base, "catalog")
	require.NoError(t, first.CreateRank(ctx, &gamecat.Rank{ID: "rank-0", Name: "Old"}))
	require.NoError(t, first.Commit())

	second := fs.NewJSONStore(base, "catalog")
	require.NoError(t, second.CreateRank(ctx, &gamecat.Rank{ID: "rank-0", Name: "New"}))
	require.NoError(t, second.Commit())

	ranks := readJSON[[]gamecat.Rank](t, filepath.Join(base, "catalog", fs.RanksFile))
	require.Len(t, ranks, 1)
	assert.Equal(t, "New", ranks[0].Name)
}

func TestJSONStore_AbortDiscardsRecords(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	ctx := context.Background()
	store := fs.NewJSONStore(base, "catalog")
	require.NoError(t, store.CreateRank(ctx, &gamecat.Rank{ID: "rank-0", Name: "Private"}))

	require.NoError(t, store.Abort())
	require.NoError(t, store.Commit())

	ranks := readJSON[[]gamecat.Rank](t, filepath.Join(base, "catalog", fs.RanksFile))
	assert.Empty(t, ranks)
}

func TestJSONStore_RejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	store := fs.NewJSONStore(t.TempDir(), "catalog")
	ctx := context.Background()

	err := store.CreateEvent(ctx, &gamecat.Event{URL: "https://x.example.com"})
	require.Error(t, err)
	assert.Equal(t, gamecat.EINVALID, gamecat.ErrorCode(err))

	err = store.CreateAnnouncement(ctx, &gamecat.Announcement{Title: "No link"})
	assert.Equal(t, gamecat.EINVALID, gamecat.ErrorCode(err))

	err = store.CreateRank(ctx, &gamecat.Rank{ID: "rank-1"})
	assert.Equal(t, gamecat.EINVALID, gamecat.ErrorCode(err))
}
