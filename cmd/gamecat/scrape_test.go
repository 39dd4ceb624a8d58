package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/gamecat"
	main "github.com/fwojciec/gamecat/cmd/gamecat"
	"github.com/fwojciec/gamecat/ingest"
	"github.com/fwojciec/gamecat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*gamecat.RawPage, error) {
			return &gamecat.RawPage{URL: url, HTML: "<html></html>"}, nil
		},
	}
}

func TestRanksCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranks as JSON", func(t *testing.T) {
		t.Parallel()

		svc := &ingest.Service{
			Fetcher:  stubFetcher(),
			RanksURL: "https://game.example.com/ranks",
			Ranks: &mock.RankExtractor{
				ExtractFn: func(*gamecat.RawPage) ([]*gamecat.Rank, error) {
					return []*gamecat.Rank{{ID: "rank-0", Name: "Private"}}, nil
				},
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Service: svc,
		}

		err := (&main.RanksCmd{}).Run(deps)
		require.NoError(t, err)

		var ranks []*gamecat.Rank
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &ranks))
		require.Len(t, ranks, 1)
		assert.Equal(t, "Private", ranks[0].Name)
	})

	t.Run("reports unconfigured site", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Service: &ingest.Service{Fetcher: stubFetcher()},
		}

		err := (&main.RanksCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, gamecat.EINVALID, gamecat.ErrorCode(err))
		assert.Contains(t, stderr.String(), "ranks URL not configured")
	})
}

func TestAnnouncementsCmd_Run(t *testing.T) {
	t.Parallel()

	svc := &ingest.Service{
		Fetcher:          stubFetcher(),
		AnnouncementsURL: "https://forum.example.com/forums/announcements/",
		Announcements: &mock.AnnouncementExtractor{
			ExtractFn: func(*gamecat.RawPage) ([]*gamecat.Announcement, error) {
				return []*gamecat.Announcement{{URL: "https://forum.example.com/t/1", Title: "Patch notes"}}, nil
			},
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  &bytes.Buffer{},
		Service: svc,
	}

	err := (&main.AnnouncementsCmd{}).Run(deps)
	require.NoError(t, err)

	var items []*gamecat.Announcement
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Patch notes", items[0].Title)
}

func TestEventsCmd_Run(t *testing.T) {
	t.Parallel()

	svc := &ingest.Service{
		Fetcher: stubFetcher(),
		Events: &mock.EventExtractor{
			ExtractFn: func(page *gamecat.RawPage) (*gamecat.Event, error) {
				return &gamecat.Event{URL: page.URL, Title: "Event", Content: "<p>x</p>", Category: gamecat.EventCategory}, nil
			},
		},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Service: svc,
	}

	err := (&main.EventsCmd{URLs: []string{"https://forum.example.com/t/1", "not a url"}}).Run(deps)
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "Scraped 1 of 2 events")

	var events []*gamecat.Event
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "https://forum.example.com/t/1", events[0].URL)
}
