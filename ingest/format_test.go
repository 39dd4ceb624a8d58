package ingest_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/gamecat/ingest"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"short URL unchanged", "https://a.com/x", 20, "https://a.com/x"},
		{"long URL keeps the end", "https://forum.example.com/threads/event.42/", 20, "...threads/event.42/"},
		{"tiny limit", "https://a.com", 3, "htt"},
		{"zero limit", "https://a.com", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ingest.TruncateURL(tt.url, tt.maxLen))
		})
	}
}

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1/3] ok   https://forum.example.com/t/1",
		ingest.FormatProgress(ingest.ProgressEvent{Type: ingest.ProgressCompleted, Completed: 1, Total: 3, URL: "https://forum.example.com/t/1"}))
	assert.Equal(t, "[2/3] fail https://forum.example.com/t/2: HTTP 404",
		ingest.FormatProgress(ingest.ProgressEvent{Type: ingest.ProgressFailed, Completed: 2, Total: 3, URL: "https://forum.example.com/t/2", Error: errors.New("HTTP 404")}))
	assert.Empty(t, ingest.FormatProgress(ingest.ProgressEvent{Type: ingest.ProgressStarted, Total: 3}))
}
