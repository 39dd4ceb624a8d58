package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/gamecat/mock"
	gslog "github.com/fwojciec/gamecat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("logs resolved path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.AssetResolver{
			ResolveFn: func(name string) string { return "/images/summer-festival.png" },
		}

		r := gslog.NewLoggingAssetResolver(inner, debugLogger(&buf))
		path := r.Resolve("Summer Festival")

		assert.Equal(t, "/images/summer-festival.png", path)
		assert.Contains(t, buf.String(), `name="Summer Festival"`)
		assert.Contains(t, buf.String(), "path=/images/summer-festival.png")
	})

	t.Run("logs misses", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.AssetResolver{
			ResolveFn: func(string) string { return "" },
		}

		path := gslog.NewLoggingAssetResolver(inner, debugLogger(&buf)).Resolve("Nothing")

		assert.Empty(t, path)
		assert.Contains(t, buf.String(), "path=(none)")
	})

	t.Run("delegates initialize and clear", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cleared := false
		inner := &mock.AssetResolver{
			InitializeFn: func() error { return errors.New("permission denied") },
			ClearFn:      func() { cleared = true },
		}

		r := gslog.NewLoggingAssetResolver(inner, debugLogger(&buf))
		err := r.Initialize()
		r.Clear()

		require.Error(t, err)
		assert.True(t, cleared)
		assert.Contains(t, buf.String(), `err="permission denied"`)
	})
}
