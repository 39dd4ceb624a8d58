package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/gamecat"
	"github.com/fwojciec/gamecat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mediaDir creates a media directory containing the named empty files.
func mediaDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	return dir
}

func TestAssetResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("returns path for full slug match", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "brigadier-general-4.png", "notes.txt")
		r := fs.NewAssetResolver(dir, "/images/", nil)

		assert.Equal(t, "/images/brigadier-general-4.png", r.Resolve("Brigadier General 4"))
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "Summer-Festival-Banner.JPG")
		r := fs.NewAssetResolver(dir, "/images", nil)

		assert.Equal(t, "/images/Summer-Festival-Banner.JPG", r.Resolve("Summer Festival"))
	})

	t.Run("matches on a single token", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "halloween_2024.webp")
		r := fs.NewAssetResolver(dir, "/media/", nil)

		assert.Equal(t, "/media/halloween_2024.webp", r.Resolve("Halloween Event"))
	})

	t.Run("returns empty string without token overlap", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "brigadier-general-4.png")
		r := fs.NewAssetResolver(dir, "/images/", nil)

		assert.Empty(t, r.Resolve("Winter Sale"))
	})

	t.Run("ignores files with other extensions", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "winter-sale.txt", "winter-sale.psd")
		r := fs.NewAssetResolver(dir, "/images/", nil)

		assert.Empty(t, r.Resolve("Winter Sale"))
	})

	t.Run("first match in directory order wins", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "b-general.png", "a-general.png")
		r := fs.NewAssetResolver(dir, "/images/", nil)

		assert.Equal(t, "/images/a-general.png", r.Resolve("General"))
	})

	t.Run("returns empty string for unreadable directory", func(t *testing.T) {
		t.Parallel()

		r := fs.NewAssetResolver(filepath.Join(t.TempDir(), "missing"), "/images/", nil)

		assert.Empty(t, r.Resolve("Brigadier General 4"))
		require.Error(t, r.Initialize())
	})

	t.Run("returns empty string for empty name", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "a.png")
		r := fs.NewAssetResolver(dir, "/images/", nil)

		assert.Empty(t, r.Resolve("  "))
	})

	t.Run("honours custom extensions", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "colonel.avif", "colonel.png")
		r := fs.NewAssetResolver(dir, "/images/", []string{"avif"})

		assert.Equal(t, "/images/colonel.avif", r.Resolve("Colonel"))
	})
}

func TestAssetResolver_Lifecycle(t *testing.T) {
	t.Parallel()

	t.Run("caches listing until cleared", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "major.png")
		r := fs.NewAssetResolver(dir, "/images/", nil)
		require.NoError(t, r.Initialize())
		assert.Equal(t, 1, r.Len())

		// Files added after initialization are invisible until Clear
		require.NoError(t, os.WriteFile(filepath.Join(dir, "colonel.png"), nil, 0644))
		assert.Empty(t, r.Resolve("Colonel"))

		r.Clear()
		assert.Equal(t, "/images/colonel.png", r.Resolve("Colonel"))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("initialize is a no-op when already loaded", func(t *testing.T) {
		t.Parallel()

		dir := mediaDir(t, "major.png")
		r := fs.NewAssetResolver(dir, "/images/", nil)
		require.NoError(t, r.Initialize())
		require.NoError(t, os.Remove(filepath.Join(dir, "major.png")))

		require.NoError(t, r.Initialize())
		assert.Equal(t, "/images/major.png", r.Resolve("Major"))
	})
}

var _ gamecat.AssetResolver = (*fs.AssetResolver)(nil)
