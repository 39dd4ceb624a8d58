// Package fs provides filesystem-backed implementations: the local media
// index used as image fallback and a JSON export store.
package fs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/gamecat"
)

// Ensure AssetResolver implements gamecat.AssetResolver at compile time.
var _ gamecat.AssetResolver = (*AssetResolver)(nil)

// AssetResolver matches names against the image files of a local media
// directory. The directory is listed once and cached until Clear.
// AssetResolver is safe for concurrent use.
type AssetResolver struct {
	dir       string
	urlPrefix string
	exts      map[string]bool

	mu      sync.Mutex
	loaded  bool
	loadErr error
	files   []string
}

// NewAssetResolver creates a resolver over dir. Matches are returned as
// urlPrefix + filename. Only files whose extension is in exts are indexed;
// a nil exts uses gamecat.DefaultImageExtensions.
func NewAssetResolver(dir, urlPrefix string, exts []string) *AssetResolver {
	if exts == nil {
		exts = gamecat.DefaultImageExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return &AssetResolver{
		dir:       dir,
		urlPrefix: urlPrefix,
		exts:      set,
	}
}

// Initialize lists the media directory. Later calls return the first
// result until Clear is called.
func (r *AssetResolver) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *AssetResolver) load() error {
	if r.loaded {
		return r.loadErr
	}
	r.loaded = true

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		r.loadErr = fmt.Errorf("reading media directory %s: %w", r.dir, err)
		return r.loadErr
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if r.exts[strings.ToLower(filepath.Ext(entry.Name()))] {
			r.files = append(r.files, entry.Name())
		}
	}
	return nil
}

// Resolve returns the path of the first indexed file whose lowercased name
// contains the slug of name, or any hyphen-delimited token of it.
// Returns "" when nothing matches or the directory is unreadable.
func (r *AssetResolver) Resolve(name string) string {
	slug := gamecat.Slugify(name)
	if slug == "" {
		return ""
	}
	tokens := gamecat.SlugTokens(slug)

	r.mu.Lock()
	_ = r.load()
	files := r.files
	r.mu.Unlock()

	for _, file := range files {
		lower := strings.ToLower(file)
		if strings.Contains(lower, slug) {
			return r.path(file)
		}
		for _, token := range tokens {
			if strings.Contains(lower, token) {
				return r.path(file)
			}
		}
	}
	return ""
}

// Clear drops the cached listing.
func (r *AssetResolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	r.loadErr = nil
	r.files = nil
}

// Len returns the number of indexed files, initializing the index if needed.
func (r *AssetResolver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.load()
	return len(r.files)
}

func (r *AssetResolver) path(file string) string {
	prefix := r.urlPrefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + url.PathEscape(file)
}
