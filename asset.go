package gamecat

// DefaultImageExtensions lists the file extensions indexed as local media.
var DefaultImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}

// AssetResolver finds local media to use when a remote page supplies no
// usable image.
type AssetResolver interface {
	// Initialize builds the asset index. Calling it again without Clear
	// is a no-op.
	Initialize() error

	// Resolve returns a root-relative path to a local asset matching the
	// name, or "" if none matches. Resolve initializes the index on first
	// use and never fails.
	Resolve(name string) string

	// Clear drops the index so the next Initialize or Resolve rebuilds it.
	Clear()
}
