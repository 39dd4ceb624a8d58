package gamecat

// URLSet records URLs already scheduled during one run.
type URLSet interface {
	// Add records url and reports whether it was not seen before.
	// Implementations may report false positives (a new URL seen as old)
	// but never false negatives.
	Add(url string) bool
}
