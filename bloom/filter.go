// Package bloom provides URL deduplication using Bloom filters.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/gamecat"
)

// Ensure Filter implements gamecat.URLSet.
var _ gamecat.URLSet = (*Filter)(nil)

// Filter wraps a Bloom filter for URL deduplication. URLs differing only
// by fragment or surrounding whitespace are treated as equal.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL and reports whether it was new.
func (f *Filter) Add(rawURL string) bool {
	return !f.f.TestAndAddString(canonical(rawURL))
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(rawURL string) bool {
	return f.f.TestString(canonical(rawURL))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func canonical(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
