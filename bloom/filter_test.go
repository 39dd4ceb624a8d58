package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/gamecat/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Add(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://forum.example.com/threads/1"))

	assert.True(t, f.Add("https://forum.example.com/threads/1"), "first add reports new")
	assert.False(t, f.Add("https://forum.example.com/threads/1"), "second add reports seen")

	assert.True(t, f.Test("https://forum.example.com/threads/1"))
	assert.False(t, f.Test("https://forum.example.com/threads/2"))
}

func TestFilter_IgnoresFragments(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.True(t, f.Add("https://forum.example.com/threads/1#post-9"))
	assert.False(t, f.Add(" https://forum.example.com/threads/1 "))
	assert.True(t, f.Test("https://forum.example.com/threads/1#latest"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("https://forum.example.com/threads/1")
	f.Add("https://forum.example.com/threads/2")
	f.Add("https://forum.example.com/threads/3")
	f.Add("https://forum.example.com/threads/3")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("https://forum.example.com/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("https://forum.example.com/notadded/%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
