package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotCacheLookupMiss(t *testing.T) {
	hc := NewHotCache(8)
	_, ok := hc.Lookup("ba", 5)
	assert.False(t, ok)
	assert.Equal(t, 1, hc.Stats()["cacheMisses"])
}

func TestHotCacheLimitCompatibility(t *testing.T) {
	bounded := []Suggestion{{Word: "bat", Frequency: 2}, {Word: "bar", Frequency: 1}}

	testCases := []struct {
		name         string
		storedLimit  int
		lookupLimit  int
		expectHit    bool
		expectLength int
	}{
		{"same limit", 5, 5, true, 2},
		{"tighter request trims", 5, 1, true, 1},
		{"wider request misses", 5, 10, false, 0},
		{"unbounded request misses bounded entry", 5, 0, false, 0},
		{"unbounded entry serves bounded request", 0, 3, true, 2},
		{"unbounded entry serves unbounded request", 0, 0, true, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hc := NewHotCache(8)
			hc.Store("ba", tc.storedLimit, bounded)

			got, ok := hc.Lookup("ba", tc.lookupLimit)
			require.Equal(t, tc.expectHit, ok)
			assert.Len(t, got, tc.expectLength)
		})
	}
}

func TestHotCacheInvalidatePrefixesOnly(t *testing.T) {
	hc := NewHotCache(8)
	hc.Store("ba", 5, []Suggestion{{Word: "bat", Frequency: 1}})
	hc.Store("bat", 5, []Suggestion{{Word: "bat", Frequency: 1}})
	hc.Store("ca", 5, []Suggestion{{Word: "cat", Frequency: 1}})

	// "bat" extends the cached "ba" and "bat" prefixes, but not "ca".
	hc.Invalidate("bat")

	_, ok := hc.Lookup("ba", 5)
	assert.False(t, ok)
	_, ok = hc.Lookup("bat", 5)
	assert.False(t, ok)
	_, ok = hc.Lookup("ca", 5)
	assert.True(t, ok)
}

func TestHotCacheEvictsColdest(t *testing.T) {
	hc := NewHotCache(2)
	hc.Store("aa", 5, []Suggestion{{Word: "aah", Frequency: 1}})
	hc.Store("bb", 5, []Suggestion{{Word: "bbq", Frequency: 1}})

	// Touch "aa" so "bb" is the coldest when capacity overflows.
	_, ok := hc.Lookup("aa", 5)
	require.True(t, ok)

	hc.Store("cc", 5, []Suggestion{{Word: "ccs", Frequency: 1}})

	_, ok = hc.Lookup("bb", 5)
	assert.False(t, ok, "coldest entry should be evicted")
	_, ok = hc.Lookup("aa", 5)
	assert.True(t, ok)
	_, ok = hc.Lookup("cc", 5)
	assert.True(t, ok)

	assert.Equal(t, 2, hc.Stats()["cachedPrefixes"])
}

func TestHotCacheStats(t *testing.T) {
	hc := NewHotCache(4)
	hc.Store("ba", 5, nil)
	hc.Lookup("ba", 5)
	hc.Lookup("zz", 5)

	stats := hc.Stats()
	assert.Equal(t, 4, stats["cacheCapacity"])
	assert.Equal(t, 1, stats["cachedPrefixes"])
	assert.Equal(t, 1, stats["cacheHits"])
	assert.Equal(t, 1, stats["cacheMisses"])
}
