package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// HotCache keeps recently served completion lists keyed by their prefix,
// so a burst of identical keystrokes skips the index walk. The patricia
// trie doubles as the invalidation structure: adding a word drops
// exactly the cached prefixes that word extends, nothing else.
type HotCache struct {
	entries  *patricia.Trie
	access   map[string]int64
	tick     int64
	capacity int
	hits     int64
	misses   int64
	mu       sync.Mutex
}

type cacheEntry struct {
	limit int
	words []Suggestion
}

// NewHotCache returns a cache holding up to capacity prefix lists,
// evicting least-recently-used entries beyond that.
func NewHotCache(capacity int) *HotCache {
	return &HotCache{
		entries:  patricia.NewTrie(),
		access:   make(map[string]int64, capacity),
		capacity: capacity,
	}
}

// Lookup returns the cached list for prefix when one with a compatible
// limit exists: a list cached unbounded serves any request, a bounded
// one only requests at or under its own bound.
func (hc *HotCache) Lookup(prefix string, limit int) ([]Suggestion, bool) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	item := hc.entries.Get(patricia.Prefix(prefix))
	if item == nil {
		hc.misses++
		return nil, false
	}
	entry := item.(*cacheEntry)
	if entry.limit > 0 && (limit <= 0 || limit > entry.limit) {
		hc.misses++
		return nil, false
	}

	hc.hits++
	hc.access[prefix] = hc.nextTick()
	words := entry.words
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words, true
}

// Store caches the served list for prefix under the limit it answered.
func (hc *HotCache) Store(prefix string, limit int, words []Suggestion) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if hc.entries.Get(patricia.Prefix(prefix)) == nil && len(hc.access) >= hc.capacity {
		hc.evictOldest()
	}
	hc.entries.Set(patricia.Prefix(prefix), &cacheEntry{limit: limit, words: words})
	hc.access[prefix] = hc.nextTick()
}

// Invalidate drops every cached prefix of word; those lists would be
// stale once word carries a new frequency.
func (hc *HotCache) Invalidate(word string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	var stale []string
	hc.entries.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, string(p))
		return nil
	})
	for _, prefix := range stale {
		hc.entries.Delete(patricia.Prefix(prefix))
		delete(hc.access, prefix)
	}
	if len(stale) > 0 {
		log.Debugf("cache dropped %d stale prefixes for %q", len(stale), word)
	}
}

// Stats reports cache occupancy and hit counters.
func (hc *HotCache) Stats() map[string]int {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	return map[string]int{
		"cachedPrefixes": len(hc.access),
		"cacheCapacity":  hc.capacity,
		"cacheHits":      int(hc.hits),
		"cacheMisses":    int(hc.misses),
	}
}

func (hc *HotCache) nextTick() int64 {
	hc.tick++
	return hc.tick
}

func (hc *HotCache) evictOldest() {
	var oldest string
	found := false
	oldestTick := int64(math.MaxInt64)
	for prefix, tick := range hc.access {
		if tick < oldestTick {
			oldestTick = tick
			oldest = prefix
			found = true
		}
	}
	if found {
		hc.entries.Delete(patricia.Prefix(oldest))
		delete(hc.access, oldest)
		log.Debugf("cache evicted prefix %q", oldest)
	}
}
