package suggest

import (
	"sort"

	"github.com/bastiangx/lexitrie/pkg/trie"
)

// freqBuckets groups candidate keys by frequency so results come out
// bucket by bucket, highest frequency first. Order inside a bucket is
// whatever the traversal produced: frequency ties are unordered on
// purpose and callers must not lean on them.
type freqBuckets struct {
	byFreq map[int][]trie.Key
	freqs  []int
}

func newFreqBuckets() *freqBuckets {
	return &freqBuckets{byFreq: make(map[int][]trie.Key)}
}

func (b *freqBuckets) add(key trie.Key, freq int) {
	if _, seen := b.byFreq[freq]; !seen {
		b.freqs = append(b.freqs, freq)
	}
	b.byFreq[freq] = append(b.byFreq[freq], key)
}

// take drains up to limit keys in descending frequency order; limit <= 0
// drains everything.
func (b *freqBuckets) take(limit int) []trie.Key {
	sort.Slice(b.freqs, func(i, j int) bool {
		return b.freqs[i] > b.freqs[j]
	})

	var out []trie.Key
	for _, f := range b.freqs {
		for _, key := range b.byFreq[f] {
			out = append(out, key)
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}
