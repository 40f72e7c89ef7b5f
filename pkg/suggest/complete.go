package suggest

import (
	"errors"

	"github.com/bastiangx/lexitrie/pkg/trie"
)

// Autocomplete returns up to limit stored keys extending prefix, highest
// frequency first; limit <= 0 lifts the cap. A prefix with no subtree is
// a normal empty answer, not an error; only a key kind mismatch comes
// back as one. When the prefix is itself a stored key it appears among
// its own completions.
func Autocomplete(index *trie.Trie[int], prefix trie.Key, limit int) ([]trie.Key, error) {
	sub, err := index.Find(prefix)
	if err != nil {
		if errors.Is(err, trie.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	buckets := newFreqBuckets()
	err = sub.Walk(func(suffix []string, freq int) error {
		buckets.add(prefix.Append(suffix...), freq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buckets.take(limit), nil
}
