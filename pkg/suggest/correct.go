package suggest

import (
	"github.com/bastiangx/lexitrie/pkg/trie"
)

// alphabet feeds candidate generation for insertions and substitutions.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Autocorrect runs Autocomplete and, when completions leave room under
// limit, tops the list up with stored words one edit away from prefix,
// again highest frequency first. With limit <= 0 every valid edit is
// appended after the completions. Edits are single-character operations,
// so token-keyed prefixes get the completion results unchanged.
func Autocorrect(index *trie.Trie[int], prefix trie.Key, limit int) ([]trie.Key, error) {
	results, err := Autocomplete(index, prefix, limit)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(results) >= limit {
		return results, nil
	}
	word, ok := prefix.(trie.Word)
	if !ok {
		return results, nil
	}

	seen := make(map[string]bool, len(results))
	for _, key := range results {
		seen[key.String()] = true
	}

	buckets := newFreqBuckets()
	for _, cand := range edits(string(word)) {
		if seen[cand] {
			continue
		}
		seen[cand] = true

		key := trie.Word(cand)
		freq, err := index.Get(key)
		if err != nil {
			continue
		}
		buckets.add(key, freq)
	}

	remaining := 0
	if limit > 0 {
		remaining = limit - len(results)
	}
	return append(results, buckets.take(remaining)...), nil
}

// edits returns the edit-distance-1 neighborhood of word: every single
// insertion, deletion, substitution and adjacent transposition, using
// the lowercase alphabet. The list may repeat strings; callers dedupe.
func edits(word string) []string {
	runes := []rune(word)
	n := len(runes)
	out := make([]string, 0, 26*(n+1)+n+25*n+max(n-1, 0))

	for i := 0; i <= n; i++ {
		for _, l := range alphabet {
			out = append(out, string(runes[:i])+string(l)+string(runes[i:]))
		}
	}
	for i := 0; i < n; i++ {
		out = append(out, string(runes[:i])+string(runes[i+1:]))
	}
	for i := 0; i < n; i++ {
		for _, l := range alphabet {
			if l == runes[i] {
				continue
			}
			out = append(out, string(runes[:i])+string(l)+string(runes[i+1:]))
		}
	}
	for i := 0; i+1 < n; i++ {
		swapped := make([]rune, n)
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		out = append(out, string(swapped))
	}
	return out
}
