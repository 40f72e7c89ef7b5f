// Package corpus turns tokenized text into the frequency indexes the
// query engines run on: a character-keyed word index and a token-keyed
// sentence index.
package corpus

import (
	"github.com/bastiangx/lexitrie/pkg/trie"
)

// BuildWordIndex counts every token occurrence across the sentences
// into a character-keyed trie.
func BuildWordIndex(sentences [][]string) *trie.Trie[int] {
	idx := trie.New[int](trie.Runes)
	for _, sentence := range sentences {
		for _, token := range sentence {
			bump(idx, trie.Word(token))
		}
	}
	return idx
}

// BuildPhraseIndex counts whole-sentence occurrences into a token-keyed
// trie, one trie level per token.
func BuildPhraseIndex(sentences [][]string) *trie.Trie[int] {
	idx := trie.New[int](trie.Tokens)
	for _, sentence := range sentences {
		bump(idx, trie.Phrase(sentence))
	}
	return idx
}

// bump increments key's stored count, starting at 1. The indexers build
// keys of the index's own kind, so the trie errors cannot fire here.
func bump(idx *trie.Trie[int], key trie.Key) {
	count, err := idx.Get(key)
	if err != nil {
		count = 0
	}
	_ = idx.Set(key, count+1)
}

// IndexStats summarizes one index.
type IndexStats struct {
	Total    int
	Distinct int
}

// Stats tallies an index: Total sums the stored counts, Distinct counts
// the stored keys.
func Stats(idx *trie.Trie[int]) IndexStats {
	var s IndexStats
	idx.Visit(func(_ trie.Key, count int) error {
		s.Distinct++
		s.Total += count
		return nil
	})
	return s
}
