package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/lexitrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// Completer fronts the engines for the server and CLI: it owns the word
// and phrase indexes, keeps running counters, and routes completion
// lookups through the hot cache when one is attached.
type Completer struct {
	words        *trie.Trie[int]
	phrases      *trie.Trie[int]
	cache        *HotCache
	totalTokens  int
	maxFrequency int
}

// NewCompleter wraps the given indexes. Either index may be nil, in
// which case an empty one of the right kind is created. cacheSize <= 0
// disables the hot cache.
func NewCompleter(words, phrases *trie.Trie[int], cacheSize int) *Completer {
	c := &Completer{words: words, phrases: phrases}
	if c.words == nil {
		c.words = trie.New[int](trie.Runes)
	}
	if c.phrases == nil {
		c.phrases = trie.New[int](trie.Tokens)
	}
	if cacheSize > 0 {
		c.cache = NewHotCache(cacheSize)
	}
	c.refreshCounters()
	return c
}

// Words exposes the character index for direct engine calls.
func (c *Completer) Words() *trie.Trie[int] { return c.words }

// Phrases exposes the token index.
func (c *Completer) Phrases() *trie.Trie[int] { return c.phrases }

// AddWord stores or overwrites a word's frequency and drops any cached
// completion lists the word would now belong to.
func (c *Completer) AddWord(word string, frequency int) {
	key := trie.Word(word)
	old, err := c.words.Get(key)
	if err != nil {
		old = 0
	}
	if err := c.words.Set(key, frequency); err != nil {
		log.Errorf("add word %q: %v", word, err)
		return
	}
	c.totalTokens += frequency - old
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
	if c.cache != nil {
		c.cache.Invalidate(word)
	}
}

// Complete returns up to limit suggestions extending prefix, highest
// frequency first. Served from the hot cache when possible.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if c.cache != nil {
		if cached, ok := c.cache.Lookup(prefix, limit); ok {
			return cached
		}
	}

	keys, err := Autocomplete(c.words, trie.Word(prefix), limit)
	if err != nil {
		log.Errorf("complete %q: %v", prefix, err)
		return nil
	}
	suggestions := c.toSuggestions(c.words, keys)

	if c.cache != nil {
		c.cache.Store(prefix, limit, suggestions)
	}
	return suggestions
}

// CompletePhrase returns continuations of the given leading tokens
// from the phrase index, highest frequency first.
func (c *Completer) CompletePhrase(tokens []string, limit int) []Suggestion {
	keys, err := Autocomplete(c.phrases, trie.Phrase(tokens), limit)
	if err != nil {
		log.Errorf("complete phrase %v: %v", tokens, err)
		return nil
	}
	return c.toSuggestions(c.phrases, keys)
}

// Correct behaves like Complete but tops the list up with close
// spellings of prefix once completions run short. Topped-up entries are
// flagged Corrected.
func (c *Completer) Correct(prefix string, limit int) []Suggestion {
	keys, err := Autocorrect(c.words, trie.Word(prefix), limit)
	if err != nil {
		log.Errorf("correct %q: %v", prefix, err)
		return nil
	}
	suggestions := c.toSuggestions(c.words, keys)
	for i := range suggestions {
		if !strings.HasPrefix(suggestions[i].Word, prefix) {
			suggestions[i].Corrected = true
		}
	}
	return suggestions
}

// Filter matches a wildcard pattern against the word index, sorted by
// descending frequency for presentation. Ties stay in engine order.
func (c *Completer) Filter(pattern string) []Match {
	matches, err := WordFilter(c.words, pattern)
	if err != nil {
		log.Errorf("filter %q: %v", pattern, err)
		return nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Frequency > matches[j].Frequency
	})
	return matches
}

// Stats reports counters for the indexes plus cache statistics when a
// cache is attached.
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{
		"totalTokens":     c.totalTokens,
		"distinctWords":   c.words.Len(),
		"distinctPhrases": c.phrases.Len(),
		"maxFrequency":    c.maxFrequency,
	}
	if c.cache != nil {
		for k, v := range c.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}

func (c *Completer) toSuggestions(idx *trie.Trie[int], keys []trie.Key) []Suggestion {
	out := make([]Suggestion, 0, len(keys))
	for _, key := range keys {
		freq, err := idx.Get(key)
		if err != nil {
			continue
		}
		out = append(out, Suggestion{Word: key.String(), Frequency: freq})
	}
	return out
}

// refreshCounters rebuilds the totals from the word index, for indexes
// handed in prebuilt.
func (c *Completer) refreshCounters() {
	c.totalTokens = 0
	c.maxFrequency = 0
	c.words.Visit(func(_ trie.Key, freq int) error {
		c.totalTokens += freq
		if freq > c.maxFrequency {
			c.maxFrequency = freq
		}
		return nil
	})
}
