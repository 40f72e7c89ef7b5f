// Package suggest is the query core: ranked prefix completion,
// edit-distance autocorrect and wildcard filtering over a trie index.
package suggest

import "github.com/bastiangx/lexitrie/pkg/trie"

// Suggestion is one ranked result handed to the server and CLI surfaces.
type Suggestion struct {
	Word      string
	Frequency int
	Corrected bool `json:",omitempty"`
}

// Match pairs a stored key with its frequency, as produced by WordFilter.
// The result set carries no ordering.
type Match struct {
	Key       trie.Key
	Frequency int
}

// Engine is the surface the IPC server and the interactive CLI consume.
type Engine interface {
	// Complete returns suggestions extending prefix, best first.
	Complete(prefix string, limit int) []Suggestion

	// CompletePhrase returns continuations of the given leading tokens
	// from the phrase index.
	CompletePhrase(tokens []string, limit int) []Suggestion

	// Correct completes prefix and tops the list up with close
	// spellings once completions run short.
	Correct(prefix string, limit int) []Suggestion

	// Filter returns every indexed word matching a */? pattern.
	Filter(pattern string) []Match

	// Stats reports counters about the index and cache.
	Stats() map[string]int
}
