package suggest

import (
	"reflect"
	"sort"
	"testing"

	"github.com/bastiangx/lexitrie/pkg/trie"
)

func TestAutocorrectIdenticalWhenFull(t *testing.T) {
	idx := wordIndex("cat cat cats hat")

	completed, err := Autocomplete(idx, trie.Word("ca"), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	corrected, err := Autocorrect(idx, trie.Word("ca"), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(keyStrings(completed), keyStrings(corrected)) {
		t.Errorf("autocorrect diverged from a full autocomplete: %v vs %v",
			keyStrings(completed), keyStrings(corrected))
	}
}

func TestAutocorrectTopsUpWithEdits(t *testing.T) {
	idx := wordIndex("cats cattle hat car act at chat crate act car act")

	keys, err := Autocorrect(idx, trie.Word("cat"), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := keyStrings(keys)
	if len(got) != 4 {
		t.Fatalf("expected 4 results, got %v", got)
	}

	// Completions come first (tie order between them is free), then the
	// valid edits by descending frequency: act (3) before car (2).
	head := []string{got[0], got[1]}
	sort.Strings(head)
	if !reflect.DeepEqual(head, []string{"cats", "cattle"}) {
		t.Errorf("expected completions [cats cattle] first, got %v", got)
	}
	if got[2] != "act" || got[3] != "car" {
		t.Errorf("expected edits [act car] by frequency, got %v", got)
	}
}

func TestAutocorrectEditKinds(t *testing.T) {
	testCases := []struct {
		description string
		corpus      string
		prefix      string
		expected    []string
	}{
		{"insertion", "chat", "cat", []string{"chat"}},
		{"deletion", "at", "cat", []string{"at"}},
		{"substitution", "bat", "cat", []string{"bat"}},
		{"adjacent transposition", "act", "cat", []string{"act"}},
		{"distant swap is not one edit", "tac", "cat", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			idx := wordIndex(tc.corpus)
			keys, err := Autocorrect(idx, trie.Word(tc.prefix), 5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := keyStrings(keys)
			sort.Strings(got)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAutocorrectUnboundedAppends(t *testing.T) {
	idx := wordIndex("cat can")

	// Even with completions present, an unbounded query appends every
	// valid edit.
	keys, err := Autocorrect(idx, trie.Word("cat"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := keyStrings(keys)
	if !reflect.DeepEqual(got, []string{"cat", "can"}) {
		t.Errorf("expected [cat can], got %v", got)
	}
}

func TestAutocorrectNoDuplicates(t *testing.T) {
	// "cats" is both a completion of "cat" and an insertion edit; it
	// must appear once.
	idx := wordIndex("cats act")

	keys, err := Autocorrect(idx, trie.Word("cat"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[string]int{}
	for _, k := range keys {
		seen[k.String()]++
	}
	for w, n := range seen {
		if n > 1 {
			t.Errorf("word %q appeared %d times", w, n)
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected {cats act}, got %v", keyStrings(keys))
	}
}

func TestAutocorrectPhrasePassthrough(t *testing.T) {
	idx := trie.New[int](trie.Tokens)
	idx.Set(trie.Phrase{"the", "cat"}, 1)

	keys, err := Autocorrect(idx, trie.Phrase{"the"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 1 || keys[0].String() != "the cat" {
		t.Errorf("expected phrase completion only, got %v", keyStrings(keys))
	}
}

func TestEditsNeighborhood(t *testing.T) {
	out := edits("ab")
	set := map[string]bool{}
	for _, w := range out {
		set[w] = true
	}

	for _, want := range []string{"ba", "a", "b", "cab", "acb", "abc", "zb", "az", "aab", "abb"} {
		if !set[want] {
			t.Errorf("edit %q missing from neighborhood", want)
		}
	}
	if set[""] {
		t.Error("empty string should not be reachable from a 2-letter word")
	}

	// A single edit never changes length by more than one.
	for w := range set {
		if len(w) < 1 || len(w) > 3 {
			t.Errorf("edit %q has impossible length", w)
		}
	}

	if len(edits("")) != 26 {
		t.Errorf("empty word has exactly the 26 single-letter insertions, got %d", len(edits("")))
	}
}
