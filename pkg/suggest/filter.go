package suggest

import (
	"fmt"

	"github.com/bastiangx/lexitrie/pkg/trie"
)

// filterFrame is one pending backtracking branch: the pattern remainder,
// the characters matched so far, and the node they lead to.
type filterFrame struct {
	pattern []rune
	word    string
	cur     trie.Cursor[int]
}

// WordFilter returns every stored (word, frequency) pair whose word
// matches pattern. `?` matches exactly one character, `*` zero or more;
// anything else matches itself. Branches collapse into a set, so the
// result carries no duplicates and no ordering. The walk runs on an
// explicit stack, one frame per live branch. Patterns address character
// keys, so a token-keyed index is a kind mismatch.
func WordFilter(index *trie.Trie[int], pattern string) ([]Match, error) {
	if index.Kind() != trie.Runes {
		return nil, fmt.Errorf("%w: pattern search needs a %s index, got %s",
			trie.ErrKeyKind, trie.Runes, index.Kind())
	}
	root, err := index.Find(trie.Word(""))
	if err != nil {
		return nil, err
	}

	found := make(map[string]int)
	stack := []filterFrame{{pattern: []rune(pattern), cur: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.pattern) == 0 {
			if freq, ok := f.cur.Value(); ok {
				found[f.word] = freq
			}
			continue
		}

		switch f.pattern[0] {
		case '*':
			// A run of consecutive stars matches the same words as one.
			rest := f.pattern[1:]
			for len(rest) > 0 && rest[0] == '*' {
				rest = rest[1:]
			}
			starred := f.pattern[len(f.pattern)-len(rest)-1:]

			// The star matches zero characters here.
			stack = append(stack, filterFrame{pattern: rest, word: f.word, cur: f.cur})

			for _, unit := range f.cur.Units() {
				child, _ := f.cur.Child(unit)
				// One more character, star still active.
				stack = append(stack, filterFrame{pattern: starred, word: f.word + unit, cur: child})
				// A literal right behind the star can resolve early.
				if len(rest) > 0 && string(rest[0]) == unit {
					stack = append(stack, filterFrame{pattern: rest[1:], word: f.word + unit, cur: child})
				}
			}
		case '?':
			for _, unit := range f.cur.Units() {
				child, _ := f.cur.Child(unit)
				stack = append(stack, filterFrame{pattern: f.pattern[1:], word: f.word + unit, cur: child})
			}
		default:
			if child, ok := f.cur.Child(string(f.pattern[0])); ok {
				stack = append(stack, filterFrame{pattern: f.pattern[1:], word: f.word + string(f.pattern[0]), cur: child})
			}
		}
	}

	out := make([]Match, 0, len(found))
	for word, freq := range found {
		out = append(out, Match{Key: trie.Word(word), Frequency: freq})
	}
	return out, nil
}
