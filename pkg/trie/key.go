package trie

import "strings"

// Kind selects the unit shape a trie accepts for its keys, fixed at
// creation time.
type Kind uint8

const (
	// Runes keys are strings, walked one character per level.
	Runes Kind = iota
	// Tokens keys are ordered token sequences, walked one token per level.
	Tokens
)

func (k Kind) String() string {
	switch k {
	case Runes:
		return "runes"
	case Tokens:
		return "tokens"
	}
	return "unknown"
}

// Key is an ordered sequence of units addressing one path from the root.
// Word and Phrase are the two implementations; a trie only accepts keys
// whose Kind matches its own.
type Key interface {
	// Kind reports the unit shape of the key.
	Kind() Kind
	// Units splits the key into its per-level path segments.
	Units() []string
	// Append returns a copy of the key extended by the given units.
	Append(units ...string) Key
	// String renders the key for messages and logs.
	String() string
}

// Word is a character key: one trie level per rune.
type Word string

func (Word) Kind() Kind { return Runes }

func (w Word) Units() []string {
	units := make([]string, 0, len(w))
	for _, r := range w {
		units = append(units, string(r))
	}
	return units
}

func (w Word) Append(units ...string) Key {
	return Word(string(w) + strings.Join(units, ""))
}

func (w Word) String() string { return string(w) }

// Phrase is a token key: one trie level per token.
type Phrase []string

func (Phrase) Kind() Kind { return Tokens }

func (p Phrase) Units() []string { return p }

func (p Phrase) Append(units ...string) Key {
	out := make([]string, 0, len(p)+len(units))
	out = append(out, p...)
	out = append(out, units...)
	return Phrase(out)
}

func (p Phrase) String() string { return strings.Join(p, " ") }
