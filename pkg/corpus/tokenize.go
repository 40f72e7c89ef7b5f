package corpus

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits raw text into sentences of normalized lowercase
// tokens, the input shape the indexers expect. The fold transformer
// carries state, so a Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	fold transform.Transformer
}

// NewTokenizer returns a tokenizer that folds diacritics and lowercases
// every token.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		fold: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Normalize folds combining marks out of token and lowercases it. A
// token the transformer cannot handle is lowercased as-is.
func (tk *Tokenizer) Normalize(token string) string {
	folded, _, err := transform.String(tk.fold, token)
	if err != nil {
		folded = token
	}
	return strings.ToLower(folded)
}

// Sentences splits text on `.`, `!` and `?` boundaries and cleans each
// token: surrounding punctuation is trimmed, interior characters like
// apostrophes and hyphens stay. Empty sentences are dropped.
func (tk *Tokenizer) Sentences(text string) [][]string {
	var sentences [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			sentences = append(sentences, current)
			current = nil
		}
	}

	for _, field := range strings.Fields(text) {
		trimmed := strings.TrimRight(field, ".!?")
		boundary := trimmed != field

		if token := tk.cleanToken(trimmed); token != "" {
			current = append(current, token)
		}
		if boundary {
			flush()
		}
	}
	flush()
	return sentences
}

func (tk *Tokenizer) cleanToken(raw string) string {
	token := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if token == "" {
		return ""
	}
	return tk.Normalize(token)
}
