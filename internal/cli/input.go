// Package cli provides an interactive input loop for testing the lookup
// engines in real time.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bastiangx/lexitrie/internal/logger"
	"github.com/bastiangx/lexitrie/internal/utils"
	"github.com/bastiangx/lexitrie/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, providing suggestions.
// It accepts flags for minimum and maximum prefix length, suggestion
// limits, and filtering options.
type InputHandler struct {
	engine          suggest.Engine
	out             *log.Logger
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	requestCount    int
	noFilter        bool
}

// NewInputHandler handles initialization of the InputHandler with basic
// parameters. Results render on stdout; diagnostics stay on stderr.
func NewInputHandler(engine suggest.Engine, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:          engine,
		out:             logger.New(""),
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and
// passes the trimmed input to handleInput() for processing.
// Loop terminates on /quit or when stdin closes.
func (h *InputHandler) Start() error {
	h.out.Print("LexiTrie CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type a prefix and press Enter to see completions (Ctrl+C to exit)")
	h.out.Print("commands: /correct <word>  /filter <pattern>  /phrase <tokens>  /stats  /quit")

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/quit" {
			return nil
		}
		h.handleInput(line)
	}
}

// handleInput routes a line to the matching engine call.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if cmd, rest, ok := splitCommand(line); ok {
		switch cmd {
		case "/correct":
			h.handleCorrect(rest)
		case "/filter":
			h.handleFilter(rest)
		case "/phrase":
			h.handlePhrase(rest)
		case "/stats":
			h.handleStats()
		default:
			log.Errorf("Unknown command: %s", cmd)
		}
		return
	}

	h.handleComplete(line)
}

// splitCommand separates a leading /command from its argument text.
func splitCommand(line string) (cmd, rest string, ok bool) {
	if !strings.HasPrefix(line, "/") {
		return "", "", false
	}
	cmd, rest, _ = strings.Cut(line, " ")
	return cmd, strings.TrimSpace(rest), true
}

// checkInput applies the prefix length bounds and the noise filter.
func (h *InputHandler) checkInput(prefix string) bool {
	if len(prefix) < h.minPrefixLength {
		log.Errorf("Prefix too short: %s", prefix)
		return false
	}
	if len(prefix) > h.maxPrefixLength {
		log.Errorf("Prefix too long: %s", prefix)
		return false
	}
	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(prefix) {
			log.Warnf("No results for prefix: '%s' (filtered out)", prefix)
			return false
		}
	} else {
		log.Debug("Input filtering disabled - processing raw input")
	}
	return true
}

// handleComplete asks the engine for completions of a prefix and
// pretty-prints the results.
func (h *InputHandler) handleComplete(prefix string) {
	if !h.checkInput(prefix) {
		return
	}

	start := time.Now()
	log.Debug("Processing request for", "prefix", prefix)
	suggestions := h.engine.Complete(prefix, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	h.printSuggestions(suggestions)
}

// handleCorrect shows completions topped up with close spellings.
// Corrected entries carry a marker.
func (h *InputHandler) handleCorrect(word string) {
	if word == "" {
		log.Error("Usage: /correct <word>")
		return
	}
	if !h.checkInput(word) {
		return
	}

	start := time.Now()
	suggestions := h.engine.Correct(word, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for word: '%s'", word)
		return
	}

	h.out.Printf("Found %d suggestions for word '%s':", len(suggestions), word)
	h.printSuggestions(suggestions)
}

// handleFilter matches a wildcard pattern against the word index.
// Patterns carry * and ? so they bypass the noise filter.
func (h *InputHandler) handleFilter(pattern string) {
	if pattern == "" {
		log.Error("Usage: /filter <pattern>")
		return
	}
	if len(pattern) > h.maxPrefixLength {
		log.Errorf("Pattern too long: %s", pattern)
		return
	}

	start := time.Now()
	matches := h.engine.Filter(pattern)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for pattern '%s'", elapsed, pattern)

	if len(matches) == 0 {
		log.Warnf("No matches for pattern: '%s'", pattern)
		return
	}

	h.out.Printf("Found %d matches for pattern '%s':", len(matches), pattern)
	for i, m := range matches {
		fmtFreq := formatWithCommas(m.Frequency)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Key.String())
		h.out.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, fmtFreq)
	}
}

// handlePhrase completes leading tokens against the phrase index.
func (h *InputHandler) handlePhrase(text string) {
	tokens := strings.Fields(text)

	start := time.Now()
	suggestions := h.engine.CompletePhrase(tokens, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for tokens %v", elapsed, tokens)

	if len(suggestions) == 0 {
		log.Warnf("No phrases continue: '%s'", text)
		return
	}

	h.out.Printf("Found %d phrases continuing '%s':", len(suggestions), text)
	h.printSuggestions(suggestions)
}

// handleStats prints the engine counters in a stable order.
func (h *InputHandler) handleStats() {
	stats := h.engine.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h.out.Print("Engine stats:")
	for _, k := range keys {
		h.out.Printf("  %-18s %12s", k, formatWithCommas(stats[k]))
	}
	log.Debugf("Session requests: %d", h.requestCount)
}

// printSuggestions renders a suggestion list with colors and aligned
// frequency columns.
func (h *InputHandler) printSuggestions(suggestions []suggest.Suggestion) {
	for i, s := range suggestions {
		fmtFreq := formatWithCommas(s.Frequency)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		marker := ""
		if s.Corrected {
			marker = " ~"
		}
		h.out.Printf("%2d. %-40s (freq: %8s)%s", i+1, clWord, fmtFreq, marker)
	}
}

// formatWithCommas formats an integer with comma separators
func formatWithCommas(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
