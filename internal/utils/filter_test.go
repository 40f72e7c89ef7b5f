package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain word", "hello", true},
		{"mixed alphanumeric", "abc123", true},
		{"with separator", "well-known", true},
		{"empty", "", false},
		{"only digits", "12345", false},
		{"special chars", "he!!o", false},
		{"repetitive", "wwww", false},
		{"short repeat ok", "aa", true},
		{"unicode letters", "café", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidInput(tc.input); got != tc.want {
				t.Errorf("IsValidInput(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsRepetitive(t *testing.T) {
	if IsRepetitive("ab") {
		t.Error("two distinct chars flagged as repetitive")
	}
	if !IsRepetitive("ddd") {
		t.Error("ddd should be repetitive")
	}
	if IsRepetitive("dda") {
		t.Error("dda should not be repetitive")
	}
}

func TestCreateRankList(t *testing.T) {
	ranks := CreateRankList(3)
	if len(ranks) != 3 {
		t.Fatalf("expected 3 ranks, got %d", len(ranks))
	}
	for i, r := range ranks {
		if r != uint16(i+1) {
			t.Errorf("rank[%d] = %d, want %d", i, r, i+1)
		}
	}
	if got := CreateRankList(0); len(got) != 0 {
		t.Errorf("expected empty rank list for count 0, got %v", got)
	}
}

func TestResolveCorpusPath(t *testing.T) {
	dir := t.TempDir()
	corpusFile := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpusFile, []byte("a few words"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveCorpusPath(corpusFile)
	if err != nil {
		t.Fatalf("ResolveCorpusPath failed: %v", err)
	}
	if got != corpusFile {
		t.Errorf("resolved %q, want %q", got, corpusFile)
	}

	if _, err := ResolveCorpusPath(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing corpus file")
	}
	if _, err := ResolveCorpusPath(""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := ResolveCorpusPath(dir); err == nil {
		t.Error("directories should not resolve as corpus files")
	}
}
