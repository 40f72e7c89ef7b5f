package corpus

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// maxCorpusBytes caps how much raw text a single load accepts.
const maxCorpusBytes = 64 << 20

// Load reads a plain-text corpus file and tokenizes it into sentences.
func Load(path string) ([][]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat corpus %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("corpus %s is a directory", path)
	}
	if info.Size() > maxCorpusBytes {
		return nil, fmt.Errorf("corpus %s is too large (%d bytes, max %d)",
			path, info.Size(), int64(maxCorpusBytes))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer f.Close()

	sentences, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	log.Debugf("loaded corpus %s: %d sentences", path, len(sentences))
	return sentences, nil
}

// Read tokenizes raw text from r into sentences, refusing inputs over
// the corpus size cap.
func Read(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxCorpusBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus text: %w", err)
	}
	if len(data) > maxCorpusBytes {
		return nil, fmt.Errorf("corpus text exceeds %d bytes", int64(maxCorpusBytes))
	}
	return NewTokenizer().Sentences(string(data)), nil
}
