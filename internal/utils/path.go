package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ResolveCorpusPath locates a corpus file, trying in order: the path as
// given (absolute paths resolve immediately), relative to the working
// directory, then relative to the executable directory. The last helps
// installed binaries find corpora shipped next to them.
func ResolveCorpusPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no corpus path given")
	}

	candidates := []string{path}
	if !filepath.IsAbs(path) {
		if execDir, err := GetExecutableDir(); err == nil {
			candidates = append(candidates, filepath.Join(execDir, path))
		}
	}

	for _, candidate := range candidates {
		if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
			log.Debugf("Resolved corpus path: %s", candidate)
			return candidate, nil
		}
		log.Debugf("Corpus path candidate not found: %s", candidate)
	}
	return "", fmt.Errorf("corpus file %s not found: %w", path, os.ErrNotExist)
}
