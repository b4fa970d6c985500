// Package wordlist provides the game vocabulary.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var builtin = []string{
	"react",
	"coding",
	"frontend",
	"javascript",
	"pinterest",
	"developer",
	"keyboard",
	"project",
	"design",
	"state",
	"hook",
	"context",
}

// Builtin returns a copy of the default vocabulary.
func Builtin() []string {
	return append([]string(nil), builtin...)
}

// LoadWords reads one word per line from the provided file path.
// Lines rejected by Keep are skipped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !Keep(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Resolve returns the custom vocabulary at path, or the built-in list when path is empty.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return Builtin(), nil
	}
	words, err := LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	return words, nil
}
