package wordlist

import "unicode"

// Keep reports whether a word can be a typing target: non-empty, no
// whitespace and no control characters.
func Keep(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
