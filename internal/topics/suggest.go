package topics

import (
	"strings"
	"unicode/utf8"
)

// Suggestion limits for syllabus text.
const (
	MaxSuggestions   = 20
	minSuggestionLen = 6  // exclusive
	maxSuggestionLen = 80 // exclusive
)

// SuggestTopics returns up to MaxSuggestions trimmed lines of text whose
// length is strictly between 6 and 80 characters.
func SuggestTopics(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		if n <= minSuggestionLen || n >= maxSuggestionLen {
			continue
		}
		out = append(out, line)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// ParsePortions splits comma-separated topic entry into trimmed, non-empty names.
func ParsePortions(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
