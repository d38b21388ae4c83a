// Package topics classifies topic names and extracts candidate topics
// from free text.
package topics

import "strings"

// HardKeywords mark a topic as hard when found anywhere in its name,
// ignoring case.
var HardKeywords = []string{"DP", "Graph", "Dynamic", "Backtracking", "Optimization", "Probability"}

// IsHard reports whether topic needs two recorded completions to count as done.
func IsHard(topic string) bool {
	lower := strings.ToLower(topic)
	for _, k := range HardKeywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
