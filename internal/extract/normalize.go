package extract

import "strings"

// Lines decomposes raw page text into trimmed, non-empty lines in original
// order, for the line-oriented heuristics. The raw text itself stays
// untouched for whole-text pattern search.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
