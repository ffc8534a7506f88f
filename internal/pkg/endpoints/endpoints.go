// Package endpoints builds ordered candidate lists of external service base
// URLs from a configured override plus built-in fallbacks.
package endpoints

import "strings"

// Candidates splits override on ',' or ';', trims each entry, drops empties,
// appends fallbacks and removes duplicates keeping the first occurrence. An
// empty result is valid: callers must treat "no candidates" differently from
// "all candidates failed".
func Candidates(override string, fallbacks []string) []string {
	candidates := make([]string, 0, len(fallbacks)+1)
	seen := make(map[string]struct{})

	add := func(value string) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return
		}
		if _, ok := seen[trimmed]; ok {
			return
		}
		seen[trimmed] = struct{}{}
		candidates = append(candidates, trimmed)
	}

	for _, part := range strings.FieldsFunc(override, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		add(part)
	}

	for _, fallback := range fallbacks {
		add(fallback)
	}

	return candidates
}
