// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrimLower removes duplicates and empty strings from a slice,
// trimming whitespace and lowercasing each element. First occurrence wins
// and order is preserved. Used to clean comma-separated configuration
// lists before they become lookup keys.
//
// Example:
//
//	DedupeAndTrimLower([]string{"  Dashboard ", "login", "dashboard", ""})
//	// Returns: []string{"dashboard", "login"}
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		cleaned := strings.ToLower(strings.TrimSpace(v))
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; !ok {
			seen[cleaned] = struct{}{}
			result = append(result, cleaned)
		}
	}

	return result
}
