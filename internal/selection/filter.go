package selection

import (
	"path/filepath"
	"strings"

	"beeftest/internal/registry"
)

// Filter narrows a list of tests by a name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// ByPattern keeps the tests whose name matches pattern.
// Supports wildcards ("*user*", "add?") and plain substrings ("user").
// An empty pattern keeps everything.
func (f *Filter) ByPattern(tests []*registry.Descriptor, pattern string) []*registry.Descriptor {
	if pattern == "" {
		return tests
	}

	var filtered []*registry.Descriptor
	for _, d := range tests {
		if MatchName(pattern, d.Name) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// MatchName reports whether name matches pattern
func MatchName(pattern, name string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to an ordered fragment match so "*pay*ok" still finds
	// names filepath.Match rejects (for example ones containing '/').
	if !strings.Contains(pattern, "*") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}
