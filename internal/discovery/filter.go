package discovery

import (
	"path/filepath"
	"strings"

	"tcm/internal/domain"
)

// Filter filters test results by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps results whose name or display name matches pattern.
// Supports wildcards like "*Login*" or "jUnit_?ailingTest*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(results []domain.TestResult, pattern string) []domain.TestResult {
	if pattern == "" {
		return results
	}

	var filtered []domain.TestResult
	for _, r := range results {
		if matchName(pattern, r.Name) || (r.DisplayName != "" && matchName(pattern, r.DisplayName)) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchName(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match does not let * cross a path separator, which test names may contain
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Fall back to ordered substring matching of the parts between wildcards
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	anchored := !strings.HasPrefix(pattern, "*")
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 || (i == 0 && anchored && idx != 0) {
			return false
		}
		rest = rest[idx+len(part):]
	}
	if last := parts[len(parts)-1]; last != "" {
		return strings.HasSuffix(name, last)
	}
	return true
}
