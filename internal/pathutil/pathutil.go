package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	// Replace Windows separators and collapse redundant separators/segments.
	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// ExpandHome replaces a leading "~" with home and normalizes the result.
// Paths such as "~user/x" are left alone apart from normalization.
func ExpandHome(p, home string) string {
	switch {
	case p == "~":
		return NormalizePath(home)
	case strings.HasPrefix(p, "~/"), strings.HasPrefix(p, `~\`):
		return NormalizePath(filepath.Join(home, p[2:]))
	default:
		return NormalizePath(p)
	}
}

// Resolve expands p like ExpandHome and makes relative results absolute
// against base.
func Resolve(p, home, base string) string {
	expanded := ExpandHome(p, home)
	if expanded == "" || filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(NormalizePath(base), expanded)
}
