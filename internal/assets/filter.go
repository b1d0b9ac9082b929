package assets

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are names never copied into a build.
var DefaultExcludes = []string{
	".git",
	".DS_Store",
	"Thumbs.db",
	"node_modules",
	".folio",
}

func isDefaultExcluded(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// MatchesInclude reports whether relPath matches one of the include
// patterns. No patterns includes everything.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude reports whether relPath matches one of the exclude
// patterns.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// Selected reports whether relPath passes both filters.
func Selected(relPath string, include, exclude []string) bool {
	return MatchesInclude(relPath, include) && !MatchesExclude(relPath, exclude)
}

// matchesAny tries each pattern against the full slash path, then against the
// file name alone so "*.png" matches at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
