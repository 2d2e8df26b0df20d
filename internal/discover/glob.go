package discover

import (
	"path"
	"path/filepath"
	"strings"
)

// MatchAny reports whether relPath matches at least one of patterns,
// expanding "**" as zero-or-more path segments in addition to the
// single-segment wildcards path.Match already supports (§3.4, §4.8: input
// globs such as "**/*.hpp" intersected with discovery, C8). An empty
// pattern list matches every path.
func MatchAny(patterns []string, relPath string) bool {
	if len(patterns) == 0 {
		return true
	}
	name := strings.Split(filepath.ToSlash(relPath), "/")
	for _, p := range patterns {
		if matchSegments(strings.Split(filepath.ToSlash(p), "/"), name) {
			return true
		}
	}
	return false
}

// matchSegments matches a glob pattern against a path, both already split
// on "/", honoring "**" as a segment that may consume any number (zero or
// more) of path segments. The standard library's path/filepath.Glob has no
// recursive-wildcard support, so this implements it directly.
func matchSegments(pat, name []string) bool {
	if len(pat) == 0 {
		return len(name) == 0
	}
	if pat[0] == "**" {
		if matchSegments(pat[1:], name) {
			return true
		}
		if len(name) == 0 {
			return false
		}
		return matchSegments(pat, name[1:])
	}
	if len(name) == 0 {
		return false
	}
	ok, err := path.Match(pat[0], name[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pat[1:], name[1:])
}
