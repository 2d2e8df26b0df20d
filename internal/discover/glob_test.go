package discover

import "testing"

func TestMatchAnyRecursiveWildcard(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.hpp", "widget.hpp", true},
		{"**/*.hpp", "src/widget.hpp", true},
		{"**/*.hpp", "src/nested/widget.hpp", true},
		{"**/*.hpp", "widget.cpp", false},
		{"src/**/*.hpp", "widget.hpp", false},
		{"src/**/*.hpp", "src/widget.hpp", true},
		{"src/**/*.hpp", "src/a/b/widget.hpp", true},
		{"*.hpp", "src/widget.hpp", false},
	}
	for _, c := range cases {
		if got := MatchAny([]string{c.pattern}, c.path); got != c.want {
			t.Errorf("MatchAny(%q, %q) = %v, want %v", c.pattern, c.path, got, c.want)
		}
	}
}

func TestMatchAnyEmptyPatternsMatchesEverything(t *testing.T) {
	if !MatchAny(nil, "anything/at/all.hpp") {
		t.Fatalf("expected an empty pattern list to match every path")
	}
}

func TestMatchAnyMatchesAnyOfSeveralPatterns(t *testing.T) {
	patterns := []string{"**/*.hpp", "**/*.cpp"}
	if !MatchAny(patterns, "lib/widget.cpp") {
		t.Fatalf("expected lib/widget.cpp to match **/*.cpp")
	}
	if MatchAny(patterns, "lib/widget.py") {
		t.Fatalf("expected lib/widget.py to match neither pattern")
	}
}
