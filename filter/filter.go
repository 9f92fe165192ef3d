package filter

import (
	"fmt"
	"github.com/gobwas/glob"
	"iter"
	"strings"
)

// Matcher tests the display form of list values against glob patterns.
type Matcher struct {
	patterns   []glob.Glob
	ignoreCase bool
}

// Hit is a value whose display form matched, with its 0-based list position.
type Hit struct {
	Index int
	Value any
}

func expandPatternsIfNeeded(patterns []string) []string {
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "*/") {
			patterns = append(patterns, strings.Replace(pattern, "*/", "", 1))
		}
		if strings.HasPrefix(pattern, "**/") {
			patterns = append(patterns, strings.Replace(pattern, "**/", "", 1))
		}
	}
	return patterns
}

// Compile builds a Matcher. With ignoreCase set, patterns and values are both
// lower-cased before matching.
func Compile(patterns []string, ignoreCase bool) (*Matcher, error) {
	patterns = expandPatternsIfNeeded(patterns)
	matcher := &Matcher{
		patterns:   make([]glob.Glob, len(patterns)),
		ignoreCase: ignoreCase,
	}
	for i, pattern := range patterns {
		if ignoreCase {
			pattern = strings.ToLower(pattern)
		}
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern '%v': %w", pattern, err)
		}
		matcher.patterns[i] = compiled
	}
	return matcher, nil
}

func (matcher *Matcher) Empty() bool {
	return len(matcher.patterns) == 0
}

// Match reports whether the %v form of value matches any pattern.
func (matcher *Matcher) Match(value any) bool {
	text := fmt.Sprintf("%v", value)
	if matcher.ignoreCase {
		text = strings.ToLower(text)
	}
	for _, pattern := range matcher.patterns {
		if pattern.Match(text) {
			return true
		}
	}
	return false
}

// Select walks values in order and returns the ones that match.
func Select[T any](matcher *Matcher, values iter.Seq2[int, T]) []Hit {
	hits := []Hit{}
	for index, value := range values {
		if matcher.Match(value) {
			hits = append(hits, Hit{Index: index, Value: value})
		}
	}
	return hits
}
