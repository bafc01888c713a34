package event

import "strings"

// Topic represents a hierarchical event type using dot notation.
// Examples: "view.selection.changed", "view.mouse.clicked".
type Topic string

// Wildcard constants for pattern matching.
const (
	// WildcardSingle matches exactly one segment.
	WildcardSingle = "*"

	// WildcardMulti matches zero or more trailing segments.
	WildcardMulti = "**"

	// Separator is the character used to separate topic segments.
	Separator = "."
)

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Segments returns the topic split by the separator.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), Separator)
}

// Match reports whether the topic matches the given pattern.
// A "*" segment matches any single segment; a trailing "**" matches
// zero or more remaining segments.
func (t Topic) Match(pattern Topic) bool {
	if pattern == t {
		return true
	}

	ps := pattern.Segments()
	ts := t.Segments()

	for i, p := range ps {
		if p == WildcardMulti {
			// Only meaningful as the final pattern segment.
			return i == len(ps)-1
		}
		if i >= len(ts) {
			return false
		}
		if p != WildcardSingle && p != ts[i] {
			return false
		}
	}
	return len(ps) == len(ts)
}
