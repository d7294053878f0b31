package skill

import (
	"regexp"
	"strings"
)

// fenceRe matches a fenced code region: opening fence with optional
// language tag, content, closing fence. Non-greedy so adjacent blocks
// stay separate.
var fenceRe = regexp.MustCompile("(?s)```(\\w*)\n(.*?)```")

// Fragment is one fenced code region extracted from a document body.
// Fragments are immutable snapshots scoped to a single validation pass.
type Fragment struct {
	// Text is the fragment content with surrounding whitespace trimmed.
	Text string

	// Language is the declared fence language tag, case-preserved.
	// Empty means no tag was declared.
	Language string

	// Ordinal is the 1-based position of the fragment in the document.
	Ordinal int
}

// ExtractFragments splits a document body into its fenced code
// fragments in document order. A body with no fences yields an empty
// slice, not an error.
func ExtractFragments(body string) []Fragment {
	matches := fenceRe.FindAllStringSubmatch(body, -1)
	fragments := make([]Fragment, 0, len(matches))
	for i, m := range matches {
		fragments = append(fragments, Fragment{
			Text:     strings.TrimSpace(m[2]),
			Language: m[1],
			Ordinal:  i + 1,
		})
	}
	return fragments
}

// Lines returns the fragment text split into lines.
func (f Fragment) Lines() []string {
	return strings.Split(f.Text, "\n")
}
