// Package diff produces unified diffs between two textual tower descriptions.
// It uses github.com/pmezard/go-difflib/difflib for the ---/+++/@@ output.
package diff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of unchanged lines shown around each change.
const DefaultContext = 3

// Unified returns the unified diff turning a into b, or "" when they are
// equal. context <= 0 selects [DefaultContext].
func Unified(aName, bName, a, b string, context int) (string, error) {
	if a == b {
		return "", nil
	}
	if context <= 0 {
		context = DefaultContext
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(a),
		B:        splitLines(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  context,
	})
}

// splitLines splits s after each newline, dropping the empty tail left by a
// trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Stats counts added and removed lines in a unified diff.
func Stats(unified string) (added, removed int) {
	for _, line := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}
