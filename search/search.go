// Package search implements literal line matching over in-memory text.
//
// Results are substrings of the searched contents and share its backing
// storage; nothing is copied.
package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines yields the lines of contents without their terminators. Both "\n"
// and "\r\n" end a line. A trailing terminator does not produce a final
// empty line.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Search returns every line of contents that contains query, in order.
// An empty query matches every line.
func Search(query, contents string) []string {
	var results []string
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is Search with both query and line lowered before
// comparison. The returned lines keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var results []string
	for line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}
