// Package filter narrows a candidate list down to the items matching a
// query, preserving candidate order.
package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher decides whether a single candidate matches a query
type Matcher interface {
	Match(query, candidate string) bool
}

// Apply returns the ordered subset of candidates matched by the query.
// The relative order of surviving items is the candidate order; matchers
// never re-rank. An empty query matches everything and returns the
// candidate slice unmodified.
func Apply(m Matcher, query string, candidates []string) []string {
	if query == "" {
		return candidates
	}

	var matched []string
	for _, candidate := range candidates {
		if m.Match(query, candidate) {
			matched = append(matched, candidate)
		}
	}

	return matched
}

// Substring matches candidates containing the query as a contiguous
// substring. Case-sensitive, no normalization.
type Substring struct{}

func (Substring) Match(query, candidate string) bool {
	return strings.Contains(candidate, query)
}

// Fuzzy matches candidates containing the query characters in order,
// not necessarily adjacent. Ranking is discarded: the picker keeps
// candidate order regardless of match quality.
type Fuzzy struct{}

func (Fuzzy) Match(query, candidate string) bool {
	return len(fuzzy.Find(query, []string{candidate})) > 0
}
