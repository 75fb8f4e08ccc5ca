package rules

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// RuleMatch is the outcome of a rule-table lookup.
type RuleMatch struct {
	Keyword     string // keyword that matched
	Category    string
	SubCategory string
	Priority    int // higher wins; derived from table position
}

// Engine answers "which rule matches this text first" using the Aho-Corasick
// algorithm: a single pass over the text regardless of how many keywords the
// table holds. Priority encodes table order (earlier rule = higher priority),
// so the best-priority match is exactly the first-match-wins semantics of a
// linear scan over the ordered table.
//
// The engine is immutable after construction; no locking is needed.
type Engine struct {
	matcher  *ahocorasick.Matcher
	metadata [][]RuleMatch // parallel to the matcher's pattern list
}

// newEngine compiles an ordered rule list. Duplicate keywords are grouped so
// every occurrence keeps its own category and priority.
func newEngine(ordered []CategoryRule) *Engine {
	e := &Engine{}
	if len(ordered) == 0 {
		return e
	}

	patternToIndex := make(map[string]int, len(ordered))
	patterns := make([]string, 0, len(ordered))
	metadata := make([][]RuleMatch, 0, len(ordered))

	for i, rule := range ordered {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if keyword == "" {
			continue
		}

		match := RuleMatch{
			Keyword:     keyword,
			Category:    rule.Category,
			SubCategory: rule.SubCategory,
			Priority:    len(ordered) - i,
		}

		if idx, exists := patternToIndex[keyword]; exists {
			metadata[idx] = append(metadata[idx], match)
			continue
		}
		patternToIndex[keyword] = len(patterns)
		patterns = append(patterns, keyword)
		metadata = append(metadata, []RuleMatch{match})
	}

	e.metadata = metadata
	if len(patterns) > 0 {
		e.matcher = ahocorasick.NewStringMatcher(patterns)
	}
	return e
}

// Match returns the highest-priority rule whose keyword occurs in text, or
// nil when no keyword matches. Matching is case-insensitive.
func (e *Engine) Match(text string) *RuleMatch {
	if e.matcher == nil {
		return nil
	}

	hits := e.matcher.Match([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return nil
	}

	var best *RuleMatch
	for _, idx := range hits {
		if idx < 0 || idx >= len(e.metadata) {
			continue
		}
		for i := range e.metadata[idx] {
			m := &e.metadata[idx][i]
			if best == nil || m.Priority > best.Priority {
				cp := *m
				best = &cp
			}
		}
	}
	return best
}

// PatternCount returns the number of distinct keywords loaded.
func (e *Engine) PatternCount() int {
	return len(e.metadata)
}
