package categorize

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

const maxSuggestions = 3

// Suggest returns a short, ordered list of plausible categories for text
// that matched no rule, so the caller can offer alternatives to the user.
// Candidates are ranked by fuzzy distance between the text's tokens and the
// rule keywords; ties break on rule-table order, keeping the output
// deterministic.
func (c *Classifier) Suggest(text string, direction transaction.Direction) []string {
	type candidate struct {
		category string
		rank     int
		order    int
	}

	tokens := suggestTokens(text)
	best := make(map[string]candidate)

	for order, rule := range c.rules.Rules() {
		if rule.Scope != "" && rule.Scope != direction {
			continue
		}
		for _, token := range tokens {
			rank := fuzzy.RankMatchNormalizedFold(token, rule.Keyword)
			if r := fuzzy.RankMatchNormalizedFold(rule.Keyword, token); r >= 0 && (rank < 0 || r < rank) {
				rank = r
			}
			if rank < 0 {
				continue
			}
			cur, seen := best[rule.Category]
			if !seen || rank < cur.rank || (rank == cur.rank && order < cur.order) {
				best[rule.Category] = candidate{category: rule.Category, rank: rank, order: order}
			}
		}
	}

	if len(best) == 0 {
		return defaultSuggestions(direction)
	}

	ranked := make([]candidate, 0, len(best))
	for _, cand := range best {
		ranked = append(ranked, cand)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].rank != ranked[j].rank {
			return ranked[i].rank < ranked[j].rank
		}
		return ranked[i].order < ranked[j].order
	})

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	out := make([]string, len(ranked))
	for i, cand := range ranked {
		out[i] = cand.category
	}
	return out
}

// suggestTokens splits text into lowercase alphabetic tokens long enough to
// carry signal.
func suggestTokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 3 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func defaultSuggestions(direction transaction.Direction) []string {
	switch direction {
	case transaction.DirectionIncome:
		return []string{"salary", "freelance", "business"}
	case transaction.DirectionTransfer:
		return []string{"transfer", "cash"}
	default:
		return []string{"shopping", "food", "utilities"}
	}
}
