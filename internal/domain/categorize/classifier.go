// Package categorize assigns a direction and a taxonomy category to
// free-form transaction text. It serves both the SMS pipeline and the
// manual-entry path.
package categorize

import (
	"strings"

	"github.com/FACorreiaa/sms-ingest/internal/domain/rules"
	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

// Confidence is deliberately two-tier: the classifier claims "a rule
// matched" or "it did not", nothing finer.
const (
	ConfidenceRuleMatch = 85
	ConfidenceFallback  = 30
)

var creditKeywords = []string{
	"credited", "received", "refund", "cashback", "deposited",
}

// A credit keyword alone is not enough: bank SMS routinely describe money
// credited to the other party's account. Income is only confirmed when one
// of these qualifying phrases co-occurs. Legitimate credits phrased
// differently fall through to the expense default; that trade-off is
// inherited behavior, kept until real-world samples justify changing it.
var creditQualifiers = []string{
	"credited to your", "credited to a/c", "credited to ac", "received", "refund", "cashback",
}

var debitKeywords = []string{
	"debited", "withdrawn", "spent", "paid", "sent", "purchase", "deducted", "charged",
}

// Classifier is stateless apart from the injected read-only ruleset.
type Classifier struct {
	rules *rules.Ruleset
}

// NewClassifier creates a classifier over the given ruleset.
func NewClassifier(rs *rules.Ruleset) *Classifier {
	return &Classifier{rules: rs}
}

// Direction decides income vs expense from keyword evidence. When neither
// side matches it defaults to expense, the conservative choice: most
// financial SMS are debits.
func (c *Classifier) Direction(text string) transaction.Direction {
	lower := strings.ToLower(text)

	if containsAny(lower, creditKeywords) && containsAny(lower, creditQualifiers) {
		return transaction.DirectionIncome
	}
	if containsAny(lower, debitKeywords) {
		return transaction.DirectionExpense
	}
	return transaction.DirectionExpense
}

// Classify maps text to a direction, category and confidence. A non-empty
// hint overrides keyword-based direction detection (manual entry and bulk
// import callers already know the direction). The result is deterministic:
// identical input always yields the identical tuple.
func (c *Classifier) Classify(text string, hint transaction.Direction) transaction.CategorizationResult {
	direction := hint
	if direction == "" {
		direction = c.Direction(text)
	}

	if match := c.rules.Match(text, direction); match != nil {
		return transaction.CategorizationResult{
			Direction:   direction,
			Category:    match.Category,
			SubCategory: match.SubCategory,
			Confidence:  ConfidenceRuleMatch,
		}
	}

	return transaction.CategorizationResult{
		Direction:           direction,
		Category:            fallbackCategory(direction),
		Confidence:          ConfidenceFallback,
		SuggestedCategories: c.Suggest(text, direction),
	}
}

func fallbackCategory(direction transaction.Direction) string {
	switch direction {
	case transaction.DirectionIncome:
		return rules.FallbackIncome
	case transaction.DirectionExpense:
		return rules.FallbackExpense
	default:
		return rules.FallbackTransfer
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
