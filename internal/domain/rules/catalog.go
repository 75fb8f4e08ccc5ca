// Package rules holds the static categorization tables: the category catalog
// shown to UI collaborators and the ordered keyword rules used by the
// classifier. Everything here is built once at process start and read-only
// afterwards, so it is safe to share across concurrent callers.
package rules

import "github.com/FACorreiaa/sms-ingest/internal/domain/transaction"

// Reserved fallback categories. A classification never returns an empty
// category: when no rule matches, one of these is used with low confidence.
const (
	FallbackExpense  = "other"
	FallbackIncome   = "other_income"
	FallbackTransfer = "transfer"
)

// Category describes one entry of the catalog: a stable id used on
// ParsedTransaction records, a display name and an icon token for pickers.
type Category struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Icon      string                `json:"icon"`
	Direction transaction.Direction `json:"direction"`
}

// Catalog returns the full category listing in display order. The slice is a
// copy; callers may reorder it freely.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryByID looks up a catalog entry. The second return is false for
// unknown ids.
func CategoryByID(id string) (Category, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

var catalog = []Category{
	{ID: "food", Name: "Food & Dining", Icon: "utensils", Direction: transaction.DirectionExpense},
	{ID: "transport", Name: "Transport", Icon: "car", Direction: transaction.DirectionExpense},
	{ID: "shopping", Name: "Shopping", Icon: "shopping-bag", Direction: transaction.DirectionExpense},
	{ID: "utilities", Name: "Utilities & Bills", Icon: "zap", Direction: transaction.DirectionExpense},
	{ID: "entertainment", Name: "Entertainment", Icon: "film", Direction: transaction.DirectionExpense},
	{ID: "healthcare", Name: "Healthcare", Icon: "heart-pulse", Direction: transaction.DirectionExpense},
	{ID: "education", Name: "Education", Icon: "graduation-cap", Direction: transaction.DirectionExpense},
	{ID: "rent", Name: "Rent & Housing", Icon: "home", Direction: transaction.DirectionExpense},
	{ID: "insurance", Name: "Insurance", Icon: "shield", Direction: transaction.DirectionExpense},
	{ID: "investment", Name: "Investments", Icon: "trending-up", Direction: transaction.DirectionExpense},
	{ID: "personal_care", Name: "Personal Care", Icon: "scissors", Direction: transaction.DirectionExpense},
	{ID: "travel", Name: "Travel", Icon: "plane", Direction: transaction.DirectionExpense},
	{ID: "subscriptions", Name: "Subscriptions", Icon: "repeat", Direction: transaction.DirectionExpense},
	{ID: "cash", Name: "Cash Withdrawal", Icon: "banknote", Direction: transaction.DirectionExpense},
	{ID: "transfer", Name: "Transfers", Icon: "arrow-left-right", Direction: transaction.DirectionTransfer},
	{ID: "salary", Name: "Salary", Icon: "briefcase", Direction: transaction.DirectionIncome},
	{ID: "freelance", Name: "Freelance", Icon: "laptop", Direction: transaction.DirectionIncome},
	{ID: "business", Name: "Business Income", Icon: "building", Direction: transaction.DirectionIncome},
	{ID: "investment_income", Name: "Investment Income", Icon: "line-chart", Direction: transaction.DirectionIncome},
	{ID: "refund", Name: "Refunds", Icon: "rotate-ccw", Direction: transaction.DirectionIncome},
	{ID: "cashback", Name: "Cashback & Rewards", Icon: "gift", Direction: transaction.DirectionIncome},
	{ID: FallbackExpense, Name: "Other", Icon: "circle-ellipsis", Direction: transaction.DirectionExpense},
	{ID: FallbackIncome, Name: "Other Income", Icon: "circle-plus", Direction: transaction.DirectionIncome},
}
