package rules

import "github.com/FACorreiaa/sms-ingest/internal/domain/transaction"

// CategoryRule maps a case-insensitive substring keyword to a category.
// Rules are evaluated strictly in table order and the first match wins: the
// order below is a correctness contract, not a cosmetic choice. "amazon"
// must resolve to shopping before any generic rail keyword ("upi") can pull
// the same text into transfers.
type CategoryRule struct {
	Keyword     string
	Category    string
	SubCategory string
	// Scope restricts a rule to one direction. Empty means the rule applies
	// to any direction.
	Scope transaction.Direction
}

// Ruleset is the immutable, versioned rule configuration. Build it once with
// DefaultRuleset (or NewRuleset for tests) and inject it wherever
// classification happens; it is never mutated after construction.
type Ruleset struct {
	table   []CategoryRule
	income  *Engine
	expense *Engine
}

// NewRuleset compiles an ordered rule table into per-direction matchers.
// Income-scoped rules are consulted before unscoped ones when the direction
// is income; expense- and transfer-direction lookups see expense-scoped rules
// followed by unscoped ones.
func NewRuleset(table []CategoryRule) *Ruleset {
	ordered := func(scope transaction.Direction) []CategoryRule {
		out := make([]CategoryRule, 0, len(table))
		for _, r := range table {
			if r.Scope == scope {
				out = append(out, r)
			}
		}
		for _, r := range table {
			if r.Scope == "" {
				out = append(out, r)
			}
		}
		return out
	}

	return &Ruleset{
		table:   table,
		income:  newEngine(ordered(transaction.DirectionIncome)),
		expense: newEngine(ordered(transaction.DirectionExpense)),
	}
}

// DefaultRuleset returns the built-in rule table.
func DefaultRuleset() *Ruleset {
	return NewRuleset(defaultTable)
}

// Match returns the earliest-ordered rule whose keyword occurs in text, or
// nil when nothing matches. Matching is case-insensitive and substring based.
func (rs *Ruleset) Match(text string, direction transaction.Direction) *RuleMatch {
	if direction == transaction.DirectionIncome {
		return rs.income.Match(text)
	}
	return rs.expense.Match(text)
}

// Rules returns a copy of the underlying table, mostly for introspection and
// tests.
func (rs *Ruleset) Rules() []CategoryRule {
	out := make([]CategoryRule, len(rs.table))
	copy(out, rs.table)
	return out
}

var defaultTable = []CategoryRule{
	// Income rules. These sit first so the income path scans them in table
	// order before anything generic.
	{Keyword: "salary", Category: "salary", SubCategory: "payroll", Scope: transaction.DirectionIncome},
	{Keyword: "payroll", Category: "salary", SubCategory: "payroll", Scope: transaction.DirectionIncome},
	{Keyword: "wages", Category: "salary", Scope: transaction.DirectionIncome},
	{Keyword: "freelance", Category: "freelance", Scope: transaction.DirectionIncome},
	{Keyword: "consulting", Category: "freelance", Scope: transaction.DirectionIncome},
	{Keyword: "invoice", Category: "freelance", Scope: transaction.DirectionIncome},
	{Keyword: "dividend", Category: "investment_income", SubCategory: "dividend", Scope: transaction.DirectionIncome},
	{Keyword: "interest", Category: "investment_income", SubCategory: "interest", Scope: transaction.DirectionIncome},
	{Keyword: "maturity", Category: "investment_income", Scope: transaction.DirectionIncome},
	{Keyword: "refund", Category: "refund", Scope: transaction.DirectionIncome},
	{Keyword: "reversal", Category: "refund", Scope: transaction.DirectionIncome},
	{Keyword: "cashback", Category: "cashback", Scope: transaction.DirectionIncome},
	{Keyword: "reward", Category: "cashback", Scope: transaction.DirectionIncome},

	// Food & groceries.
	{Keyword: "swiggy", Category: "food", SubCategory: "delivery"},
	{Keyword: "zomato", Category: "food", SubCategory: "delivery"},
	{Keyword: "blinkit", Category: "food", SubCategory: "groceries"},
	{Keyword: "zepto", Category: "food", SubCategory: "groceries"},
	{Keyword: "bigbasket", Category: "food", SubCategory: "groceries"},
	{Keyword: "dominos", Category: "food", SubCategory: "restaurant"},
	{Keyword: "mcdonald", Category: "food", SubCategory: "restaurant"},
	{Keyword: "kfc", Category: "food", SubCategory: "restaurant"},
	{Keyword: "restaurant", Category: "food", SubCategory: "restaurant"},
	{Keyword: "cafe", Category: "food", SubCategory: "cafe"},
	{Keyword: "grocer", Category: "food", SubCategory: "groceries"},
	{Keyword: "food", Category: "food"},

	// Transport.
	{Keyword: "uber", Category: "transport", SubCategory: "rideshare"},
	{Keyword: "ola", Category: "transport", SubCategory: "rideshare"},
	{Keyword: "rapido", Category: "transport", SubCategory: "rideshare"},
	{Keyword: "petrol", Category: "transport", SubCategory: "fuel"},
	{Keyword: "diesel", Category: "transport", SubCategory: "fuel"},
	{Keyword: "fuel", Category: "transport", SubCategory: "fuel"},
	{Keyword: "fastag", Category: "transport", SubCategory: "toll"},
	{Keyword: "toll", Category: "transport", SubCategory: "toll"},
	{Keyword: "parking", Category: "transport", SubCategory: "parking"},
	{Keyword: "metro", Category: "transport", SubCategory: "transit"},

	// Shopping. Must precede the generic transfer rules so "amazon pay"
	// stays shopping.
	{Keyword: "amazon", Category: "shopping", SubCategory: "online"},
	{Keyword: "flipkart", Category: "shopping", SubCategory: "online"},
	{Keyword: "myntra", Category: "shopping", SubCategory: "clothing"},
	{Keyword: "ajio", Category: "shopping", SubCategory: "clothing"},
	{Keyword: "ikea", Category: "shopping", SubCategory: "home"},
	{Keyword: "mall", Category: "shopping"},
	{Keyword: "mart", Category: "shopping"},
	{Keyword: "store", Category: "shopping"},
	{Keyword: "shopping", Category: "shopping"},

	// Utilities & bills.
	{Keyword: "electricity", Category: "utilities", SubCategory: "electricity"},
	{Keyword: "water bill", Category: "utilities", SubCategory: "water"},
	{Keyword: "broadband", Category: "utilities", SubCategory: "internet"},
	{Keyword: "wifi", Category: "utilities", SubCategory: "internet"},
	{Keyword: "jio", Category: "utilities", SubCategory: "telecom"},
	{Keyword: "airtel", Category: "utilities", SubCategory: "telecom"},
	{Keyword: "vodafone", Category: "utilities", SubCategory: "telecom"},
	{Keyword: "bsnl", Category: "utilities", SubCategory: "telecom"},
	{Keyword: "recharge", Category: "utilities", SubCategory: "telecom"},
	{Keyword: "dth", Category: "utilities", SubCategory: "tv"},
	{Keyword: "gas bill", Category: "utilities", SubCategory: "gas"},
	{Keyword: "postpaid", Category: "utilities", SubCategory: "telecom"},

	// Entertainment.
	{Keyword: "netflix", Category: "entertainment", SubCategory: "streaming"},
	{Keyword: "hotstar", Category: "entertainment", SubCategory: "streaming"},
	{Keyword: "prime video", Category: "entertainment", SubCategory: "streaming"},
	{Keyword: "spotify", Category: "entertainment", SubCategory: "streaming"},
	{Keyword: "bookmyshow", Category: "entertainment", SubCategory: "movies"},
	{Keyword: "movie", Category: "entertainment", SubCategory: "movies"},
	{Keyword: "gaming", Category: "entertainment", SubCategory: "gaming"},

	// Healthcare.
	{Keyword: "hospital", Category: "healthcare"},
	{Keyword: "pharmacy", Category: "healthcare", SubCategory: "pharmacy"},
	{Keyword: "apollo", Category: "healthcare", SubCategory: "pharmacy"},
	{Keyword: "medplus", Category: "healthcare", SubCategory: "pharmacy"},
	{Keyword: "1mg", Category: "healthcare", SubCategory: "pharmacy"},
	{Keyword: "clinic", Category: "healthcare"},
	{Keyword: "doctor", Category: "healthcare"},
	{Keyword: "medical", Category: "healthcare"},

	// Education.
	{Keyword: "school", Category: "education"},
	{Keyword: "college", Category: "education"},
	{Keyword: "tuition", Category: "education"},
	{Keyword: "udemy", Category: "education", SubCategory: "courses"},
	{Keyword: "coursera", Category: "education", SubCategory: "courses"},
	{Keyword: "exam fee", Category: "education"},

	// Housing.
	{Keyword: "rent", Category: "rent"},
	{Keyword: "landlord", Category: "rent"},
	{Keyword: "maintenance", Category: "rent", SubCategory: "society"},

	// Insurance.
	{Keyword: "insurance", Category: "insurance"},
	{Keyword: "premium", Category: "insurance"},
	{Keyword: "lic", Category: "insurance", SubCategory: "life"},
	{Keyword: "policy", Category: "insurance"},

	// Investments.
	{Keyword: "zerodha", Category: "investment", SubCategory: "stocks"},
	{Keyword: "groww", Category: "investment", SubCategory: "stocks"},
	{Keyword: "upstox", Category: "investment", SubCategory: "stocks"},
	{Keyword: "mutual fund", Category: "investment", SubCategory: "mutual_fund"},
	{Keyword: "sip", Category: "investment", SubCategory: "mutual_fund"},
	{Keyword: "stocks", Category: "investment", SubCategory: "stocks"},

	// Personal care.
	{Keyword: "salon", Category: "personal_care"},
	{Keyword: "spa", Category: "personal_care"},
	{Keyword: "haircut", Category: "personal_care"},

	// Travel.
	{Keyword: "irctc", Category: "travel", SubCategory: "train"},
	{Keyword: "makemytrip", Category: "travel"},
	{Keyword: "goibibo", Category: "travel"},
	{Keyword: "redbus", Category: "travel", SubCategory: "bus"},
	{Keyword: "oyo", Category: "travel", SubCategory: "hotel"},
	{Keyword: "hotel", Category: "travel", SubCategory: "hotel"},
	{Keyword: "flight", Category: "travel", SubCategory: "flights"},
	{Keyword: "airlines", Category: "travel", SubCategory: "flights"},
	{Keyword: "indigo", Category: "travel", SubCategory: "flights"},

	// Subscriptions.
	{Keyword: "subscription", Category: "subscriptions"},
	{Keyword: "membership", Category: "subscriptions"},
	{Keyword: "renewal", Category: "subscriptions"},

	// Cash.
	{Keyword: "atm", Category: "cash", SubCategory: "atm"},
	{Keyword: "cash withdrawal", Category: "cash", SubCategory: "atm"},
	{Keyword: "cwd", Category: "cash", SubCategory: "atm"},

	// Generic transfer rails last: any merchant keyword above outranks them.
	{Keyword: "upi", Category: "transfer", SubCategory: "upi"},
	{Keyword: "imps", Category: "transfer", SubCategory: "imps"},
	{Keyword: "neft", Category: "transfer", SubCategory: "neft"},
	{Keyword: "rtgs", Category: "transfer", SubCategory: "rtgs"},
	{Keyword: "transfer", Category: "transfer"},
}
