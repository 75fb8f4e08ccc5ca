// Package extract pulls individual scalars out of free-form bank SMS text.
// Every extractor is total: it returns the extracted value and true, or the
// zero value and false, and never errors. Patterns within an extractor are
// ordered by priority and the first syntactically valid hit wins.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxCounterpartyLen bounds the counterparty span so a missing stop token
// cannot swallow the rest of the message.
const MaxCounterpartyLen = 50

// currency is the marker fragment shared by the amount and balance patterns.
const currency = `(?:₹|\brs\.?|\binr\b)`

// number is digits with optional thousands separators and up to two decimals.
const number = `(\d[\d,]*(?:\.\d{1,2})?)`

var amountPatterns = []*regexp.Regexp{
	// Rs.2,500.00 / ₹ 150 / INR 99.50
	regexp.MustCompile(`(?i)` + currency + `\s*` + number),
	// amount: 2500 / amt 2,500.00
	regexp.MustCompile(`(?i)\bam(?:oun)?t\.?\s*[:\-]?\s*` + currency + `?\s*` + number),
	// 2,500.00 Rs
	regexp.MustCompile(`(?i)` + number + `\s*` + currency),
}

// Amount returns the first positive monetary amount in text.
func Amount(text string) (decimal.Decimal, bool) {
	return firstPositiveNumber(text, amountPatterns)
}

var balancePatterns = []*regexp.Regexp{
	// Available balance: Rs.45,000.50 / Avl Bal 1,200 / bal: 99 / Available: Rs.500
	regexp.MustCompile(`(?i)(?:(?:av(?:ai)?la?ble|avl\.?)\s*(?:bal(?:ance)?)?|bal(?:ance)?)\s*[:\-]?\s*` + currency + `?\s*` + number),
	// Rs.45,000.50 available balance / ₹500 bal
	regexp.MustCompile(`(?i)` + currency + `\s*` + number + `\s*(?:is\s+)?(?:your\s+)?(?:av(?:ai)?la?ble\s+)?bal(?:ance)?`),
}

// Balance returns the post-transaction balance when the text carries one,
// anchored to a balance/available/bal label.
func Balance(text string) (decimal.Decimal, bool) {
	return firstPositiveNumber(text, balancePatterns)
}

var accountPatterns = []*regexp.Regexp{
	// A/c XX1234, account no. 5678, acct *1234
	regexp.MustCompile(`(?i)(?:a/c|acct|account)\s*(?:no\.?)?\s*[:\-]?\s*([xX*]*\d{4,})`),
	// Bare masked run: xx1234, **4321
	regexp.MustCompile(`([xX*]{2,}\d{4})`),
}

// AccountFragment returns the masked or partial account number mentioned in
// the text.
func AccountFragment(text string) (string, bool) {
	for _, re := range accountPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

var referencePatterns = []*regexp.Regexp{
	// Ref 433445566778, Txn ID AX99213, UTR: 12345
	regexp.MustCompile(`(?i)(?:ref(?:erence)?|txn|transaction|utr)\s*(?:no\.?|id)?\s*[:\-#]?\s*([A-Za-z]*\d[A-Za-z0-9]*)`),
	// IMPS/NEFT/UPI followed directly by the reference token
	regexp.MustCompile(`(?i)(?:imps|neft|upi)\s*[:\-]?\s*([A-Za-z]*\d{5,}[A-Za-z0-9]*)`),
}

// ReferenceID returns the transaction reference mentioned in the text. The
// token must contain at least one digit so label words ("successful") are
// not mistaken for references.
func ReferenceID(text string) (string, bool) {
	for _, re := range referencePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// nameStop terminates a counterparty span: a trailing keyword, punctuation
// or end of string.
const nameStop = `(?:\s+(?:on|ref|upi|via)\b|[.,;\n]|$)`

var counterpartyPatterns = []*regexp.Regexp{
	// paid to Swiggy, received from Rahul, transferred to Landlord
	regexp.MustCompile(`(?i)(?:paid\s+to|sent\s+to|received\s+from|transferred\s+to)\s+([A-Za-z][A-Za-z0-9&@._' -]*?)` + nameStop),
	// vpa: merchant@okicici. Checked before the bare prepositions so the
	// "@" alternative below cannot eat half of a virtual payment address.
	regexp.MustCompile(`(?i)vpa\s*[:\s]\s*([A-Za-z0-9._@-]+)`),
	// to Swiggy / at Big Bazaar / from HDFC / @merchant
	regexp.MustCompile(`(?i)(?:\b(?:to|at|from)\s+|@\s*)([A-Za-z][A-Za-z0-9&@._' -]*?)` + nameStop),
}

// Counterparty returns the merchant or person the money moved to or from,
// truncated to MaxCounterpartyLen.
func Counterparty(text string) (string, bool) {
	for _, re := range counterpartyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if len(name) > MaxCounterpartyLen {
			name = strings.TrimSpace(name[:MaxCounterpartyLen])
		}
		return name, true
	}
	return "", false
}

// firstPositiveNumber runs the ordered pattern list and returns the first
// match that parses to a strictly positive decimal. Parse failures and
// non-positive values fall through to the next pattern.
func firstPositiveNumber(text string, patterns []*regexp.Regexp) (decimal.Decimal, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		d, err := decimal.NewFromString(raw)
		if err != nil || !d.IsPositive() {
			continue
		}
		return d, true
	}
	return decimal.Decimal{}, false
}
