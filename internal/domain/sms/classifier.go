// Package sms turns raw bank and wallet SMS into structured transactions.
// It hosts the relevance classifier, the parsing pipeline and the batch
// deduplicator.
package sms

import (
	"regexp"
	"strings"

	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

// senderAllowList holds known financial sender identifiers. Matching is
// case-insensitive, as a substring or a full token of the sender field
// (DLT sender ids look like "VM-HDFCBK" or "AD-ICICIB").
var senderAllowList = []string{
	"hdfc", "icici", "sbi", "axis", "kotak", "pnb", "canbnk", "idfc",
	"yesbnk", "indusb", "paytm", "phonepe", "gpay", "bob", "unionb",
}

// transactionKeywords are verbs and payment-rail tokens that mark a body as
// transactional even when the sender is unknown.
var transactionKeywords = []string{
	"debited", "credited", "withdrawn", "deposited", "spent",
	"received", "transferred", "paid",
	"upi", "imps", "neft", "rtgs", "bhim",
}

// amountHint matches a currency marker optionally followed by a number with
// thousands separators and up to two decimals.
var amountHint = regexp.MustCompile(`(?i)(?:₹|\brs\.?|\binr\b)\s*(?:\d[\d,]*(?:\.\d{1,2})?)?`)

// IsTransactionMessage reports whether msg looks like a transaction
// notification. The rule is two-factor: a qualifying sender or a transaction
// keyword on its own is not enough, the body must also carry a currency
// amount. Promotional SMS mention banks and money words all the time; the
// second factor keeps them out.
func IsTransactionMessage(msg transaction.RawMessage) bool {
	if msg.Body == "" {
		return false
	}

	body := strings.ToLower(msg.Body)

	qualified := senderAllowed(msg.Sender) || containsKeyword(body)
	if !qualified {
		return false
	}

	return amountHint.MatchString(msg.Body)
}

func senderAllowed(sender string) bool {
	if sender == "" {
		return false
	}
	lower := strings.ToLower(sender)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})

	for _, id := range senderAllowList {
		if strings.Contains(lower, id) {
			return true
		}
		for _, tok := range tokens {
			if tok == id {
				return true
			}
		}
	}
	return false
}

func containsKeyword(lowerBody string) bool {
	for _, kw := range transactionKeywords {
		if strings.Contains(lowerBody, kw) {
			return true
		}
	}
	return false
}
