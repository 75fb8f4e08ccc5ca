package sms

import (
	"time"

	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

// DefaultDedupWindow is the tolerance within which two records with equal
// amount and direction are treated as the same underlying event. A single
// transfer often fires both a bank and a wallet notification seconds apart.
const DefaultDedupWindow = 60 * time.Second

// Dedupe collapses near-identical records using the default window.
func Dedupe(txs []transaction.ParsedTransaction) []transaction.ParsedTransaction {
	return DedupeWithin(txs, DefaultDedupWindow)
}

// DedupeWithin removes records whose amount and direction equal an earlier
// record within the given time window. The pass is order-preserving and
// first-seen wins; applying it twice yields the same result.
func DedupeWithin(txs []transaction.ParsedTransaction, window time.Duration) []transaction.ParsedTransaction {
	if len(txs) == 0 {
		return txs
	}

	kept := make([]transaction.ParsedTransaction, 0, len(txs))
	for _, tx := range txs {
		duplicate := false
		for i := range kept {
			if isDuplicate(kept[i], tx, window) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, tx)
		}
	}
	return kept
}

func isDuplicate(a, b transaction.ParsedTransaction, window time.Duration) bool {
	if a.Direction != b.Direction || !a.Amount.Equal(b.Amount) {
		return false
	}
	gap := a.Timestamp.Sub(b.Timestamp)
	if gap < 0 {
		gap = -gap
	}
	return gap <= window
}
