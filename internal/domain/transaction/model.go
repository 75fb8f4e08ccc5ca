// Package transaction defines the shared data model produced by the SMS
// ingestion pipeline and consumed by storage collaborators.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction classifies where the money moved relative to the account holder.
type Direction string

const (
	DirectionIncome   Direction = "income"
	DirectionExpense  Direction = "expense"
	DirectionTransfer Direction = "transfer"
)

// RawMessage is a single SMS as delivered by the device message store.
// It is never mutated by the pipeline.
type RawMessage struct {
	Sender          string `json:"sender"`
	Body            string `json:"body"`
	TimestampMillis int64  `json:"timestamp_millis"`
}

// Timestamp converts the epoch-millisecond field to a time.Time.
func (m RawMessage) Timestamp() time.Time {
	return time.UnixMilli(m.TimestampMillis)
}

// ParsedTransaction is the structured record extracted from one message or
// one manual entry. Amount is always strictly positive and Category is never
// empty; a message that yields neither produces no record at all.
// Optional scalars use pointers (BalanceAfter) or empty strings.
type ParsedTransaction struct {
	ID              uuid.UUID        `json:"id"`
	Direction       Direction        `json:"direction"`
	Amount          decimal.Decimal  `json:"amount"`
	Category        string           `json:"category"`
	SubCategory     string           `json:"sub_category,omitempty"`
	Description     string           `json:"description"`
	Timestamp       time.Time        `json:"timestamp"`
	Counterparty    string           `json:"counterparty,omitempty"`
	AccountFragment string           `json:"account_fragment,omitempty"`
	BalanceAfter    *decimal.Decimal `json:"balance_after,omitempty"`
	ReferenceID     string           `json:"reference_id,omitempty"`
	Confidence      int              `json:"confidence"`
}

// CategorizationResult is the per-call output of the category classifier.
// Confidence is two-tier: 85 for a rule match, 30 for the fallback.
type CategorizationResult struct {
	Direction           Direction `json:"direction"`
	Category            string    `json:"category"`
	SubCategory         string    `json:"sub_category,omitempty"`
	Confidence          int       `json:"confidence"`
	SuggestedCategories []string  `json:"suggested_categories,omitempty"`
}

// Frequency is the cadence of a detected recurring series.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringSeries is a detected subscription or periodic transfer. It is
// recomputed on demand from a transaction window and never persisted here.
type RecurringSeries struct {
	Signature        string          `json:"signature"`
	Amount           decimal.Decimal `json:"amount"`
	Frequency        Frequency       `json:"frequency"`
	NextExpectedDate time.Time       `json:"next_expected_date"`
	Confidence       int             `json:"confidence"`
	Occurrences      int             `json:"occurrences"`
}

// HistoryEntry is the minimal slice of a persisted transaction the recurring
// detector needs. The persistence collaborator supplies these.
type HistoryEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}
