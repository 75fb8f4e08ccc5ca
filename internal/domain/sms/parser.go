package sms

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/sms-ingest/internal/domain/categorize"
	"github.com/FACorreiaa/sms-ingest/internal/domain/extract"
	"github.com/FACorreiaa/sms-ingest/internal/domain/rules"
	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

// Parser composes the relevance classifier, the field extractors and the
// category classifier into the message-to-record pipeline. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	classifier  *categorize.Classifier
	dedupWindow time.Duration
	logger      *slog.Logger
}

// ParserOption customizes a Parser.
type ParserOption func(*Parser)

// WithDedupWindow overrides the duplicate-detection tolerance.
func WithDedupWindow(window time.Duration) ParserOption {
	return func(p *Parser) {
		if window > 0 {
			p.dedupWindow = window
		}
	}
}

// NewParser creates the parsing pipeline over the given ruleset.
func NewParser(rs *rules.Ruleset, logger *slog.Logger, opts ...ParserOption) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Parser{
		classifier:  categorize.NewClassifier(rs),
		dedupWindow: DefaultDedupWindow,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseMessage runs one message through the full pipeline. The second return
// is false when the message is not transactional or yields no positive
// amount; both cases drop the message silently rather than erroring, since
// non-matches are the common case over a device inbox.
func (p *Parser) ParseMessage(msg transaction.RawMessage) (*transaction.ParsedTransaction, bool) {
	if !IsTransactionMessage(msg) {
		return nil, false
	}

	amount, ok := extract.Amount(msg.Body)
	if !ok {
		return nil, false
	}

	result := p.classifier.Classify(msg.Body, "")

	tx := &transaction.ParsedTransaction{
		ID:          uuid.New(),
		Direction:   result.Direction,
		Amount:      amount,
		Category:    result.Category,
		SubCategory: result.SubCategory,
		Description: collapseWhitespace(msg.Body),
		Timestamp:   msg.Timestamp(),
		Confidence:  result.Confidence,
	}

	if counterparty, ok := extract.Counterparty(msg.Body); ok {
		tx.Counterparty = counterparty
	}
	if fragment, ok := extract.AccountFragment(msg.Body); ok {
		tx.AccountFragment = fragment
	}
	if balance, ok := extract.Balance(msg.Body); ok {
		tx.BalanceAfter = &balance
	}
	if ref, ok := extract.ReferenceID(msg.Body); ok {
		tx.ReferenceID = ref
	}

	return tx, true
}

// ParseBatch processes each message independently and then runs a single
// dedupe pass over the results. Callers persisting the output must still
// perform their own storage-side existence check on (amount, description,
// timestamp within the dedup window) before inserting: this pass only sees
// the batch in hand, not rows already written.
func (p *Parser) ParseBatch(msgs []transaction.RawMessage) []transaction.ParsedTransaction {
	parsed := make([]transaction.ParsedTransaction, 0, len(msgs))
	rejected := 0

	for _, msg := range msgs {
		tx, ok := p.ParseMessage(msg)
		if !ok {
			rejected++
			continue
		}
		parsed = append(parsed, *tx)
	}

	deduped := DedupeWithin(parsed, p.dedupWindow)

	p.logger.Info("parsed sms batch",
		"total", len(msgs),
		"rejected", rejected,
		"parsed", len(parsed),
		"duplicates", len(parsed)-len(deduped),
	)

	return deduped
}

// Categorize exposes the manual-entry path: a free-form description, an
// optional counterparty and a direction hint, with none of the SMS-specific
// steps.
func (p *Parser) Categorize(description, counterparty string, hint transaction.Direction) transaction.CategorizationResult {
	text := description
	if counterparty != "" {
		text = description + " " + counterparty
	}
	return p.classifier.Classify(text, hint)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
