package sms

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/sms-ingest/internal/domain/rules"
	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

func newTestParser(t *testing.T, opts ...ParserOption) *Parser {
	t.Helper()
	return NewParser(rules.DefaultRuleset(), slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
}

func TestParser_ParseMessage(t *testing.T) {
	p := newTestParser(t)

	t.Run("full bank debit alert", func(t *testing.T) {
		msg := transaction.RawMessage{
			Sender:          "VM-HDFCBK",
			Body:            "Rs.2,500.00 debited from A/c XX1234 on 28-11-24. UPI Ref: 433445566778. Available balance: Rs.45,000.50. To Swiggy.",
			TimestampMillis: time.Date(2024, 11, 28, 12, 30, 0, 0, time.UTC).UnixMilli(),
		}

		tx, ok := p.ParseMessage(msg)
		require.True(t, ok)

		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("2500.00")), "amount %s", tx.Amount)
		assert.Equal(t, transaction.DirectionExpense, tx.Direction)
		assert.Equal(t, "food", tx.Category)
		assert.Contains(t, tx.AccountFragment, "1234")
		assert.Equal(t, "433445566778", tx.ReferenceID)
		require.NotNil(t, tx.BalanceAfter)
		assert.True(t, tx.BalanceAfter.Equal(decimal.RequireFromString("45000.50")), "balance %s", tx.BalanceAfter)
		assert.Contains(t, tx.Counterparty, "Swiggy")
		assert.Equal(t, 85, tx.Confidence)
		assert.NotEqual(t, "", tx.ID.String())
		assert.Equal(t, msg.Timestamp(), tx.Timestamp)
	})

	t.Run("non transactional message is dropped", func(t *testing.T) {
		_, ok := p.ParseMessage(transaction.RawMessage{
			Sender: "BX-PROMOZ",
			Body:   "your payment was successful",
		})
		assert.False(t, ok)
	})

	t.Run("transactional message without extractable amount is dropped", func(t *testing.T) {
		// The bare currency marker satisfies the relevance check, but no
		// number follows it, so the amount extractor comes up empty.
		_, ok := p.ParseMessage(transaction.RawMessage{
			Sender: "VM-HDFCBK",
			Body:   "Rs. debited from your account, details to follow",
		})
		assert.False(t, ok)
	})

	t.Run("multiline body is collapsed in the description", func(t *testing.T) {
		tx, ok := p.ParseMessage(transaction.RawMessage{
			Sender: "VM-HDFCBK",
			Body:   "Rs.100 debited\n  from A/c XX9921\tvia UPI",
		})
		require.True(t, ok)
		assert.Equal(t, "Rs.100 debited from A/c XX9921 via UPI", tx.Description)
	})
}

func TestParser_ParseBatch(t *testing.T) {
	p := newTestParser(t)
	base := time.Date(2024, 11, 28, 12, 30, 0, 0, time.UTC)

	msgs := []transaction.RawMessage{
		{
			Sender:          "VM-HDFCBK",
			Body:            "Rs.500.00 debited from A/c XX1234 via UPI to merchant",
			TimestampMillis: base.UnixMilli(),
		},
		{
			// Wallet echo of the same payment, four seconds later.
			Sender:          "VK-PAYTM",
			Body:            "Rs.500.00 paid successfully from Paytm wallet",
			TimestampMillis: base.Add(4 * time.Second).UnixMilli(),
		},
		{
			Sender:          "BX-PROMOZ",
			Body:            "Flat 70% off on fashion this week!",
			TimestampMillis: base.UnixMilli(),
		},
		{
			Sender:          "VM-HDFCBK",
			Body:            "Rs.12,000.00 credited to your A/c XX1234 - salary for Nov",
			TimestampMillis: base.Add(time.Hour).UnixMilli(),
		},
	}

	out := p.ParseBatch(msgs)
	require.Len(t, out, 2)

	assert.Equal(t, transaction.DirectionExpense, out[0].Direction)
	assert.True(t, out[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.Contains(t, out[0].Description, "XX1234")

	assert.Equal(t, transaction.DirectionIncome, out[1].Direction)
	assert.Equal(t, "salary", out[1].Category)
}

func TestParser_DedupWindowOption(t *testing.T) {
	p := newTestParser(t, WithDedupWindow(2*time.Second))
	base := time.Date(2024, 11, 28, 12, 30, 0, 0, time.UTC)

	msgs := []transaction.RawMessage{
		{Sender: "VM-HDFCBK", Body: "Rs.500 debited via UPI", TimestampMillis: base.UnixMilli()},
		{Sender: "VK-PAYTM", Body: "Rs.500 paid from wallet", TimestampMillis: base.Add(10 * time.Second).UnixMilli()},
	}

	// Ten seconds apart: duplicates under the default window, distinct under
	// the narrowed one.
	assert.Len(t, p.ParseBatch(msgs), 2)
	assert.Len(t, newTestParser(t).ParseBatch(msgs), 1)
}

func TestParser_Categorize(t *testing.T) {
	p := newTestParser(t)

	t.Run("counterparty participates in matching", func(t *testing.T) {
		result := p.Categorize("monthly order", "Swiggy", transaction.DirectionExpense)
		assert.Equal(t, "food", result.Category)
	})

	t.Run("hint is respected", func(t *testing.T) {
		result := p.Categorize("salary", "", transaction.DirectionIncome)
		assert.Equal(t, transaction.DirectionIncome, result.Direction)
		assert.Equal(t, "salary", result.Category)
	})
}
