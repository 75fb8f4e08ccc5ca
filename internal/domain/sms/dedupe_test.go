package sms

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

func tx(amount string, dir transaction.Direction, at time.Time) transaction.ParsedTransaction {
	return transaction.ParsedTransaction{
		Direction: dir,
		Amount:    decimal.RequireFromString(amount),
		Timestamp: at,
	}
}

func TestDedupeWithin(t *testing.T) {
	base := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)

	t.Run("collapses same amount and direction inside the window", func(t *testing.T) {
		out := DedupeWithin([]transaction.ParsedTransaction{
			tx("2500.00", transaction.DirectionExpense, base),
			tx("2500.00", transaction.DirectionExpense, base.Add(5*time.Second)),
		}, DefaultDedupWindow)
		assert.Len(t, out, 1)
	})

	t.Run("first seen wins and order is preserved", func(t *testing.T) {
		first := tx("100", transaction.DirectionExpense, base)
		first.Description = "bank alert"
		second := tx("100", transaction.DirectionExpense, base.Add(3*time.Second))
		second.Description = "wallet alert"
		third := tx("999", transaction.DirectionExpense, base.Add(10*time.Second))

		out := DedupeWithin([]transaction.ParsedTransaction{first, second, third}, DefaultDedupWindow)
		require.Len(t, out, 2)
		assert.Equal(t, "bank alert", out[0].Description)
		assert.Equal(t, "999", out[1].Amount.String())
	})

	t.Run("window boundary is inclusive", func(t *testing.T) {
		out := DedupeWithin([]transaction.ParsedTransaction{
			tx("100", transaction.DirectionExpense, base),
			tx("100", transaction.DirectionExpense, base.Add(60*time.Second)),
		}, DefaultDedupWindow)
		assert.Len(t, out, 1)

		out = DedupeWithin([]transaction.ParsedTransaction{
			tx("100", transaction.DirectionExpense, base),
			tx("100", transaction.DirectionExpense, base.Add(61*time.Second)),
		}, DefaultDedupWindow)
		assert.Len(t, out, 2)
	})

	t.Run("different direction is never a duplicate", func(t *testing.T) {
		out := DedupeWithin([]transaction.ParsedTransaction{
			tx("100", transaction.DirectionExpense, base),
			tx("100", transaction.DirectionIncome, base.Add(time.Second)),
		}, DefaultDedupWindow)
		assert.Len(t, out, 2)
	})

	t.Run("different amount is never a duplicate", func(t *testing.T) {
		out := DedupeWithin([]transaction.ParsedTransaction{
			tx("100", transaction.DirectionExpense, base),
			tx("100.01", transaction.DirectionExpense, base.Add(time.Second)),
		}, DefaultDedupWindow)
		assert.Len(t, out, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, DedupeWithin(nil, DefaultDedupWindow))
	})
}

func TestDedupe_Idempotent(t *testing.T) {
	faker := gofakeit.New(42)
	base := time.Date(2024, 11, 28, 9, 0, 0, 0, time.UTC)

	batch := make([]transaction.ParsedTransaction, 0, 200)
	for i := 0; i < 200; i++ {
		dir := transaction.DirectionExpense
		if faker.Bool() {
			dir = transaction.DirectionIncome
		}
		// Small amount range and dense timestamps on purpose, to force plenty
		// of collisions.
		amount := decimal.NewFromInt(int64(faker.Number(1, 20)) * 50)
		at := base.Add(time.Duration(faker.Number(0, 600)) * time.Second)
		batch = append(batch, transaction.ParsedTransaction{Direction: dir, Amount: amount, Timestamp: at})
	}

	once := Dedupe(batch)
	twice := Dedupe(once)

	assert.LessOrEqual(t, len(once), len(batch))
	assert.Equal(t, once, twice)
}
