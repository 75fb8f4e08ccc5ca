package extract

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"currency before number", "Rs.2,500.00 debited from your account", "2500", true},
		{"rupee symbol", "₹150 spent at cafe", "150", true},
		{"inr marker", "INR 99.50 paid via UPI", "99.5", true},
		{"amount label", "Amount: 1,200 debited", "1200", true},
		{"currency after number", "500 Rs withdrawn from ATM", "500", true},
		{"no amount", "your otp is 482910", "", false},
		{"marker without digits", "pay in Rs today", "", false},
		{"zero is not positive", "Rs.0 debited", "", false},
		{"rs inside a word is not a marker", "offers 50% off this week", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Amount(tt.text)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"got %s want %s", got, tt.want)
			}
		})
	}
}

func TestAmount_PatternPriority(t *testing.T) {
	// Currency-before-number outranks the amount label: the first pattern in
	// the list that matches wins, not the first occurrence in the text.
	got, ok := Amount("amount: 999 total Rs.100 charged")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"available balance label", "Available balance: Rs.45,000.50", "45000.5", true},
		{"avl bal", "Avl Bal Rs 1,200", "1200", true},
		{"bare bal", "bal: 999.99", "999.99", true},
		{"bare available label", "Available: Rs.500", "500", true},
		{"avl without bal", "Avl. Rs 2,000.00 after txn", "2000", true},
		{"currency then label", "Rs.500.00 is your available balance", "500", true},
		{"no balance", "Rs.100 debited for groceries", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Balance(tt.text)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"got %s want %s", got, tt.want)
			}
		})
	}
}

func TestAccountFragment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"a/c with mask", "debited from A/c XX1234 on 28-11-24", "XX1234", true},
		{"account no", "account no. 556677 credited", "556677", true},
		{"acct star mask", "acct *9876 debited", "*9876", true},
		{"bare masked run", "card ending **4321 used", "**4321", true},
		{"bare digits without mask", "call 1800 4321 for help", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AccountFragment(tt.text)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReferenceID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"upi ref", "UPI Ref: 433445566778 processed", "433445566778", true},
		{"txn id", "Txn ID AX99213 completed", "AX99213", true},
		{"utr", "UTR 123456789012", "123456789012", true},
		{"rail followed by token", "IMPS 987654321098 credited", "987654321098", true},
		{"label word is not a reference", "transaction successful, thank you", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReferenceID(tt.text)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounterparty(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"verb phrase", "Rs.100 paid to Swiggy on 28-11-24", "Swiggy", true},
		{"received from", "Rs.5000 received from Rahul Kumar via IMPS", "Rahul Kumar", true},
		{"trailing preposition", "Rs.2,500.00 debited. To Swiggy.", "Swiggy", true},
		{"stop at ref", "sent to Big Bazaar ref 99887", "Big Bazaar", true},
		{"vpa token", "paid via vpa: merchant@okicici today", "merchant@okicici", true},
		{"no counterparty", "Rs.100 debited", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Counterparty(tt.text)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounterparty_Truncation(t *testing.T) {
	name := strings.Repeat("Very Long Merchant ", 10)
	got, ok := Counterparty("paid to " + name)
	require.True(t, ok)
	assert.LessOrEqual(t, len(got), MaxCounterpartyLen)
	assert.True(t, strings.HasPrefix(name, got))
}
