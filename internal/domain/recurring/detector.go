// Package recurring detects subscriptions and periodic transfers from a
// window of transaction history. The detection is a pure pass over the
// supplied records; persistence of detected series belongs to the caller.
package recurring

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

const (
	// minOccurrences is the smallest group that can form a series.
	minOccurrences = 2
	// maxGapVariance is the regularity cutoff: a group qualifies when the
	// population stddev of its inter-arrival gaps stays below this fraction
	// of the mean gap. Irregular repeated purchases are not "recurring".
	maxGapVariance = 0.3
	// signatureDescLen caps the description prefix used for grouping.
	signatureDescLen = 20
)

// Detect groups history by a (description prefix, rounded amount) signature
// and emits a series for every group with a statistically regular cadence.
// Output is sorted by signature so identical input always yields identical
// output.
func Detect(history []transaction.HistoryEntry) []transaction.RecurringSeries {
	groups := make(map[string][]transaction.HistoryEntry)
	for _, entry := range history {
		sig := Signature(entry.Description, entry.Amount)
		groups[sig] = append(groups[sig], entry)
	}

	series := make([]transaction.RecurringSeries, 0, len(groups))
	for sig, members := range groups {
		if s, ok := analyzeGroup(sig, members); ok {
			series = append(series, s)
		}
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Signature < series[j].Signature
	})
	return series
}

// Signature builds the grouping key: the lower-cased description truncated
// to 20 characters plus the amount rounded to the nearest integer.
func Signature(description string, amount decimal.Decimal) string {
	desc := strings.ToLower(strings.TrimSpace(description))
	if len(desc) > signatureDescLen {
		desc = desc[:signatureDescLen]
	}
	return desc + "|" + amount.Round(0).String()
}

func analyzeGroup(sig string, members []transaction.HistoryEntry) (transaction.RecurringSeries, bool) {
	if len(members) < minOccurrences {
		return transaction.RecurringSeries{}, false
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].Timestamp.Before(members[j].Timestamp)
	})

	gaps := make([]float64, 0, len(members)-1)
	for i := 1; i < len(members); i++ {
		days := members[i].Timestamp.Sub(members[i-1].Timestamp).Hours() / 24
		gaps = append(gaps, days)
	}

	mean, stddev := meanStddev(gaps)
	if mean <= 0 || stddev >= maxGapVariance*mean {
		return transaction.RecurringSeries{}, false
	}

	last := members[len(members)-1]
	confidence := 100 - int(stddev*5)
	if confidence < 50 {
		confidence = 50
	}

	return transaction.RecurringSeries{
		Signature:        sig,
		Amount:           last.Amount,
		Frequency:        classifyFrequency(mean),
		NextExpectedDate: last.Timestamp.AddDate(0, 0, int(math.Round(mean))),
		Confidence:       confidence,
		Occurrences:      len(members),
	}, true
}

// meanStddev returns the mean and the population standard deviation.
func meanStddev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

func classifyFrequency(meanGapDays float64) transaction.Frequency {
	switch {
	case meanGapDays <= 2:
		return transaction.FrequencyDaily
	case meanGapDays <= 10:
		return transaction.FrequencyWeekly
	case meanGapDays <= 35:
		return transaction.FrequencyMonthly
	default:
		return transaction.FrequencyYearly
	}
}
