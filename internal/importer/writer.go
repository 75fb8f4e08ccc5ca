package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

// TransactionRow is the flat CSV projection of a parsed transaction.
type TransactionRow struct {
	ID              string `csv:"id"`
	Direction       string `csv:"direction"`
	Amount          string `csv:"amount"`
	Category        string `csv:"category"`
	SubCategory     string `csv:"sub_category"`
	Counterparty    string `csv:"counterparty"`
	AccountFragment string `csv:"account_fragment"`
	BalanceAfter    string `csv:"balance_after"`
	ReferenceID     string `csv:"reference_id"`
	Confidence      int    `csv:"confidence"`
	Timestamp       string `csv:"timestamp"`
	Description     string `csv:"description"`
}

// WriteTransactionsCSV renders parsed transactions as CSV.
func WriteTransactionsCSV(w io.Writer, txs []transaction.ParsedTransaction) error {
	rows := make([]TransactionRow, 0, len(txs))
	for _, tx := range txs {
		row := TransactionRow{
			ID:              tx.ID.String(),
			Direction:       string(tx.Direction),
			Amount:          tx.Amount.StringFixed(2),
			Category:        tx.Category,
			SubCategory:     tx.SubCategory,
			Counterparty:    tx.Counterparty,
			AccountFragment: tx.AccountFragment,
			ReferenceID:     tx.ReferenceID,
			Confidence:      tx.Confidence,
			Timestamp:       tx.Timestamp.Format(time.RFC3339),
			Description:     tx.Description,
		}
		if tx.BalanceAfter != nil {
			row.BalanceAfter = tx.BalanceAfter.StringFixed(2)
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write transactions csv: %w", err)
	}
	return nil
}
