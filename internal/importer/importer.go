// Package importer reads exported SMS backups and transaction history from
// CSV and XLSX files, feeding the parsing pipeline and the recurring
// detector. It is plumbing around the core, not part of the classification
// contract.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

// MessageRow is one raw SMS row. Timestamp accepts epoch milliseconds or a
// handful of common date layouts.
type MessageRow struct {
	Sender    string `csv:"sender"`
	Body      string `csv:"body"`
	Timestamp string `csv:"timestamp"`
}

// HistoryRow is one persisted-transaction row for recurring detection.
type HistoryRow struct {
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
	Timestamp   string `csv:"timestamp"`
}

// ReadMessagesCSV parses a CSV export of raw messages.
func ReadMessagesCSV(r io.Reader) ([]transaction.RawMessage, error) {
	var rows []MessageRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse messages csv: %w", err)
	}
	return messagesFromRows(rows)
}

// ReadMessagesXLSX parses an XLSX export of raw messages. The first sheet is
// used; the first row must be a header with sender/body/timestamp columns.
func ReadMessagesXLSX(r io.Reader) ([]transaction.RawMessage, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	col := mapColumns(cells[0])
	rows := make([]MessageRow, 0, len(cells)-1)
	for _, row := range cells[1:] {
		rows = append(rows, MessageRow{
			Sender:    cellAt(row, colIndex(col, "sender")),
			Body:      cellAt(row, colIndex(col, "body")),
			Timestamp: cellAt(row, colIndex(col, "timestamp")),
		})
	}
	return messagesFromRows(rows)
}

// ReadHistoryCSV parses a CSV of persisted transactions for the recurring
// detector.
func ReadHistoryCSV(r io.Reader) ([]transaction.HistoryEntry, error) {
	var rows []HistoryRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse history csv: %w", err)
	}

	entries := make([]transaction.HistoryEntry, 0, len(rows))
	for i, row := range rows {
		amount, err := decimal.NewFromString(strings.ReplaceAll(row.Amount, ",", ""))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount %q: %w", i+2, row.Amount, err)
		}
		ts, err := parseTimestamp(row.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, transaction.HistoryEntry{
			Amount:      amount,
			Description: row.Description,
			Timestamp:   ts,
		})
	}
	return entries, nil
}

func messagesFromRows(rows []MessageRow) ([]transaction.RawMessage, error) {
	msgs := make([]transaction.RawMessage, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row.Body) == "" {
			continue
		}
		ts, err := parseTimestamp(row.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		msgs = append(msgs, transaction.RawMessage{
			Sender:          row.Sender,
			Body:            row.Body,
			TimestampMillis: ts.UnixMilli(),
		})
	}
	return msgs, nil
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(millis), nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func mapColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

func colIndex(col map[string]int, name string) int {
	if i, ok := col[name]; ok {
		return i
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
