package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sms-ingest/internal/domain/rules"
	"github.com/FACorreiaa/sms-ingest/internal/domain/sms"
	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
	"github.com/FACorreiaa/sms-ingest/internal/importer"
)

func newParseCommand() *cobra.Command {
	var (
		inputPath string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a CSV or XLSX export of raw messages into transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadEnv()
			if err != nil {
				return err
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", inputPath, err)
			}
			defer f.Close()

			var msgs []transaction.RawMessage
			if strings.HasSuffix(strings.ToLower(inputPath), ".xlsx") {
				msgs, err = importer.ReadMessagesXLSX(f)
			} else {
				msgs, err = importer.ReadMessagesCSV(f)
			}
			if err != nil {
				return err
			}

			parser := sms.NewParser(rules.DefaultRuleset(), logger,
				sms.WithDedupWindow(cfg.Parser.DedupWindow))
			txs := parser.ParseBatch(msgs)

			switch output {
			case "csv":
				return importer.WriteTransactionsCSV(cmd.OutOrStdout(), txs)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(txs)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "messages file (.csv or .xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or csv")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
