package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sms-ingest/internal/domain/recurring"
	"github.com/FACorreiaa/sms-ingest/internal/importer"
	"github.com/FACorreiaa/sms-ingest/pkg/money"
)

func newRecurringCommand() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Detect subscriptions and periodic transfers in a transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadEnv()
			if err != nil {
				return err
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", inputPath, err)
			}
			defer f.Close()

			history, err := importer.ReadHistoryCSV(f)
			if err != nil {
				return err
			}

			series := recurring.Detect(history)
			logger.Info("recurring detection finished", "history", len(history), "series", len(series))

			out := cmd.OutOrStdout()
			for _, s := range series {
				fmt.Fprintf(out, "%-30s %10s  %-8s next %s  confidence %d%%\n",
					s.Signature,
					money.FormatINR(s.Amount),
					s.Frequency,
					s.NextExpectedDate.Format("2006-01-02"),
					s.Confidence,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "history file (.csv with amount,description,timestamp)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
