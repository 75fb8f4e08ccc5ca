package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sms-ingest/internal/domain/rules"
	"github.com/FACorreiaa/sms-ingest/internal/domain/sms"
	"github.com/FACorreiaa/sms-ingest/internal/domain/transaction"
)

func newCategorizeCommand() *cobra.Command {
	var (
		direction    string
		counterparty string
	)

	cmd := &cobra.Command{
		Use:   "categorize <description>",
		Short: "Categorize a free-form transaction description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadEnv()
			if err != nil {
				return err
			}

			var hint transaction.Direction
			switch direction {
			case "":
			case "income", "expense", "transfer":
				hint = transaction.Direction(direction)
			default:
				return fmt.Errorf("unknown direction %q", direction)
			}

			parser := sms.NewParser(rules.DefaultRuleset(), logger)
			result := parser.Categorize(args[0], counterparty, hint)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "", "direction hint: income, expense or transfer")
	cmd.Flags().StringVarP(&counterparty, "counterparty", "c", "", "optional counterparty name")

	return cmd
}
