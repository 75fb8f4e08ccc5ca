package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sms-ingest/internal/domain/rules"
)

func newCategoriesCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog, optionally filtered by search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if search == "" {
				for _, c := range rules.Catalog() {
					fmt.Fprintf(out, "%-20s %-22s %-18s %s\n", c.ID, c.Name, c.Icon, c.Direction)
				}
				return nil
			}

			cs, err := rules.NewCatalogSearch(rules.DefaultRuleset())
			if err != nil {
				return err
			}
			defer cs.Close()

			results, err := cs.Search(search, 10)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(out, "%-20s %-22s %-18s score %.2f\n", r.Category.ID, r.Category.Name, r.Category.Icon, r.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "search the catalog instead of listing it")

	return cmd
}
