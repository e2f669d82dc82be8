package cmd

import (
	"fmt"
	"strings"

	"crypto-buddy/format"
	"crypto-buddy/search"

	"github.com/spf13/cobra"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <terms>",
		Short: "Full-text search over names, symbols and descriptions",
		Example: `  crypto-buddy search ADA
  crypto-buddy search smart contract`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			index, err := search.NewIndex(a.catalog.Assets())
			if err != nil {
				return err
			}
			defer index.Close()

			query := strings.Join(args, " ")
			results, err := index.Search(query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, format.New(out).SearchResults(query, results))
			return nil
		},
	}
}
