package cmd

import (
	"fmt"

	"crypto-buddy/format"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every cryptocurrency in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, format.New(out).List(a.catalog.Assets()))
			return nil
		},
	}
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the long-term score breakdown of every cryptocurrency",
		Long: `Score each asset for long-term holding: +3 for a rising price trend,
+2 for a high market cap, plus its sustainability score (0-10).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, format.New(out).Scores(a.advisor.Ranked()))
			return nil
		},
	}
}
