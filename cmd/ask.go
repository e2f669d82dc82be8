package cmd

import (
	"fmt"
	"strings"

	"crypto-buddy/chat"
	"crypto-buddy/format"

	"github.com/spf13/cobra"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question and exit",
		Long:  `Answer one question without starting a chat, for scripts and automation.`,
		Example: `  crypto-buddy ask "Which crypto is most sustainable?"
  crypto-buddy ask compare bitcoin and cardano`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			session := chat.New(a.advisor, a.classifier, format.New(out), chat.WithDisclaimerEvery(a.cfg.DisclaimerEvery))

			reply, _, err := session.Ask(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to answer: %w", err)
			}
			fmt.Fprint(out, reply)
			return nil
		},
	}
}
