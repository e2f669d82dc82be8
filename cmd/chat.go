package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"crypto-buddy/chat"
	"crypto-buddy/format"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat (default)",
		Long:  `Read one question per line and answer it until 'quit', 'exit', 'bye', Ctrl-C or end of input.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts)
		},
	}
}

func runChat(cmd *cobra.Command, opts *rootOptions) error {
	a, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	sessionOpts := []chat.Option{chat.WithDisclaimerEvery(a.cfg.DisclaimerEvery)}
	if isTerminal(in) {
		sessionOpts = append(sessionOpts, chat.WithPrompt("You: "))
	}

	session := chat.New(a.advisor, a.classifier, format.New(out), sessionOpts...)
	return session.Run(ctx, in, out)
}

// isTerminal reports whether r is an interactive terminal. The prompt is
// only printed for terminals so piped transcripts stay clean.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
