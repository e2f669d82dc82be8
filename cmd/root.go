package cmd

import (
	"fmt"
	"os"
	"time"

	"crypto-buddy/advisor"
	"crypto-buddy/catalog"
	"crypto-buddy/config"
	"crypto-buddy/intent"
	"crypto-buddy/search"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "v1.0.0"

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath      string
	catalogPath     string
	matchStrategy   string
	tieBreak        string
	logLevel        string
	disclaimerEvery int
}

// app is the wired set of components a command works with.
type app struct {
	cfg        config.Config
	catalog    *catalog.Catalog
	advisor    *advisor.Advisor
	classifier *intent.Classifier
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCMD := &cobra.Command{
		Use:     "crypto-buddy",
		Short:   "Rule-based cryptocurrency advisor",
		Version: version,
		Long: `crypto-buddy answers questions about a small catalog of cryptocurrencies:
which is most sustainable, which are rising, the best long-term pick, which
use little energy, and how two coins compare.

Run without a subcommand to start an interactive chat.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts)
		},
	}

	flags := rootCMD.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.catalogPath, "catalog", "", "Catalog file (.yaml, .json or .csv); built-in table if empty")
	flags.StringVar(&opts.matchStrategy, "match", "", "Keyword matching (substring|token)")
	flags.StringVar(&opts.tieBreak, "tie-break", "", "Winner among equal scores (catalog|alphabetical)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	flags.IntVar(&opts.disclaimerEvery, "disclaimer-every", 0, "Show the risk reminder every N answers (0 disables)")

	rootCMD.AddCommand(
		newChatCmd(opts),
		newAskCmd(opts),
		newListCmd(opts),
		newScoreCmd(opts),
		newSearchCmd(opts),
	)

	return rootCMD
}

func Execute() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges the config file, if any, with flags the user set.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = opts.catalogPath
	}
	if flags.Changed("match") {
		cfg.MatchStrategy = opts.matchStrategy
	}
	if flags.Changed("tie-break") {
		cfg.TieBreak = opts.tieBreak
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("disclaimer-every") {
		cfg.DisclaimerEvery = opts.disclaimerEvery
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadApp resolves configuration and builds the catalog, matcher, advisor
// and classifier. A catalog that fails validation aborts the command.
func loadApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	matcher, err := search.NewMatcher(cfg.MatchStrategy)
	if err != nil {
		return nil, err
	}
	tieBreak, err := advisor.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("assets", cat.Len()).
		Str("catalog", cfg.CatalogPath).
		Str("match", cfg.MatchStrategy).
		Str("tie_break", string(tieBreak)).
		Msg("catalog loaded")

	return &app{
		cfg:        cfg,
		catalog:    cat,
		advisor:    advisor.New(cat, advisor.WithMatcher(matcher), advisor.WithTieBreak(tieBreak)),
		classifier: intent.NewClassifier(matcher),
	}, nil
}
