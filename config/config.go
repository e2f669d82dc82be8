package config

import (
	"fmt"
	"os"
	"path/filepath"

	"crypto-buddy/advisor"
	"crypto-buddy/chat"
	"crypto-buddy/search"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings. Every field has a usable default, so
// the config file is optional.
type Config struct {
	CatalogPath     string `yaml:"catalog_path"`     // empty selects the built-in table
	MatchStrategy   string `yaml:"match_strategy"`   // substring | token
	TieBreak        string `yaml:"tie_break"`        // catalog | alphabetical
	DisclaimerEvery int    `yaml:"disclaimer_every"` // 0 disables the reminder
	LogLevel        string `yaml:"log_level"`        // zerolog level name
}

func Default() Config {
	return Config{
		MatchStrategy:   search.StrategySubstring,
		TieBreak:        string(advisor.TieBreakCatalog),
		DisclaimerEvery: chat.DefaultDisclaimerEvery,
		LogLevel:        zerolog.WarnLevel.String(),
	}
}

// Load reads a YAML config file over the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := search.NewMatcher(c.MatchStrategy); err != nil {
		return err
	}
	if _, err := advisor.ParseTieBreak(c.TieBreak); err != nil {
		return err
	}
	if c.DisclaimerEvery < 0 {
		return fmt.Errorf("disclaimer_every must not be negative, got %d", c.DisclaimerEvery)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}
