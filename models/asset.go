package models

import (
	"fmt"
	"strings"
	"unicode"
)

// Trend is the direction an asset's price is moving in.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// Level is a coarse low/medium/high rating used for market cap and energy use.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Risk is the investment risk rating of an asset.
type Risk string

const (
	RiskLow        Risk = "low"
	RiskMedium     Risk = "medium"
	RiskMediumHigh Risk = "medium-high"
	RiskHigh       Risk = "high"
)

const MaxSustainabilityScore = 10

type Asset struct {
	Name                string `json:"name" yaml:"name"`
	Symbol              string `json:"symbol" yaml:"symbol"`
	PriceTrend          Trend  `json:"price_trend" yaml:"price_trend"`
	MarketCap           Level  `json:"market_cap" yaml:"market_cap"`
	EnergyUse           Level  `json:"energy_use" yaml:"energy_use"`
	SustainabilityScore int    `json:"sustainability_score" yaml:"sustainability_score"` // 0 to 10
	RiskLevel           Risk   `json:"risk_level" yaml:"risk_level"`
	Description         string `json:"description" yaml:"description"`
}

func (t Trend) Valid() bool {
	switch t {
	case TrendRising, TrendStable, TrendFalling:
		return true
	}
	return false
}

func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

func (r Risk) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskMediumHigh, RiskHigh:
		return true
	}
	return false
}

// Validate checks that every field is populated and within range, and that
// the name is already in TitleName form so lookups by name round-trip. The
// returned error wraps ErrInvalidAsset.
func (a Asset) Validate() error {
	var problems []string
	if strings.TrimSpace(a.Name) == "" {
		problems = append(problems, "name is empty")
	} else if a.Name != TitleName(a.Name) {
		problems = append(problems, fmt.Sprintf("name %q is not title-cased (want %q)", a.Name, TitleName(a.Name)))
	}
	if strings.TrimSpace(a.Symbol) == "" {
		problems = append(problems, "symbol is empty")
	}
	if !a.PriceTrend.Valid() {
		problems = append(problems, fmt.Sprintf("unknown price_trend %q", a.PriceTrend))
	}
	if !a.MarketCap.Valid() {
		problems = append(problems, fmt.Sprintf("unknown market_cap %q", a.MarketCap))
	}
	if !a.EnergyUse.Valid() {
		problems = append(problems, fmt.Sprintf("unknown energy_use %q", a.EnergyUse))
	}
	if a.SustainabilityScore < 0 || a.SustainabilityScore > MaxSustainabilityScore {
		problems = append(problems, fmt.Sprintf("sustainability_score %d out of range [0,%d]", a.SustainabilityScore, MaxSustainabilityScore))
	}
	if !a.RiskLevel.Valid() {
		problems = append(problems, fmt.Sprintf("unknown risk_level %q", a.RiskLevel))
	}
	if strings.TrimSpace(a.Description) == "" {
		problems = append(problems, "description is empty")
	}
	if len(problems) > 0 {
		label := a.Name
		if label == "" {
			label = "<unnamed>"
		}
		return fmt.Errorf("%w: %s: %s", ErrInvalidAsset, label, strings.Join(problems, "; "))
	}
	return nil
}

// TitleName normalizes a user supplied name the way catalog names are
// written: each word capitalised, the rest lower case.
func TitleName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
