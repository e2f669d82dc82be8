package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAsset() Asset {
	return Asset{
		Name:                "Cardano",
		Symbol:              "ADA",
		PriceTrend:          TrendRising,
		MarketCap:           LevelMedium,
		EnergyUse:           LevelLow,
		SustainabilityScore: 8,
		RiskLevel:           RiskMediumHigh,
		Description:         "Eco-friendly blockchain with research-driven approach",
	}
}

func TestAssetValidate(t *testing.T) {
	require.NoError(t, validAsset().Validate())

	tests := []struct {
		name   string
		mutate func(*Asset)
		want   string
	}{
		{"empty name", func(a *Asset) { a.Name = "  " }, "name is empty"},
		{"upper case name", func(a *Asset) { a.Name = "XRP" }, `name "XRP" is not title-cased (want "Xrp")`},
		{"lower case name", func(a *Asset) { a.Name = "cardano" }, "not title-cased"},
		{"padded name", func(a *Asset) { a.Name = " Cardano" }, "not title-cased"},
		{"empty symbol", func(a *Asset) { a.Symbol = "" }, "symbol is empty"},
		{"bad trend", func(a *Asset) { a.PriceTrend = "sideways" }, `unknown price_trend "sideways"`},
		{"bad market cap", func(a *Asset) { a.MarketCap = "huge" }, `unknown market_cap "huge"`},
		{"bad energy", func(a *Asset) { a.EnergyUse = "" }, `unknown energy_use ""`},
		{"score too high", func(a *Asset) { a.SustainabilityScore = 11 }, "out of range"},
		{"score negative", func(a *Asset) { a.SustainabilityScore = -1 }, "out of range"},
		{"bad risk", func(a *Asset) { a.RiskLevel = "extreme" }, `unknown risk_level "extreme"`},
		{"empty description", func(a *Asset) { a.Description = "" }, "description is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAsset()
			tt.mutate(&a)
			err := a.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAsset))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAssetValidateReportsAllProblems(t *testing.T) {
	err := Asset{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<unnamed>")
	assert.Contains(t, err.Error(), "symbol is empty")
	assert.Contains(t, err.Error(), "description is empty")
}

func TestScoreBoundsAreInclusive(t *testing.T) {
	a := validAsset()
	a.SustainabilityScore = 0
	assert.NoError(t, a.Validate())
	a.SustainabilityScore = MaxSustainabilityScore
	assert.NoError(t, a.Validate())
}

func TestTitleCasedNamesRoundTrip(t *testing.T) {
	for _, name := range []string{"Bitcoin", "Bitcoin Cash", "Shiba Inu"} {
		a := validAsset()
		a.Name = name
		assert.NoError(t, a.Validate(), name)
		assert.Equal(t, name, TitleName(name))
	}
}

func TestTitleName(t *testing.T) {
	assert.Equal(t, "Bitcoin", TitleName("bitcoin"))
	assert.Equal(t, "Bitcoin", TitleName("  BITCOIN "))
	assert.Equal(t, "Bitcoin Cash", TitleName("bitcoin   cash"))
	assert.Equal(t, "", TitleName("   "))
}
