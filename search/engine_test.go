package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstringMatcher(t *testing.T) {
	m := SubstringMatcher{}

	assert.True(t, m.Contains("Which crypto is most SUSTAINABLE?", "sustainable"))
	assert.True(t, m.Contains("compare bitcoin and cardano", " and "))
	assert.False(t, m.Contains("bitcoin", ""))
	assert.False(t, m.Contains("show me rising coins", "trending"))

	// substring policy over-matches inside longer words
	assert.True(t, m.Contains("things become clear", "eco"))
}

func TestTokenMatcher(t *testing.T) {
	m, err := NewTokenMatcher()
	require.NoError(t, err)

	tests := []struct {
		text string
		term string
		want bool
	}{
		{"Which crypto is most sustainable?", "sustainable", true},
		{"things become clear", "eco", false},
		{"eco friendly coins", "eco", true},
		{"what's the best long-term pick", "long term", true},
		{"what's the best long term pick", "long-term", true},
		{"prices are going up", "going up", true},
		{"going nowhere, up we go", "going up", false},
		{"compare bitcoin and cardano", " and ", true},
		{"sandwich", " and ", false},
		{"anything", "", false},
		{"", "eco", false},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Contains(tt.text, tt.term))
		})
	}
}

func TestNewMatcher(t *testing.T) {
	m, err := NewMatcher("")
	require.NoError(t, err)
	assert.IsType(t, SubstringMatcher{}, m)

	m, err = NewMatcher("Token")
	require.NoError(t, err)
	assert.IsType(t, &TokenMatcher{}, m)

	_, err = NewMatcher("fuzzy")
	assert.Error(t, err)
}
