package search

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	unicodetok "github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/registry"
)

const (
	StrategySubstring = "substring"
	StrategyToken     = "token"
)

// Matcher decides whether a keyword or asset name occurs in user text.
// Both the intent classifier and the advisor match through it, so the
// matching policy can change without touching either.
type Matcher interface {
	Contains(text, term string) bool
}

// NewMatcher returns the matcher registered under strategy.
func NewMatcher(strategy string) (Matcher, error) {
	switch strings.ToLower(strategy) {
	case "", StrategySubstring:
		return SubstringMatcher{}, nil
	case StrategyToken:
		return NewTokenMatcher()
	default:
		return nil, fmt.Errorf("unknown match strategy %q (want %s or %s)", strategy, StrategySubstring, StrategyToken)
	}
}

// SubstringMatcher reports plain case-insensitive containment. A short term
// can match inside a longer word ("eco" in "become").
type SubstringMatcher struct{}

func (SubstringMatcher) Contains(text, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// TokenMatcher splits text and term into lowercase word tokens with a bleve
// analyzer and reports whether the term's tokens occur as a contiguous run
// in the text. Whitespace and punctuation around the term do not matter.
type TokenMatcher struct {
	analyzer analysis.Analyzer
}

const tokenAnalyzerName = "buddy_words"

func NewTokenMatcher() (*TokenMatcher, error) {
	cache := registry.NewCache()
	analyzer, err := cache.DefineAnalyzer(tokenAnalyzerName, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     unicodetok.Name,
		"token_filters": []string{lowercase.Name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build token analyzer: %v", err)
	}
	return &TokenMatcher{analyzer: analyzer}, nil
}

func (m *TokenMatcher) Contains(text, term string) bool {
	needle := m.tokens(term)
	if len(needle) == 0 {
		return false
	}
	haystack := m.tokens(text)

outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if !bytes.Equal(haystack[i+j], needle[j]) {
				continue outer
			}
		}
		return true
	}
	return false
}

func (m *TokenMatcher) tokens(s string) [][]byte {
	stream := m.analyzer.Analyze([]byte(s))
	out := make([][]byte, 0, len(stream))
	for _, tok := range stream {
		out = append(out, tok.Term)
	}
	return out
}
