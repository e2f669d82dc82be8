// Package intent maps free-text questions to one of a fixed set of intents.
//
// Commands (exit, help, list) must match the whole normalized input. Other
// intents are found by keyword rules evaluated in a fixed priority order;
// the first rule with any keyword present wins.
package intent

import (
	"strings"

	"crypto-buddy/search"
)

type Intent string

const (
	Exit         Intent = "exit"
	Help         Intent = "help"
	List         Intent = "list"
	Sustainable  Intent = "sustainable"
	Rising       Intent = "rising"
	LongTerm     Intent = "long_term"
	Compare      Intent = "compare"
	LowEnergy    Intent = "low_energy"
	About        Intent = "about"
	Unrecognized Intent = "unrecognized"
)

// Rule pairs an intent with the keywords that select it.
type Rule struct {
	Intent   Intent
	Keywords []string
}

var (
	exitCommands = []string{"quit", "exit", "bye"}
	helpCommands = []string{"help"}
	listCommands = []string{"list", "list all", "show all", "all cryptos"}
)

// DefaultRules returns the keyword rules in priority order. The spaces
// around "and" are significant.
func DefaultRules() []Rule {
	return []Rule{
		{Intent: Sustainable, Keywords: []string{"sustainable", "eco", "green"}},
		{Intent: Rising, Keywords: []string{"rising", "trending", "going up"}},
		{Intent: LongTerm, Keywords: []string{"long-term", "long term", "future"}},
		{Intent: Compare, Keywords: []string{"compare", "vs", " and "}},
		{Intent: LowEnergy, Keywords: []string{"low energy", "energy efficient"}},
		{Intent: About, Keywords: []string{"about", "tell me", "info"}},
	}
}

type Classifier struct {
	matcher search.Matcher
	rules   []Rule
}

// NewClassifier builds a classifier over DefaultRules. A nil matcher falls
// back to substring matching.
func NewClassifier(matcher search.Matcher) *Classifier {
	if matcher == nil {
		matcher = search.SubstringMatcher{}
	}
	return &Classifier{matcher: matcher, rules: DefaultRules()}
}

// Normalize lowercases and trims a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (c *Classifier) Classify(query string) Intent {
	q := Normalize(query)

	switch {
	case oneOf(q, exitCommands):
		return Exit
	case oneOf(q, helpCommands):
		return Help
	case oneOf(q, listCommands):
		return List
	}

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if c.matcher.Contains(q, kw) {
				return rule.Intent
			}
		}
	}
	return Unrecognized
}

func oneOf(q string, commands []string) bool {
	for _, c := range commands {
		if q == c {
			return true
		}
	}
	return false
}
