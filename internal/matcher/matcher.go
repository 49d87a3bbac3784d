// Package matcher associates executed test results with external test case identifiers.
package matcher

import (
	"fmt"
	"strings"

	"tcm/internal/domain"
)

// Strategy selects how a test result is linked to a test case
type Strategy string

const (
	// StrategyRegex extracts the case id from the test method name
	StrategyRegex Strategy = "regex"
	// StrategyName looks the test up in the known test case names
	StrategyName Strategy = "name"
	// StrategyProperty reads the case id from a console property marker
	StrategyProperty Strategy = "property"
)

// Strategies lists the supported strategies in help-text order
var Strategies = []Strategy{StrategyRegex, StrategyName, StrategyProperty}

// ParseStrategy converts a user supplied strategy name, ignoring case
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", &ConfigurationError{Field: "strategy", Msg: fmt.Sprintf("unknown match strategy %q", s)}
}

// Config holds the matching configuration for one run
type Config struct {
	Strategy     Strategy
	RegexPattern string // used only by StrategyRegex
	PropertyKey  string // used only by StrategyProperty
}

// strategy resolves a single result to a case id, "" meaning no match
type strategy interface {
	caseID(result domain.TestResult) string
}

// Matcher applies one configured strategy to test results.
// It holds only immutable state and is safe for concurrent use.
type Matcher struct {
	config   Config
	strategy strategy
}

// New validates cfg and prepares the matcher. The known cases are only
// consulted by StrategyName.
func New(cfg Config, cases []domain.TestCase) (*Matcher, error) {
	var (
		s   strategy
		err error
	)
	switch cfg.Strategy {
	case StrategyRegex:
		s, err = newRegexStrategy(cfg.RegexPattern)
	case StrategyName:
		s = newNameStrategy(cases)
	case StrategyProperty:
		s, err = newPropertyStrategy(cfg.PropertyKey)
	case "":
		err = &ConfigurationError{Field: "strategy", Msg: "no match strategy configured"}
	default:
		err = &ConfigurationError{Field: "strategy", Msg: fmt.Sprintf("unknown match strategy %q", cfg.Strategy)}
	}
	if err != nil {
		return nil, err
	}
	return &Matcher{config: cfg, strategy: s}, nil
}

// Strategy returns the active strategy
func (m *Matcher) Strategy() Strategy {
	return m.config.Strategy
}

// Match links result to a test case. An unmatched result is not an error;
// the returned MatchResult simply has an empty CaseID.
func (m *Matcher) Match(result domain.TestResult) domain.MatchResult {
	return domain.MatchResult{
		TestResult: result,
		CaseID:     m.strategy.caseID(result),
	}
}

// Match builds a matcher from cfg and applies it to a single result.
// Prefer New when matching more than one result.
func Match(cfg Config, cases []domain.TestCase, result domain.TestResult) (domain.MatchResult, error) {
	m, err := New(cfg, cases)
	if err != nil {
		return domain.MatchResult{}, err
	}
	return m.Match(result), nil
}
