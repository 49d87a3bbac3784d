package matcher

import (
	"regexp"

	"tcm/internal/domain"
)

type regexStrategy struct {
	re *regexp.Regexp
}

func newRegexStrategy(pattern string) (*regexStrategy, error) {
	if pattern == "" {
		return nil, &ConfigurationError{Field: "regex", Msg: "pattern is required for the regex strategy"}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ConfigurationError{Field: "regex", Msg: "pattern does not compile", Err: err}
	}
	if re.NumSubexp() < 1 {
		return nil, &ConfigurationError{Field: "regex", Msg: "pattern " + pattern + " has no capture group"}
	}
	return &regexStrategy{re: re}, nil
}

// caseID returns the first capture group of the leftmost match
func (s *regexStrategy) caseID(result domain.TestResult) string {
	m := s.re.FindStringSubmatch(result.Name)
	if m == nil {
		return ""
	}
	return m[1]
}
