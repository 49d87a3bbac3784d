// Package analyzer filters test results by status and decides whether a run should fail.
package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"tcm/internal/domain"
)

var (
	// ErrFailingTests is returned when failing tests are not allowed
	ErrFailingTests = errors.New("test framework results contain failing tests")
	// ErrSkippedTests is returned when skipped tests are not allowed
	ErrSkippedTests = errors.New("test framework results contain skipped tests")
	// ErrUnmatchedTests is returned when every result must resolve to a test case
	ErrUnmatchedTests = errors.New("test results could not be matched to test cases")
)

// Options selects the conditions that fail a run
type Options struct {
	FailOnFailing   bool
	FailOnSkipped   bool
	FailOnUnmatched bool
}

// ParseStatuses converts status names, accepting comma separated values
func ParseStatuses(values []string) ([]domain.Status, error) {
	var statuses []domain.Status
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			s, err := domain.ParseStatus(part)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, s)
		}
	}
	return statuses, nil
}

// FilterByStatus keeps the results whose status is listed. No statuses keeps everything.
func FilterByStatus(results []domain.TestResult, statuses []domain.Status) []domain.TestResult {
	if len(statuses) == 0 {
		return results
	}

	allowed := make(map[domain.Status]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}

	var filtered []domain.TestResult
	for _, r := range results {
		if allowed[r.Status] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Analyze checks a run against opts and returns every violated condition.
// Statuses are checked on all framework results, before any filter; unmatched
// results are counted on the matches.
func Analyze(results []domain.TestResult, matches []domain.MatchResult, opts Options) error {
	var failed, skipped, unmatched int
	for _, r := range results {
		switch r.Status {
		case domain.StatusFailed:
			failed++
		case domain.StatusSkipped:
			skipped++
		}
	}
	for _, m := range matches {
		if !m.Matched() {
			unmatched++
		}
	}

	var errs []error
	if opts.FailOnFailing && failed > 0 {
		errs = append(errs, fmt.Errorf("%w (%d)", ErrFailingTests, failed))
	}
	if opts.FailOnSkipped && skipped > 0 {
		errs = append(errs, fmt.Errorf("%w (%d)", ErrSkippedTests, skipped))
	}
	if opts.FailOnUnmatched && unmatched > 0 {
		errs = append(errs, fmt.Errorf("%w (%d)", ErrUnmatchedTests, unmatched))
	}
	return errors.Join(errs...)
}
