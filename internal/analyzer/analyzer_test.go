package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcm/internal/domain"
)

func result(name string, status domain.Status) domain.TestResult {
	return domain.TestResult{Name: name, Status: status}
}

func TestFilterByStatus(t *testing.T) {
	results := []domain.TestResult{
		result("a", domain.StatusPassed),
		result("b", domain.StatusFailed),
		result("c", domain.StatusSkipped),
	}

	tests := []struct {
		name     string
		statuses []domain.Status
		expected []string
	}{
		{name: "no filter keeps all", statuses: nil, expected: []string{"a", "b", "c"}},
		{name: "passed only", statuses: []domain.Status{domain.StatusPassed}, expected: []string{"a"}},
		{
			name:     "passed and failed",
			statuses: []domain.Status{domain.StatusFailed, domain.StatusPassed},
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, r := range FilterByStatus(results, tt.statuses) {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestParseStatuses(t *testing.T) {
	statuses, err := ParseStatuses([]string{"passed,Failed", " ", "skip"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Status{domain.StatusPassed, domain.StatusFailed, domain.StatusSkipped}, statuses)

	_, err = ParseStatuses([]string{"flaky"})
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	results := []domain.MatchResult{
		{TestResult: result("a", domain.StatusPassed), CaseID: "1"},
		{TestResult: result("b", domain.StatusFailed), CaseID: "2"},
		{TestResult: result("c", domain.StatusSkipped)},
	}

	all := make([]domain.TestResult, len(results))
	for i, m := range results {
		all[i] = m.TestResult
	}

	t.Run("no options never fails", func(t *testing.T) {
		assert.NoError(t, Analyze(all, results, Options{}))
	})

	t.Run("failing tests", func(t *testing.T) {
		err := Analyze(all, results, Options{FailOnFailing: true})
		assert.ErrorIs(t, err, ErrFailingTests)
		assert.NotErrorIs(t, err, ErrSkippedTests)
	})

	t.Run("all conditions reported", func(t *testing.T) {
		err := Analyze(all, results, Options{FailOnFailing: true, FailOnSkipped: true, FailOnUnmatched: true})
		assert.ErrorIs(t, err, ErrFailingTests)
		assert.ErrorIs(t, err, ErrSkippedTests)
		assert.ErrorIs(t, err, ErrUnmatchedTests)
	})

	t.Run("clean run", func(t *testing.T) {
		clean := []domain.MatchResult{{TestResult: result("a", domain.StatusPassed), CaseID: "1"}}
		assert.NoError(t, Analyze(all[:1], clean, Options{FailOnFailing: true, FailOnSkipped: true, FailOnUnmatched: true}))
	})

	t.Run("statuses checked before filtering", func(t *testing.T) {
		passedOnly := []domain.MatchResult{{TestResult: result("a", domain.StatusPassed), CaseID: "1"}}
		err := Analyze(all, passedOnly, Options{FailOnFailing: true, FailOnSkipped: true, FailOnUnmatched: true})
		assert.ErrorIs(t, err, ErrFailingTests)
		assert.ErrorIs(t, err, ErrSkippedTests)
		assert.NotErrorIs(t, err, ErrUnmatchedTests)
	})
}
