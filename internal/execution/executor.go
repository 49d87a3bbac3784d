package execution

import (
	"context"
	"time"

	"tcm/internal/domain"
)

// Executor matches a collection of test results
type Executor interface {
	Execute(ctx context.Context, results []domain.TestResult) ([]domain.MatchResult, time.Duration, error)
}

// Matcher links a single result to a test case
type Matcher interface {
	Match(result domain.TestResult) domain.MatchResult
}

// Progress receives running matched/unmatched counts
type Progress interface {
	Update(matched, unmatched int)
	Finish()
}
