package execution

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcm/internal/domain"
	"tcm/internal/matcher"
)

type recordingProgress struct {
	mu        sync.Mutex
	matched   int
	unmatched int
	finished  bool
}

func (p *recordingProgress) Update(matched, unmatched int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.matched, p.unmatched = matched, unmatched
}

func (p *recordingProgress) Finish() {
	p.finished = true
}

func buildResults(n int) []domain.TestResult {
	results := make([]domain.TestResult, n)
	for i := range results {
		name := fmt.Sprintf("test_%d_testCase%d", i, 1000+i)
		if i%3 == 0 {
			name = fmt.Sprintf("test_%d_unlinked", i)
		}
		results[i] = domain.TestResult{Name: name, Status: domain.StatusPassed}
	}
	return results
}

func TestWorkerPool_Execute(t *testing.T) {
	m, err := matcher.New(matcher.Config{Strategy: matcher.StrategyRegex, RegexPattern: `testCase(\d+)`}, nil)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 4, 100} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			pool := NewWorkerPool(workers, m, NewRoundRobinScheduler())
			progress := &recordingProgress{}
			pool.SetProgress(progress)

			results := buildResults(50)
			matches, _, err := pool.Execute(context.Background(), results)
			require.NoError(t, err)
			require.Len(t, matches, len(results))

			for i, match := range matches {
				assert.Equal(t, results[i].Name, match.TestResult.Name, "order must be preserved")
				if i%3 == 0 {
					assert.False(t, match.Matched())
				} else {
					assert.Equal(t, fmt.Sprintf("%d", 1000+i), match.CaseID)
				}
			}
			assert.Equal(t, 33, progress.matched)
			assert.Equal(t, 17, progress.unmatched)
			assert.True(t, progress.finished)
		})
	}
}

func TestWorkerPool_ExecuteEmpty(t *testing.T) {
	pool := NewWorkerPool(4, nil, NewRoundRobinScheduler())
	matches, _, err := pool.Execute(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWorkerPool_ExecuteCancelled(t *testing.T) {
	m, err := matcher.New(matcher.Config{Strategy: matcher.StrategyRegex, RegexPattern: `(\d+)`}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = NewWorkerPool(2, m, NewRoundRobinScheduler()).Execute(ctx, buildResults(10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	s := NewRoundRobinScheduler()

	assert.Equal(t, [][]int{{0, 3, 6}, {1, 4}, {2, 5}}, s.Schedule(7, 3))
	assert.Equal(t, [][]int{{0, 1}}, s.Schedule(2, 0))
	assert.Equal(t, [][]int{{}, {}}, s.Schedule(0, 2))
}
