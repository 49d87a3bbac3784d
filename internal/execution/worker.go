package execution

import (
	"context"
	"sync"
	"time"

	"tcm/internal/domain"
)

var _ Executor = (*WorkerPool)(nil)

// WorkerPool matches test results in parallel.
// All workers share one Matcher, which must be safe for concurrent use.
type WorkerPool struct {
	workers   int
	matcher   Matcher
	scheduler Scheduler
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(workers int, matcher Matcher, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		workers:   workers,
		matcher:   matcher,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute matches every result and returns the match results in input order
func (wp *WorkerPool) Execute(ctx context.Context, results []domain.TestResult) ([]domain.MatchResult, time.Duration, error) {
	if len(results) == 0 {
		return nil, 0, nil
	}

	workerCount := wp.workers
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(results) {
		workerCount = len(results)
	}

	startTime := time.Now()
	matches := make([]domain.MatchResult, len(results))
	distribution := wp.scheduler.Schedule(len(results), workerCount)

	var mu sync.Mutex
	var matched, unmatched int

	var wg sync.WaitGroup
	for _, indices := range distribution {
		wg.Add(1)
		go func(indices []int) {
			defer wg.Done()
			for _, i := range indices {
				if ctx.Err() != nil {
					return
				}
				m := wp.matcher.Match(results[i])
				matches[i] = m

				mu.Lock()
				if m.Matched() {
					matched++
				} else {
					unmatched++
				}
				if wp.progress != nil {
					wp.progress.Update(matched, unmatched)
				}
				mu.Unlock()
			}
		}(indices)
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}
	if err := ctx.Err(); err != nil {
		return nil, time.Since(startTime), err
	}
	return matches, time.Since(startTime), nil
}
