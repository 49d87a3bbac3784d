package execution

// Scheduler distributes result indices across workers
type Scheduler interface {
	Schedule(count int, workerCount int) [][]int
}

// RoundRobinScheduler distributes results evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes the indices 0..count-1 evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(count int, workerCount int) [][]int {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]int, workerCount)
	for i := range distribution {
		distribution[i] = make([]int, 0, count/workerCount+1)
	}

	for i := 0; i < count; i++ {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], i)
	}

	return distribution
}
