package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countingJob struct {
	counter *atomic.Int64
	err     error
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &countingResult{err: j.err}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var counter atomic.Int64
	for i := 0; i < 5; i++ {
		pool.Submit(&countingJob{counter: &counter})
	}

	results := pool.Wait()

	if counter.Load() != 5 {
		t.Errorf("Expected 5 executions, got %d", counter.Load())
	}
	if len(results) != 5 {
		t.Errorf("Expected 5 results, got %d", len(results))
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var counter atomic.Int64
	jobErr := errors.New("job failed")
	pool.Submit(&countingJob{counter: &counter, err: jobErr})
	pool.Submit(&countingJob{counter: &counter})

	results := pool.Wait()

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failed result, got %d", failures)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter atomic.Int64
	pool.Submit(&countingJob{counter: &counter})

	results := pool.Wait()

	if len(results) != 1 {
		t.Errorf("Expected pool with clamped worker count to run the job, got %d results", len(results))
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submit after shutdown must not block or panic
	var counter atomic.Int64
	pool.Submit(&countingJob{counter: &counter})

	if counter.Load() != 0 {
		t.Errorf("Expected no executions after shutdown, got %d", counter.Load())
	}
}
