package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countingJob struct {
	counter *atomic.Int64
	fail    bool
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countingResult{err: errors.New("job failed")}
	}
	return &countingResult{}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter atomic.Int64
	for i := 0; i < 20; i++ {
		pool.Submit(&countingJob{counter: &counter})
	}

	results := pool.Wait()

	if counter.Load() != 20 {
		t.Errorf("expected 20 executions, got %d", counter.Load())
	}
	if len(results) != 20 {
		t.Errorf("expected 20 results, got %d", len(results))
	}
}

func TestPool_CollectsFailures(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var counter atomic.Int64
	pool.Submit(&countingJob{counter: &counter})
	pool.Submit(&countingJob{counter: &counter, fail: true})

	results := pool.Wait()

	failures := 0
	for _, res := range results {
		if res.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	pool := NewPool(0)
	if pool.workers != 1 {
		t.Errorf("expected 1 worker, got %d", pool.workers)
	}
}

func TestPool_SubmitManyMoreJobsThanBuffer(t *testing.T) {
	// Far more jobs than the workers*2 channel buffers can hold; submission
	// must not block while results accumulate.
	pool := NewPool(2)
	pool.Start()
	defer pool.Shutdown()

	var counter atomic.Int64
	const jobs = 50
	for i := 0; i < jobs; i++ {
		pool.Submit(&countingJob{counter: &counter})
	}

	results := pool.Wait()

	if counter.Load() != jobs {
		t.Errorf("expected %d executions, got %d", jobs, counter.Load())
	}
	if len(results) != jobs {
		t.Errorf("expected %d results, got %d", jobs, len(results))
	}
}
