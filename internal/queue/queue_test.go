// internal/queue/queue_test.go
package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_RunsEnqueuedJobs(t *testing.T) {
	q := New(Config{Workers: 2, BufferSize: 8, MaxAttempts: 1})
	q.Start()

	var ran int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		q.Enqueue("test_job", func(ctx context.Context) error {
			defer wg.Done()
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}

	wg.Wait()
	q.Close()
	assert.Equal(t, int32(5), atomic.LoadInt32(&ran))
}

func TestQueue_RetriesFailedJobs(t *testing.T) {
	q := New(Config{Workers: 1, BufferSize: 8, MaxAttempts: 3, RetryDelay: time.Millisecond})
	q.Start()

	var attempts int32
	q.Enqueue("flaky_job", func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("transient failure")
		}
		return nil
	})

	q.Close()
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestQueue_DropsJobAfterMaxAttempts(t *testing.T) {
	q := New(Config{Workers: 1, BufferSize: 8, MaxAttempts: 2, RetryDelay: time.Millisecond})
	q.Start()

	var attempts int32
	q.Enqueue("doomed_job", func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("permanent failure")
	})

	q.Close()
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestQueue_JobFailureDoesNotBlockSiblings(t *testing.T) {
	q := New(Config{Workers: 1, BufferSize: 8, MaxAttempts: 1})
	q.Start()

	var delivered int32
	q.Enqueue("failing_job", func(ctx context.Context) error {
		return errors.New("provider down")
	})
	q.Enqueue("ok_job", func(ctx context.Context) error {
		atomic.AddInt32(&delivered, 1)
		return nil
	})

	q.Close()
	assert.Equal(t, int32(1), atomic.LoadInt32(&delivered))
}

func TestQueue_JobsGetTimeoutContext(t *testing.T) {
	q := New(Config{Workers: 1, BufferSize: 1, MaxAttempts: 1, JobTimeout: time.Second})
	q.Start()

	var hasDeadline bool
	q.Enqueue("deadline_job", func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})

	q.Close()
	assert.True(t, hasDeadline)
}

func TestQueue_CloseDrainsBufferedJobs(t *testing.T) {
	q := New(Config{Workers: 1, BufferSize: 16, MaxAttempts: 1})

	var ran int32
	for i := 0; i < 10; i++ {
		q.Enqueue("buffered_job", func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}

	// Workers start after the buffer is full; Close must still drain it.
	q.Start()
	q.Close()
	require.Equal(t, int32(10), atomic.LoadInt32(&ran))
}
