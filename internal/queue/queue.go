// internal/queue/queue.go
package queue

import (
	"context"
	"log"
	"sync"
	"time"
)

// Job is one unit of asynchronous work.
type Job func(ctx context.Context) error

// Enqueuer is the hand-off interface the write path sees. The contract is
// at-least-once execution with no ordering guarantee.
type Enqueuer interface {
	Enqueue(name string, job Job)
}

// Config holds worker pool configuration
type Config struct {
	Workers     int
	BufferSize  int
	MaxAttempts int
	RetryDelay  time.Duration
	JobTimeout  time.Duration
}

// Queue is an in-process worker pool over a buffered channel. Once a job is
// enqueued it runs to completion (success or logged failure); there is no
// way to retract it.
type Queue struct {
	jobs        chan item
	workers     int
	maxAttempts int
	retryDelay  time.Duration
	jobTimeout  time.Duration

	wg      sync.WaitGroup
	once    sync.Once
	started bool
	mu      sync.Mutex
}

type item struct {
	name string
	job  Job
}

// New creates a new queue
func New(cfg Config) *Queue {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	buffer := cfg.BufferSize
	if buffer < 1 {
		buffer = 64
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	jobTimeout := cfg.JobTimeout
	if jobTimeout <= 0 {
		jobTimeout = 30 * time.Second
	}

	return &Queue{
		jobs:        make(chan item, buffer),
		workers:     workers,
		maxAttempts: maxAttempts,
		retryDelay:  cfg.RetryDelay,
		jobTimeout:  jobTimeout,
	}
}

// Start launches the worker goroutines.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started {
		return
	}
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	log.Printf("Started %d queue workers", q.workers)
}

// Enqueue hands a job to the pool. It blocks only when the buffer is full.
func (q *Queue) Enqueue(name string, job Job) {
	q.jobs <- item{name: name, job: job}
}

// Close stops accepting jobs, drains the buffer, and waits for workers.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.jobs)
	})
	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for it := range q.jobs {
		q.run(it)
	}
}

// run executes one job with retries. Each attempt gets its own timeout
// context; a job that keeps failing is logged and dropped after the last
// attempt.
func (q *Queue) run(it item) {
	for attempt := 1; ; attempt++ {
		err := q.runOnce(it)
		if err == nil {
			return
		}

		log.Printf("Job %s attempt %d/%d failed: %v", it.name, attempt, q.maxAttempts, err)
		if attempt >= q.maxAttempts {
			log.Printf("Job %s dropped after %d attempts", it.name, q.maxAttempts)
			return
		}

		if q.retryDelay > 0 {
			time.Sleep(q.retryDelay)
		}
	}
}

func (q *Queue) runOnce(it item) error {
	ctx, cancel := context.WithTimeout(context.Background(), q.jobTimeout)
	defer cancel()

	return it.job(ctx)
}
