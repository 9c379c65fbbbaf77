// internal/queue/sync.go
package queue

import "context"

// SyncQueue runs every job inline on the caller's goroutine. It exists for
// tests that need deterministic ordering without a worker pool.
type SyncQueue struct {
	// Names records the job names in enqueue order.
	Names []string
	// Errors records the result of each job, index-aligned with Names.
	Errors []error
}

// NewSyncQueue creates a new synchronous queue
func NewSyncQueue() *SyncQueue {
	return &SyncQueue{}
}

// Enqueue executes the job immediately.
func (s *SyncQueue) Enqueue(name string, job Job) {
	s.Names = append(s.Names, name)
	s.Errors = append(s.Errors, job(context.Background()))
}
