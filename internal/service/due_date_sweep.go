// internal/service/due_date_sweep.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
)

// dueSoonQuery joins tasks due tomorrow with their assignees' push tokens in
// one read. Written with "?" placeholders and passed through Rebind so the
// same statement runs on Postgres and on the sqlite databases tests use.
const dueSoonQuery = `
SELECT t.id AS task_id, t.name AS task_name, p.expo_push_token
FROM tasks t
JOIN task_assigned ta ON ta.task_id = t.id
JOIN users u ON u.id = ta.user_id
JOIN profiles p ON p.user_id = u.id
WHERE t.end_date >= ? AND t.end_date < ?
  AND p.expo_push_token <> ''
ORDER BY t.id`

type dueSoonRecipient struct {
	TaskID   string `db:"task_id"`
	TaskName string `db:"task_name"`
	Token    string `db:"expo_push_token"`
}

// DueDateSweep is the daily batch job that notifies assignees of tasks due
// tomorrow. It keeps no "already notified" marker: running it twice on the
// same day re-sends to the same recipients. That is deliberate at-least-once
// behavior, not an oversight.
type DueDateSweep struct {
	db         *sqlx.DB
	dispatcher *Dispatcher
	now        func() time.Time
}

// NewDueDateSweep creates a new due-date sweep job
func NewDueDateSweep(db *sqlx.DB, dispatcher *Dispatcher) *DueDateSweep {
	return &DueDateSweep{
		db:         db,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Run performs one sweep. "Tomorrow" is the calendar date after now,
// evaluated once at invocation time, not a rolling 24h window.
func (s *DueDateSweep) Run(ctx context.Context) error {
	now := s.now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var recipients []dueSoonRecipient
	if err := s.db.SelectContext(ctx, &recipients, s.db.Rebind(dueSoonQuery), tomorrow, dayAfter); err != nil {
		return fmt.Errorf("query tasks due tomorrow: %w", err)
	}

	log.Printf("Due-date sweep found %d recipient(s) for %s", len(recipients), tomorrow.Format("2006-01-02"))

	subject := "Task due soon"
	for _, r := range recipients {
		message := fmt.Sprintf("The task %s is due tomorrow", r.TaskName)
		s.dispatcher.EnqueueSend(subject, message, r.Token)
	}
	return nil
}
