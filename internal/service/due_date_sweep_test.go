// internal/service/due_date_sweep_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "taskmanager/ent/generated"
	"taskmanager/ent/generated/enttest"
	"taskmanager/internal/queue"
	"taskmanager/pkg/push"

	_ "github.com/mattn/go-sqlite3"
)

// setupSweep opens the migrated test database twice: once through ent for
// fixtures and once through sqlx for the sweep's raw reads. The shared-cache
// DSN makes both handles see the same in-memory database.
func setupSweep(t *testing.T, now time.Time) (*ent.Client, *DueDateSweep, *push.MockClient) {
	const dsn = "file:sweeptest?mode=memory&cache=shared&_fk=1"

	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		client.Close()
	})

	db, err := sqlx.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	pushClient := push.NewMockClient()
	sweep := NewDueDateSweep(db, NewDispatcher(pushClient, queue.NewSyncQueue()))
	sweep.now = func() time.Time { return now }

	return client, sweep, pushClient
}

func TestDueDateSweep_NotifiesAssigneesOfTasksDueTomorrow(t *testing.T) {
	now := time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)
	client, sweep, pushClient := setupSweep(t, now)
	ctx := context.Background()

	owner := createTestUser(t, client, "owneruser", "")
	assignee := createTestUser(t, client, "member_user", "ExponentPushToken[due]")
	project := createTestProject(t, client, owner, assignee)

	// Due tomorrow afternoon: inside the calendar-date window.
	createTestTask(t, client, project, owner, time.Date(2024, 5, 15, 16, 0, 0, 0, time.UTC), assignee)

	require.NoError(t, sweep.Run(ctx))

	sent := pushClient.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ExponentPushToken[due]", sent[0].Token)
	assert.Equal(t, "Task due soon", sent[0].Title)
	assert.Equal(t, "The task Test Task is due tomorrow", sent[0].Body)
}

func TestDueDateSweep_RepeatedRunsResend(t *testing.T) {
	now := time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)
	client, sweep, pushClient := setupSweep(t, now)
	ctx := context.Background()

	owner := createTestUser(t, client, "owneruser", "")
	assignee := createTestUser(t, client, "member_user", "ExponentPushToken[due]")
	project := createTestProject(t, client, owner, assignee)
	createTestTask(t, client, project, owner, time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC), assignee)

	// No notified marker: the second run within the same day re-sends.
	require.NoError(t, sweep.Run(ctx))
	require.NoError(t, sweep.Run(ctx))

	assert.Len(t, pushClient.Sent(), 2)
}

func TestDueDateSweep_SkipsEmptyTokens(t *testing.T) {
	now := time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)
	client, sweep, pushClient := setupSweep(t, now)
	ctx := context.Background()

	owner := createTestUser(t, client, "owneruser", "")
	assignee := createTestUser(t, client, "member_user", "")
	project := createTestProject(t, client, owner, assignee)
	createTestTask(t, client, project, owner, time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC), assignee)

	require.NoError(t, sweep.Run(ctx))
	assert.Empty(t, pushClient.Sent())
}

func TestDueDateSweep_IgnoresTasksOutsideTheWindow(t *testing.T) {
	now := time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)
	client, sweep, pushClient := setupSweep(t, now)
	ctx := context.Background()

	owner := createTestUser(t, client, "owneruser", "")
	assignee := createTestUser(t, client, "member_user", "ExponentPushToken[due]")
	project := createTestProject(t, client, owner, assignee)

	// Due today and due in two days: both outside tomorrow's calendar date.
	createTestTask(t, client, project, owner, time.Date(2024, 5, 14, 23, 0, 0, 0, time.UTC), assignee)
	createTestTask(t, client, project, owner, time.Date(2024, 5, 16, 1, 0, 0, 0, time.UTC), assignee)

	require.NoError(t, sweep.Run(ctx))
	assert.Empty(t, pushClient.Sent())
}
