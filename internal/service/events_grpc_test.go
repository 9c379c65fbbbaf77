// internal/service/events_grpc_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	eventsv1 "taskmanager/api/proto/events/v1/generated"
)

func setupEventService(t *testing.T) (*testRig, *EventService) {
	rig := setupTriggers(t)

	// Second handle on the test database for the sweep's raw reads.
	db, err := sqlx.Open("sqlite3", "file:servicetest?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	sweep := NewDueDateSweep(db, rig.dispatcher)
	return rig, NewEventService(rig.triggers, sweep)
}

func TestEventService_TaskCreatedInvalidID(t *testing.T) {
	_, svc := setupEventService(t)

	_, err := svc.TaskCreated(context.Background(), &eventsv1.TaskCreatedRequest{TaskId: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestEventService_TaskCreatedUnknownID(t *testing.T) {
	_, svc := setupEventService(t)

	_, err := svc.TaskCreated(context.Background(), &eventsv1.TaskCreatedRequest{TaskId: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEventService_CommentCreated(t *testing.T) {
	rig, svc := setupEventService(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "")
	member := createTestUser(t, rig.client, "testuser", "ExponentPushToken[grpc]")
	project := createTestProject(t, rig.client, owner, member)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour))
	c := createTestComment(t, rig.client, task, owner, "ping @testuser")

	resp, err := svc.CommentCreated(ctx, &eventsv1.CommentCreatedRequest{CommentId: c.ID.String()})
	require.NoError(t, err)
	require.NotNil(t, resp)

	sent := rig.pushClient.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ExponentPushToken[grpc]", sent[0].Token)
}

func TestEventService_CommentUpdatedInvalidID(t *testing.T) {
	_, svc := setupEventService(t)

	_, err := svc.CommentUpdated(context.Background(), &eventsv1.CommentUpdatedRequest{CommentId: "42"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestEventService_RunDueDateSweep(t *testing.T) {
	rig, svc := setupEventService(t)

	resp, err := svc.RunDueDateSweep(context.Background(), &eventsv1.RunDueDateSweepRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, rig.pushClient.Sent())
}
