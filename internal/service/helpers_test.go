// internal/service/helpers_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ent "taskmanager/ent/generated"
	"taskmanager/ent/generated/enttest"
	"taskmanager/internal/mention"
	"taskmanager/internal/queue"
	"taskmanager/pkg/push"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:servicetest?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

// testRig bundles the services under test with a synchronous queue and a
// recording push client, so every enqueue runs inline and shows up in
// pushClient.Sent().
type testRig struct {
	client     *ent.Client
	pushClient *push.MockClient
	syncQueue  *queue.SyncQueue
	dispatcher *Dispatcher
	triggers   *EventTriggers
}

func setupTriggers(t *testing.T) *testRig {
	client := setupTestDB(t)
	pushClient := push.NewMockClient()
	syncQueue := queue.NewSyncQueue()
	dispatcher := NewDispatcher(pushClient, syncQueue)

	return &testRig{
		client:     client,
		pushClient: pushClient,
		syncQueue:  syncQueue,
		dispatcher: dispatcher,
		triggers:   NewEventTriggers(client, mention.NewReconciler(client), dispatcher),
	}
}

func createTestUser(t *testing.T, client *ent.Client, username, token string) *ent.User {
	u, err := client.User.Create().
		SetUsername(username).
		Save(context.Background())
	require.NoError(t, err)

	_, err = client.Profile.Create().
		SetUser(u).
		SetExpoPushToken(token).
		Save(context.Background())
	require.NoError(t, err)

	return u
}

func createTestProject(t *testing.T, client *ent.Client, owner *ent.User, members ...*ent.User) *ent.Project {
	p, err := client.Project.Create().
		SetName("Test Project").
		SetDescription("Test Description").
		SetOwner(owner).
		AddUsers(members...).
		Save(context.Background())
	require.NoError(t, err)

	return p
}

func createTestTask(t *testing.T, client *ent.Client, project *ent.Project, creator *ent.User, end time.Time, assigned ...*ent.User) *ent.Task {
	tk, err := client.Task.Create().
		SetName("Test Task").
		SetDescription("Test description").
		SetStartDate(end.Add(-24 * time.Hour)).
		SetEndDate(end).
		SetProject(project).
		SetCreator(creator).
		AddAssigned(assigned...).
		Save(context.Background())
	require.NoError(t, err)

	return tk
}

func createTestComment(t *testing.T, client *ent.Client, task *ent.Task, creator *ent.User, content string) *ent.Comment {
	c, err := client.Comment.Create().
		SetContent(content).
		SetTask(task).
		SetCreator(creator).
		Save(context.Background())
	require.NoError(t, err)

	return c
}
