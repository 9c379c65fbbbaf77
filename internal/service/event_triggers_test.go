// internal/service/event_triggers_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "taskmanager/ent/generated"
)

func TestEventTriggers_TaskCreated(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "ExponentPushToken[owner]")
	member := createTestUser(t, rig.client, "member_user", "ExponentPushToken[member]")
	project := createTestProject(t, rig.client, owner, member)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour), owner, member)

	require.NoError(t, rig.triggers.TaskCreated(ctx, task.ID))

	sent := rig.pushClient.Sent()
	require.Len(t, sent, 2)
	tokens := []string{sent[0].Token, sent[1].Token}
	assert.ElementsMatch(t, []string{"ExponentPushToken[owner]", "ExponentPushToken[member]"}, tokens)
	for _, msg := range sent {
		assert.Equal(t, "New task assigned", msg.Title)
		assert.Equal(t, "You have been assigned to the task Test Task", msg.Body)
	}
}

func TestEventTriggers_TaskCreatedSkipsEmptyTokens(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "")
	project := createTestProject(t, rig.client, owner)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour), owner)

	require.NoError(t, rig.triggers.TaskCreated(ctx, task.ID))
	assert.Empty(t, rig.pushClient.Sent())
}

func TestEventTriggers_TaskCreatedUnknownTask(t *testing.T) {
	rig := setupTriggers(t)

	err := rig.triggers.TaskCreated(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestEventTriggers_CommentCreatedNotifiesMentionedMember(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "")
	member := createTestUser(t, rig.client, "testuser", "ExponentPushToken[mention]")
	project := createTestProject(t, rig.client, owner, member)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour))
	c := createTestComment(t, rig.client, task, owner, "Test Comment @testuser")

	require.NoError(t, rig.triggers.CommentCreated(ctx, c.ID))

	sent := rig.pushClient.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ExponentPushToken[mention]", sent[0].Token)
	assert.Equal(t, "You have been mentioned", sent[0].Title)
	assert.Equal(t, "You have been mentioned in a comment on the task Test Task", sent[0].Body)

	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEventTriggers_CommentCreatedOwnerCountsAsMember(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "ExponentPushToken[owner]")
	commenter := createTestUser(t, rig.client, "member_user", "")
	project := createTestProject(t, rig.client, owner, commenter)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour))
	c := createTestComment(t, rig.client, task, commenter, "what do you think @owneruser")

	require.NoError(t, rig.triggers.CommentCreated(ctx, c.ID))

	sent := rig.pushClient.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ExponentPushToken[owner]", sent[0].Token)
}

func TestEventTriggers_CommentCreatedSkipsNonMember(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "")
	createTestUser(t, rig.client, "non_member_user", "ExponentPushToken[outsider]")
	project := createTestProject(t, rig.client, owner)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour))
	c := createTestComment(t, rig.client, task, owner, "hi @non_member_user")

	require.NoError(t, rig.triggers.CommentCreated(ctx, c.ID))

	// The mention row exists but no notification crosses the project
	// membership boundary.
	assert.Empty(t, rig.pushClient.Sent())
	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEventTriggers_CommentCreatedSkipsMissingToken(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "")
	member := createTestUser(t, rig.client, "quiet_user", "")
	project := createTestProject(t, rig.client, owner, member)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour))
	c := createTestComment(t, rig.client, task, owner, "fyi @quiet_user")

	require.NoError(t, rig.triggers.CommentCreated(ctx, c.ID))
	assert.Empty(t, rig.pushClient.Sent())
}

func TestEventTriggers_CommentUpdatedNotifiesOnlyNewMentions(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "")
	alice := createTestUser(t, rig.client, "alice", "ExponentPushToken[alice]")
	bob := createTestUser(t, rig.client, "bob", "ExponentPushToken[bob]")
	project := createTestProject(t, rig.client, owner, alice, bob)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour))
	c := createTestComment(t, rig.client, task, owner, "cc @alice")

	require.NoError(t, rig.triggers.CommentCreated(ctx, c.ID))
	require.Len(t, rig.pushClient.Sent(), 1)

	// The edit adds bob; alice's pre-existing mention stays quiet.
	_, err := c.Update().SetContent("cc @alice and @bob").Save(ctx)
	require.NoError(t, err)
	require.NoError(t, rig.triggers.CommentUpdated(ctx, c.ID))

	sent := rig.pushClient.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "ExponentPushToken[bob]", sent[1].Token)
}

func TestEventTriggers_CommentUpdatedRemovalNotifiesNobody(t *testing.T) {
	rig := setupTriggers(t)
	ctx := context.Background()

	owner := createTestUser(t, rig.client, "owneruser", "")
	createTestUser(t, rig.client, "alice", "ExponentPushToken[alice]")
	project := createTestProject(t, rig.client, owner)
	task := createTestTask(t, rig.client, project, owner, time.Now().Add(48*time.Hour))
	c := createTestComment(t, rig.client, task, owner, "cc @alice")

	require.NoError(t, rig.triggers.CommentCreated(ctx, c.ID))
	sentBefore := len(rig.pushClient.Sent())

	_, err := c.Update().SetContent("never mind").Save(ctx)
	require.NoError(t, err)
	require.NoError(t, rig.triggers.CommentUpdated(ctx, c.ID))

	assert.Len(t, rig.pushClient.Sent(), sentBefore)
	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
