// internal/mention/reconciler_test.go
package mention

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "taskmanager/ent/generated"
	"taskmanager/ent/generated/enttest"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:mentiontest?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() {
		client.Close()
	})
	return client
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

func createTestComment(t *testing.T, client *ent.Client, content string) *ent.Comment {
	ctx := context.Background()

	creator := createTestUser(t, client, "comment_creator", "")
	project, err := client.Project.Create().
		SetName("Test Project").
		SetOwner(creator).
		Save(ctx)
	require.NoError(t, err)

	task, err := client.Task.Create().
		SetName("Test Task").
		SetDescription("Test description").
		SetStartDate(time.Now()).
		SetEndDate(time.Now().Add(48 * time.Hour)).
		SetProject(project).
		SetCreator(creator).
		Save(ctx)
	require.NoError(t, err)

	c, err := client.Comment.Create().
		SetContent(content).
		SetTask(task).
		SetCreator(creator).
		Save(ctx)
	require.NoError(t, err)

	return c
}

func TestReconciler_CreatesMentionForExistingUser(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	mentioned := createTestUser(t, client, "testuser", "ExponentPushToken[abc]")
	c := createTestComment(t, client, "Test Comment @testuser")

	created, removed, err := NewReconciler(client).Reconcile(ctx, c)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, 0, removed)
	assert.Equal(t, mentioned.ID, created[0].User.ID)

	// Content stored verbatim, mention row persisted.
	assert.Equal(t, "Test Comment @testuser", c.Content)
	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The mentioned user's profile is preloaded for the fan-out.
	require.NotNil(t, created[0].User.Edges.Profile)
	assert.Equal(t, "ExponentPushToken[abc]", created[0].User.Edges.Profile.ExpoPushToken)
}

func TestReconciler_IsIdempotent(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, client, "testuser", "")
	c := createTestComment(t, client, "ping @testuser")
	r := NewReconciler(client)

	created, removed, err := r.Reconcile(ctx, c)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, 0, removed)

	// Unchanged text: no additional creates or deletes.
	created, removed, err = r.Reconcile(ctx, c)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Equal(t, 0, removed)

	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReconciler_DuplicateHandlesCreateOneMention(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, client, "bob", "")
	c := createTestComment(t, client, "@bob did you see this, @bob?")

	created, _, err := NewReconciler(client).Reconcile(ctx, c)
	require.NoError(t, err)
	assert.Len(t, created, 1)

	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReconciler_UnknownHandleIsSkipped(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	c := createTestComment(t, client, "hello @nosuchuser")

	created, removed, err := NewReconciler(client).Reconcile(ctx, c)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Equal(t, 0, removed)

	count, err := client.Mention.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReconciler_EmbeddedHandleDoesNotMatchPrefixUser(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	// The scanner captures the maximal run "user1world", which fails exact
	// resolution against "user1".
	createTestUser(t, client, "user1", "")
	c := createTestComment(t, client, "Hello @user1world")

	created, _, err := NewReconciler(client).Reconcile(ctx, c)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestReconciler_EditRemovesStaleMention(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, client, "alice", "")
	c := createTestComment(t, client, "cc @alice")
	r := NewReconciler(client)

	created, _, err := r.Reconcile(ctx, c)
	require.NoError(t, err)
	require.Len(t, created, 1)

	c, err = c.Update().SetContent("cc nobody anymore").Save(ctx)
	require.NoError(t, err)

	created, removed, err := r.Reconcile(ctx, c)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Equal(t, 1, removed)

	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReconciler_EditAddsNewMentionOnly(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, client, "alice", "")
	bob := createTestUser(t, client, "bob", "")
	c := createTestComment(t, client, "cc @alice")
	r := NewReconciler(client)

	_, _, err := r.Reconcile(ctx, c)
	require.NoError(t, err)

	c, err = c.Update().SetContent("cc @alice and @bob").Save(ctx)
	require.NoError(t, err)

	created, removed, err := r.Reconcile(ctx, c)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, bob.ID, created[0].User.ID)
	assert.Equal(t, 0, removed)

	count, err := c.QueryMentions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReconciler_CommentDeleteCascadesMentions(t *testing.T) {
	client := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, client, "alice", "")
	c := createTestComment(t, client, "cc @alice")

	_, _, err := NewReconciler(client).Reconcile(ctx, c)
	require.NoError(t, err)

	require.NoError(t, client.Comment.DeleteOne(c).Exec(ctx))

	count, err := client.Mention.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
