// internal/service/dispatcher_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/queue"
	"taskmanager/pkg/push"
)

func TestDispatcher_Send(t *testing.T) {
	client := push.NewMockClient()
	d := NewDispatcher(client, queue.NewSyncQueue())

	err := d.Send(context.Background(), "New task assigned", "You have been assigned to the task X", "ExponentPushToken[abc]")
	require.NoError(t, err)

	sent := client.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ExponentPushToken[abc]", sent[0].Token)
	assert.Equal(t, "New task assigned", sent[0].Title)
	assert.Equal(t, "You have been assigned to the task X", sent[0].Body)
}

func TestDispatcher_SendReturnsProviderError(t *testing.T) {
	client := push.NewMockClient()
	client.Err = errors.New("DeviceNotRegistered")
	d := NewDispatcher(client, queue.NewSyncQueue())

	err := d.Send(context.Background(), "Task due soon", "The task X is due tomorrow", "ExponentPushToken[bad]")
	require.Error(t, err)
	assert.ErrorContains(t, err, "DeviceNotRegistered")
}

func TestDispatcher_EnqueueSendFailuresAreIndependent(t *testing.T) {
	client := push.NewMockClient()
	sq := queue.NewSyncQueue()
	d := NewDispatcher(client, sq)

	// First delivery fails at the provider; the second must still go out.
	client.Err = errors.New("provider unavailable")
	d.EnqueueSend("You have been mentioned", "msg", "ExponentPushToken[one]")
	client.Err = nil
	d.EnqueueSend("You have been mentioned", "msg", "ExponentPushToken[two]")

	require.Len(t, sq.Errors, 2)
	assert.Error(t, sq.Errors[0])
	assert.NoError(t, sq.Errors[1])

	sent := client.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ExponentPushToken[two]", sent[0].Token)
}
