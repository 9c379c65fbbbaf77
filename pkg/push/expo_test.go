// pkg/push/expo_test.go
package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpoClient_Publish(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []expoMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expoResponse{
			Data: []expoTicket{{Status: "ok", ID: "ticket-1"}},
		})
	}))
	defer server.Close()

	client := NewExpoClient(Config{BaseURL: server.URL + "/--/api/v2/push/send"})
	err := client.Publish(context.Background(), "ExponentPushToken[abc]", "New task assigned", "You have been assigned to the task X")
	require.NoError(t, err)

	assert.Equal(t, "/--/api/v2/push/send", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	require.Len(t, gotBody, 1)
	assert.Equal(t, "ExponentPushToken[abc]", gotBody[0].To)
	assert.Equal(t, "New task assigned", gotBody[0].Title)
	assert.Equal(t, "You have been assigned to the task X", gotBody[0].Body)
}

func TestExpoClient_PublishTicketError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expoResponse{
			Data: []expoTicket{{
				Status:  "error",
				Message: "the recipient device is not registered",
				Details: map[string]string{"error": "DeviceNotRegistered"},
			}},
		})
	}))
	defer server.Close()

	client := NewExpoClient(Config{BaseURL: server.URL})
	err := client.Publish(context.Background(), "ExponentPushToken[gone]", "t", "b")
	require.Error(t, err)
	assert.ErrorContains(t, err, "DeviceNotRegistered")
}

func TestExpoClient_PublishNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewExpoClient(Config{BaseURL: server.URL})
	err := client.Publish(context.Background(), "ExponentPushToken[abc]", "t", "b")
	require.Error(t, err)
	assert.ErrorContains(t, err, "429")
}

func TestExpoClient_PublishRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewExpoClient(Config{BaseURL: server.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := client.Publish(ctx, "ExponentPushToken[abc]", "t", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
