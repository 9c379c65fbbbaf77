// pkg/push/client.go
package push

import (
	"context"
	"sync"
	"time"
)

// Client defines the interface for publishing push notifications.
type Client interface {
	Publish(ctx context.Context, token, title, body string) error
}

// Config holds push client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// MockClient implements Client for testing and local development.
type MockClient struct {
	mu        sync.Mutex
	Published []PublishedMessage

	// Err, when set, is returned by every Publish call.
	Err error
}

// PublishedMessage represents a notification recorded by MockClient.
type PublishedMessage struct {
	Token string
	Title string
	Body  string
}

// NewMockClient creates a new mock push client
func NewMockClient() *MockClient {
	return &MockClient{
		Published: make([]PublishedMessage, 0),
	}
}

// Publish mock implementation
func (m *MockClient) Publish(_ context.Context, token, title, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Published = append(m.Published, PublishedMessage{
		Token: token,
		Title: title,
		Body:  body,
	})
	return nil
}

// Sent returns a copy of the recorded messages.
func (m *MockClient) Sent() []PublishedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]PublishedMessage, len(m.Published))
	copy(out, m.Published)
	return out
}
