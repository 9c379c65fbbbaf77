// internal/service/dispatcher.go
package service

import (
	"context"
	"fmt"
	"log"

	"taskmanager/internal/queue"
	"taskmanager/pkg/push"
)

// Dispatcher delivers a single push notification to one recipient token.
// Callers are responsible for the token presence check; the dispatcher
// assumes a non-empty token.
type Dispatcher struct {
	client push.Client
	queue  queue.Enqueuer
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(client push.Client, q queue.Enqueuer) *Dispatcher {
	return &Dispatcher{
		client: client,
		queue:  q,
	}
}

// Send performs one publish to the push provider. Transport and provider
// errors are logged with recipient and subject context and returned, so the
// queue's failure policy applies to them.
func (d *Dispatcher) Send(ctx context.Context, subject, message, token string) error {
	log.Printf("Sending notification to %s", token)

	if err := d.client.Publish(ctx, token, subject, message); err != nil {
		log.Printf("Error sending %q notification to %s: %v", subject, token, err)
		return fmt.Errorf("publish notification: %w", err)
	}

	log.Printf("%q sent to %s", subject, token)
	return nil
}

// EnqueueSend hands the delivery to the async queue so it runs outside the
// write path. Each recipient's send is an independent job; one failure never
// blocks sibling deliveries.
func (d *Dispatcher) EnqueueSend(subject, message, token string) {
	d.queue.Enqueue("send_notification", func(ctx context.Context) error {
		return d.Send(ctx, subject, message, token)
	})
}
