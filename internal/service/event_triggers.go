// internal/service/event_triggers.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "taskmanager/ent/generated"
	"taskmanager/ent/generated/comment"
	"taskmanager/ent/generated/task"
	"taskmanager/ent/generated/user"
	"taskmanager/internal/mention"
)

// EventTriggers reacts to committed domain writes and fans notifications out
// to the affected recipients. The write path calls these entry points after
// its own transaction commits; nothing here mutates tasks or comments.
type EventTriggers struct {
	client     *ent.Client
	reconciler *mention.Reconciler
	dispatcher *Dispatcher
}

// NewEventTriggers creates a new event trigger set
func NewEventTriggers(client *ent.Client, reconciler *mention.Reconciler, dispatcher *Dispatcher) *EventTriggers {
	return &EventTriggers{
		client:     client,
		reconciler: reconciler,
		dispatcher: dispatcher,
	}
}

// TaskCreated notifies every assigned user with a push token that a new
// task was assigned to them.
func (t *EventTriggers) TaskCreated(ctx context.Context, taskID uuid.UUID) error {
	tk, err := t.client.Task.Query().
		Where(task.ID(taskID)).
		WithAssigned(func(q *ent.UserQuery) {
			q.WithProfile()
		}).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load task %s: %w", taskID, err)
	}

	subject := "New task assigned"
	message := fmt.Sprintf("You have been assigned to the task %s", tk.Name)

	for _, u := range tk.Edges.Assigned {
		token := pushToken(u)
		if token == "" {
			continue
		}
		t.dispatcher.EnqueueSend(subject, message, token)
	}
	return nil
}

// CommentCreated reconciles mentions for a freshly created comment and
// notifies each newly mentioned user.
func (t *EventTriggers) CommentCreated(ctx context.Context, commentID uuid.UUID) error {
	return t.reconcileAndNotify(ctx, commentID)
}

// CommentUpdated reconciles mentions against the edited text. Only mentions
// created by this edit produce notifications; pre-existing ones stay quiet
// and removed ones notify nobody.
func (t *EventTriggers) CommentUpdated(ctx context.Context, commentID uuid.UUID) error {
	return t.reconcileAndNotify(ctx, commentID)
}

func (t *EventTriggers) reconcileAndNotify(ctx context.Context, commentID uuid.UUID) error {
	c, err := t.client.Comment.Query().
		Where(comment.ID(commentID)).
		WithTask(func(q *ent.TaskQuery) {
			q.WithProject()
		}).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load comment %s: %w", commentID, err)
	}

	created, _, err := t.reconciler.Reconcile(ctx, c)
	if err != nil {
		return fmt.Errorf("reconcile mentions: %w", err)
	}
	if len(created) == 0 {
		return nil
	}

	tk, err := c.Edges.TaskOrErr()
	if err != nil {
		return fmt.Errorf("load comment task: %w", err)
	}
	proj, err := tk.Edges.ProjectOrErr()
	if err != nil {
		return fmt.Errorf("load task project: %w", err)
	}

	subject := "You have been mentioned"
	message := fmt.Sprintf("You have been mentioned in a comment on the task %s", tk.Name)

	for _, nm := range created {
		// Mentions only carry notifications for project members and the
		// owner; outsiders keep the row but never hear about it.
		member, err := t.isMemberOrOwner(ctx, proj, nm.User.ID)
		if err != nil {
			return err
		}
		if !member {
			continue
		}

		token := pushToken(nm.User)
		if token == "" {
			continue
		}
		t.dispatcher.EnqueueSend(subject, message, token)
	}
	return nil
}

func (t *EventTriggers) isMemberOrOwner(ctx context.Context, proj *ent.Project, userID uuid.UUID) (bool, error) {
	ownerID, err := proj.QueryOwner().OnlyID(ctx)
	if err != nil {
		return false, fmt.Errorf("load project owner: %w", err)
	}
	if ownerID == userID {
		return true, nil
	}

	member, err := proj.QueryUsers().
		Where(user.ID(userID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check project membership: %w", err)
	}
	return member, nil
}

// pushToken returns the user's push token, or "" when the profile is
// missing or the token is unset.
func pushToken(u *ent.User) string {
	if u.Edges.Profile == nil {
		return ""
	}
	return u.Edges.Profile.ExpoPushToken
}
