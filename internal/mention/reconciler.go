// internal/mention/reconciler.go
package mention

import (
	"context"
	"fmt"

	ent "taskmanager/ent/generated"
	"taskmanager/ent/generated/user"
)

// Reconciler synchronizes the Mention rows of a comment with the handles
// currently present in its text.
type Reconciler struct {
	client *ent.Client
}

// NewReconciler creates a new mention reconciler.
func NewReconciler(client *ent.Client) *Reconciler {
	return &Reconciler{
		client: client,
	}
}

// NewMention is a mention created during reconciliation, together with the
// mentioned user (profile edge preloaded) so callers can fan out
// notifications without another round trip.
type NewMention struct {
	Mention *ent.Mention
	User    *ent.User
}

// Reconcile scans the comment's current content, creates a Mention for each
// resolvable handle that is not mentioned yet, and deletes Mentions whose
// handle no longer appears in the text. Handles that match no username are
// skipped silently; a typo must never block a comment save.
//
// Reconcile is idempotent: running it twice over unchanged text performs no
// additional creates or deletes. It returns the newly created mentions and
// the number of removed ones.
func (r *Reconciler) Reconcile(ctx context.Context, c *ent.Comment) ([]NewMention, int, error) {
	handles := ScanHandles(c.Content)

	present := make(map[string]bool, len(handles))
	for _, h := range handles {
		present[h] = true
	}

	existing, err := c.QueryMentions().WithMentionedUser().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query existing mentions: %w", err)
	}

	mentioned := make(map[string]bool, len(existing))
	for _, m := range existing {
		u, err := m.Edges.MentionedUserOrErr()
		if err != nil {
			return nil, 0, fmt.Errorf("load mentioned user: %w", err)
		}
		mentioned[u.Username] = true
	}

	// Create one mention per newly resolved user. Duplicate handles in the
	// text collapse through the seen set; the unique (comment, user) index
	// backs this up at the database level.
	var created []NewMention
	seen := make(map[string]bool, len(handles))
	for _, h := range handles {
		if seen[h] {
			continue
		}
		seen[h] = true

		if mentioned[h] {
			continue
		}

		u, err := r.client.User.Query().
			Where(user.UsernameEQ(h)).
			WithProfile().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue // unresolvable handle, not an error
			}
			return nil, 0, fmt.Errorf("resolve handle %q: %w", h, err)
		}

		m, err := r.client.Mention.Create().
			SetComment(c).
			SetMentionedUser(u).
			Save(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("create mention for %q: %w", h, err)
		}

		created = append(created, NewMention{Mention: m, User: u})
	}

	// Drop mentions whose handle disappeared from the text.
	removed := 0
	for _, m := range existing {
		if present[m.Edges.MentionedUser.Username] {
			continue
		}
		if err := r.client.Mention.DeleteOne(m).Exec(ctx); err != nil {
			return nil, 0, fmt.Errorf("delete stale mention: %w", err)
		}
		removed++
	}

	return created, removed, nil
}
