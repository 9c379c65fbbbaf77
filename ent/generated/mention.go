// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"taskmanager/ent/generated/comment"
	"taskmanager/ent/generated/mention"
	"taskmanager/ent/generated/user"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Mention is the model entity for the Mention schema.
type Mention struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// When the mention was first derived
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MentionQuery when eager-loading is set.
	Edges            MentionEdges `json:"edges"`
	comment_mentions *uuid.UUID
	user_mentions    *uuid.UUID
	selectValues     sql.SelectValues
}

// MentionEdges holds the relations/edges for other nodes in the graph.
type MentionEdges struct {
	// Owning comment; mentions die with it
	Comment *Comment `json:"comment,omitempty"`
	// User referenced by the handle
	MentionedUser *User `json:"mentioned_user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CommentOrErr returns the Comment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MentionEdges) CommentOrErr() (*Comment, error) {
	if e.Comment != nil {
		return e.Comment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: comment.Label}
	}
	return nil, &NotLoadedError{edge: "comment"}
}

// MentionedUserOrErr returns the MentionedUser value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MentionEdges) MentionedUserOrErr() (*User, error) {
	if e.MentionedUser != nil {
		return e.MentionedUser, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "mentioned_user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mention.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case mention.FieldID:
			values[i] = new(uuid.UUID)
		case mention.ForeignKeys[0]: // comment_mentions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case mention.ForeignKeys[1]: // user_mentions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mention fields.
func (m *Mention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mention.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				m.ID = *value
			}
		case mention.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				m.CreatedAt = value.Time
			}
		case mention.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field comment_mentions", values[i])
			} else if value.Valid {
				m.comment_mentions = new(uuid.UUID)
				*m.comment_mentions = *value.S.(*uuid.UUID)
			}
		case mention.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_mentions", values[i])
			} else if value.Valid {
				m.user_mentions = new(uuid.UUID)
				*m.user_mentions = *value.S.(*uuid.UUID)
			}
		default:
			m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mention.
// This includes values selected through modifiers, order, etc.
func (m *Mention) Value(name string) (ent.Value, error) {
	return m.selectValues.Get(name)
}

// QueryComment queries the "comment" edge of the Mention entity.
func (m *Mention) QueryComment() *CommentQuery {
	return NewMentionClient(m.config).QueryComment(m)
}

// QueryMentionedUser queries the "mentioned_user" edge of the Mention entity.
func (m *Mention) QueryMentionedUser() *UserQuery {
	return NewMentionClient(m.config).QueryMentionedUser(m)
}

// Update returns a builder for updating this Mention.
// Note that you need to call Mention.Unwrap() before calling this method if this Mention
// was returned from a transaction, and the transaction was committed or rolled back.
func (m *Mention) Update() *MentionUpdateOne {
	return NewMentionClient(m.config).UpdateOne(m)
}

// Unwrap unwraps the Mention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (m *Mention) Unwrap() *Mention {
	_tx, ok := m.config.driver.(*txDriver)
	if !ok {
		panic("generated: Mention is not a transactional entity")
	}
	m.config.driver = _tx.drv
	return m
}

// String implements the fmt.Stringer.
func (m *Mention) String() string {
	var builder strings.Builder
	builder.WriteString("Mention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Mentions is a parsable slice of Mention.
type Mentions []*Mention
