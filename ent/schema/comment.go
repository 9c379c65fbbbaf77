// ent/schema/comment.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Comment holds the schema definition for the Comment entity.
type Comment struct {
	ent.Schema
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.Text("content").
			Comment("Free-text comment body, stored verbatim"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the comment was created"),
	}
}

// Edges of the Comment.
func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("comments").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)).
			Comment("Task this comment belongs to"),

		edge.From("creator", User.Type).
			Ref("comments").
			Unique().
			Required().
			Comment("User who wrote the comment"),

		edge.To("mentions", Mention.Type).
			Comment("Mentions derived from this comment's content"),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
