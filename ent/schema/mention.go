// ent/schema/mention.go
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

// Mention holds the schema definition for the Mention entity. Mentions are
// derived entirely from comment content and are never authored directly.
type Mention struct {
	ent.Schema
}

// Fields of the Mention.
func (Mention) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the mention was first derived"),
	}
}

// Edges of the Mention.
func (Mention) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("comment", Comment.Type).
			Ref("mentions").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)).
			Comment("Owning comment; mentions die with it"),

		edge.From("mentioned_user", User.Type).
			Ref("mentions").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)).
			Comment("User referenced by the handle"),
	}
}

// Indexes of the Mention.
func (Mention) Indexes() []ent.Index {
	return []ent.Index{
		// One mention per (comment, user) regardless of how many times
		// the handle appears in the text.
		index.Edges("comment", "mentioned_user").
			Unique(),
	}
}
