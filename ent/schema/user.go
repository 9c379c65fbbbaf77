// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("username").
			NotEmpty().
			Unique().
			MaxLen(150).
			Comment("Unique username, the exact-match key for @mention resolution"),

		field.String("email").
			Optional().
			Default("").
			Comment("User email address"),

		field.String("first_name").
			Optional().
			Default("").
			MaxLen(100),

		field.String("last_name").
			Optional().
			Default("").
			MaxLen(100),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// One-to-one profile carrying the push token. The FK column is
		// pinned so raw SQL can join on profiles.user_id.
		edge.To("profile", Profile.Type).
			Unique().
			StorageKey(edge.Column("user_id")).
			Comment("Push-notification profile for this user"),

		edge.To("owned_projects", Project.Type).
			Comment("Projects owned by this user"),

		edge.From("projects", Project.Type).
			Ref("users").
			Comment("Projects this user is a member of"),

		edge.To("created_tasks", Task.Type).
			Comment("Tasks created by this user"),

		edge.From("assigned_tasks", Task.Type).
			Ref("assigned").
			Comment("Tasks this user is assigned to"),

		edge.To("comments", Comment.Type).
			Comment("Comments authored by this user"),

		edge.To("mentions", Mention.Type).
			Comment("Mentions referencing this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Unique index on username for directory lookups
		index.Fields("username").
			Unique(),

		index.Fields("created_at"),
	}
}
