// ent/schema/project.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Project holds the schema definition for the Project entity.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("Project name"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the project"),

		field.Time("start_date").
			Optional().
			Nillable(),

		field.Time("end_date").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the project was created"),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		// The owner is a distinguished member; membership checks treat
		// owner and members alike.
		edge.From("owner", User.Type).
			Ref("owned_projects").
			Unique().
			Required().
			Comment("Owning user of this project"),

		edge.To("users", User.Type).
			Comment("Member users of this project"),

		edge.To("tasks", Task.Type).
			Comment("Tasks belonging to this project"),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("created_at"),
	}
}
