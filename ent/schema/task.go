// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Annotations of the Task.
func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{
		// Database-level guard mirroring the write-path validation.
		entsql.Annotation{
			Checks: map[string]string{
				"task_start_date_lte_end_date": "start_date <= end_date",
			},
		},
	}
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("Task name"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Time("start_date").
			Comment("When the task is scheduled to start"),

		field.Time("end_date").
			Comment("When the task is scheduled to end"),

		field.Enum("priority").
			Values("ASAP", "MEDIUM", "LOW").
			Default("LOW").
			Comment("Priority level of the task"),

		field.Enum("status").
			Values("TODO", "INPROGRESS", "DONE").
			Default("TODO").
			Comment("Current status of the task"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)).
			Comment("Owning project"),

		edge.From("creator", User.Type).
			Ref("created_tasks").
			Unique().
			Required().
			Comment("User who created the task"),

		// The join table is pinned so the due-date sweep can address it
		// with raw SQL.
		edge.To("assigned", User.Type).
			StorageKey(edge.Table("task_assigned"), edge.Columns("task_id", "user_id")).
			Comment("Users assigned to this task"),

		edge.To("comments", Comment.Type).
			Comment("Comments on this task"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Index on status for filtering
		index.Fields("status"),

		// Index on priority for filtering
		index.Fields("priority"),

		// The due-date sweep selects on end_date ranges
		index.Fields("end_date"),

		index.Fields("created_at"),
	}
}
