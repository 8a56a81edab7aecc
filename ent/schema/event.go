package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: a transient record
// used for live delivery (NOTIFY + catch-up by id). Rows are garbage-collected
// after a grace period once the task reaches a terminal status; the durable
// history lives in context entries, not here.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the payload was broadcast on"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("events").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("channel", "id"),
	}
}
