package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A Task row is the index over the task's event history: identity columns are
// immutable, derived columns (status, current_phase, latest_sequence) are
// maintained in the same transaction as every context-entry append.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable().
			Comment("Isolation boundary; all reads and writes are scoped by tenant"),
		field.String("template_id").
			Immutable().
			Comment("Template applicable at creation time"),
		field.JSON("template_snapshot", map[string]interface{}{}).
			Immutable().
			Comment("Template definition captured at creation; later template edits never rewrite history semantics"),
		field.Enum("status").
			Values("created", "active", "waiting_for_input", "completed", "failed", "cancelled").
			Default("created"),
		field.String("current_phase").
			Optional().
			Comment("Denormalized from the latest phase_started entry"),
		field.Int("latest_sequence").
			Default(0).
			Comment("Sequence number of the newest context entry"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker first claimed the task"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Replica currently processing the task; nil means claimable"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat, used for orphan detection"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("entries", ContextEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("ui_requests", UIRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id", "created_at"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
