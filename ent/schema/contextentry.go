package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextEntry holds the schema definition for the ContextEntry entity: one
// immutable event in a task's history. Entries are append-only; nothing ever
// updates or deletes a row. The unique (task_id, sequence_number) index is
// what enforces the gap-free serial order under concurrent writers: an append
// that lost the race violates the index and is retried by the caller.
type ContextEntry struct {
	ent.Schema
}

// Fields of the ContextEntry.
func (ContextEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Strictly increasing by one per task, starting at 1"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock timestamp for display only; ordering is by sequence_number"),
		field.Enum("actor_kind").
			Values("user", "agent", "system").
			Immutable(),
		field.String("actor_id").
			Immutable(),
		field.String("actor_version").
			Optional().
			Immutable(),
		field.String("operation").
			Immutable().
			Comment("Event kind, e.g. task_created, subtask_completed, ui_request_created"),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Operation-dependent payload, deep-merged into projected state"),
		field.Text("reasoning").
			Optional().
			Immutable().
			Comment("Human-readable explanation recorded by the acting component"),
		field.JSON("trigger", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("What caused this entry: {kind, source, details}"),
	}
}

// Edges of the ContextEntry.
func (ContextEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("entries").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ContextEntry.
func (ContextEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "sequence_number").
			Unique(),
		index.Fields("created_at"),
	}
}
