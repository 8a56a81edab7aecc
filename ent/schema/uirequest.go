package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UIRequest holds the schema definition for the UIRequest entity: a structured
// prompt emitted by an agent that pauses its subtask until the user responds.
// The row mirrors the ui_request_created entry; only its status column
// transitions (pending → responded | cancelled), guarded by a row lock so a
// duplicate response is rejected as already_responded.
type UIRequest struct {
	ent.Schema
}

// Fields of the UIRequest.
func (UIRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("template_kind").
			Values("form", "confirmation", "selection", "upload", "progress", "error", "success", "waiting"),
		field.JSON("semantic_data", map[string]interface{}{}).
			Optional().
			Comment("Agent intent (fields, choices, prompt); no presentation encoding"),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium"),
		field.Enum("status").
			Values("pending", "responded", "cancelled").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("originating_event_id").
			Optional().
			Comment("The ui_request_created entry this row mirrors"),
		field.String("originating_agent_id").
			Optional(),
		field.JSON("response", map[string]interface{}{}).
			Optional().
			Comment("User payload, set when status becomes responded"),
		field.String("cancel_reason").
			Optional(),
	}
}

// Edges of the UIRequest.
func (UIRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("ui_requests").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UIRequest.
func (UIRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "status"),
	}
}
