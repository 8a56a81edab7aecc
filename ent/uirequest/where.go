// Code generated by ent, DO NOT EDIT.

package uirequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gianmatteo-arcana/engine-lever/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldTaskID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// OriginatingEventID applies equality check predicate on the "originating_event_id" field. It's identical to OriginatingEventIDEQ.
func OriginatingEventID(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldOriginatingEventID, v))
}

// OriginatingAgentID applies equality check predicate on the "originating_agent_id" field. It's identical to OriginatingAgentIDEQ.
func OriginatingAgentID(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldOriginatingAgentID, v))
}

// CancelReason applies equality check predicate on the "cancel_reason" field. It's identical to CancelReasonEQ.
func CancelReason(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldCancelReason, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContainsFold(FieldTaskID, v))
}

// TemplateKindEQ applies the EQ predicate on the "template_kind" field.
func TemplateKindEQ(v TemplateKind) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldTemplateKind, v))
}

// TemplateKindNEQ applies the NEQ predicate on the "template_kind" field.
func TemplateKindNEQ(v TemplateKind) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldTemplateKind, v))
}

// TemplateKindIn applies the In predicate on the "template_kind" field.
func TemplateKindIn(vs ...TemplateKind) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldTemplateKind, vs...))
}

// TemplateKindNotIn applies the NotIn predicate on the "template_kind" field.
func TemplateKindNotIn(vs ...TemplateKind) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldTemplateKind, vs...))
}

// SemanticDataIsNil applies the IsNil predicate on the "semantic_data" field.
func SemanticDataIsNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIsNull(FieldSemanticData))
}

// SemanticDataNotNil applies the NotNil predicate on the "semantic_data" field.
func SemanticDataNotNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotNull(FieldSemanticData))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// OriginatingEventIDEQ applies the EQ predicate on the "originating_event_id" field.
func OriginatingEventIDEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldOriginatingEventID, v))
}

// OriginatingEventIDNEQ applies the NEQ predicate on the "originating_event_id" field.
func OriginatingEventIDNEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldOriginatingEventID, v))
}

// OriginatingEventIDIn applies the In predicate on the "originating_event_id" field.
func OriginatingEventIDIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldOriginatingEventID, vs...))
}

// OriginatingEventIDNotIn applies the NotIn predicate on the "originating_event_id" field.
func OriginatingEventIDNotIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldOriginatingEventID, vs...))
}

// OriginatingEventIDGT applies the GT predicate on the "originating_event_id" field.
func OriginatingEventIDGT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGT(FieldOriginatingEventID, v))
}

// OriginatingEventIDGTE applies the GTE predicate on the "originating_event_id" field.
func OriginatingEventIDGTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGTE(FieldOriginatingEventID, v))
}

// OriginatingEventIDLT applies the LT predicate on the "originating_event_id" field.
func OriginatingEventIDLT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLT(FieldOriginatingEventID, v))
}

// OriginatingEventIDLTE applies the LTE predicate on the "originating_event_id" field.
func OriginatingEventIDLTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLTE(FieldOriginatingEventID, v))
}

// OriginatingEventIDContains applies the Contains predicate on the "originating_event_id" field.
func OriginatingEventIDContains(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContains(FieldOriginatingEventID, v))
}

// OriginatingEventIDHasPrefix applies the HasPrefix predicate on the "originating_event_id" field.
func OriginatingEventIDHasPrefix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasPrefix(FieldOriginatingEventID, v))
}

// OriginatingEventIDHasSuffix applies the HasSuffix predicate on the "originating_event_id" field.
func OriginatingEventIDHasSuffix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasSuffix(FieldOriginatingEventID, v))
}

// OriginatingEventIDIsNil applies the IsNil predicate on the "originating_event_id" field.
func OriginatingEventIDIsNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIsNull(FieldOriginatingEventID))
}

// OriginatingEventIDNotNil applies the NotNil predicate on the "originating_event_id" field.
func OriginatingEventIDNotNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotNull(FieldOriginatingEventID))
}

// OriginatingEventIDEqualFold applies the EqualFold predicate on the "originating_event_id" field.
func OriginatingEventIDEqualFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEqualFold(FieldOriginatingEventID, v))
}

// OriginatingEventIDContainsFold applies the ContainsFold predicate on the "originating_event_id" field.
func OriginatingEventIDContainsFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContainsFold(FieldOriginatingEventID, v))
}

// OriginatingAgentIDEQ applies the EQ predicate on the "originating_agent_id" field.
func OriginatingAgentIDEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDNEQ applies the NEQ predicate on the "originating_agent_id" field.
func OriginatingAgentIDNEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDIn applies the In predicate on the "originating_agent_id" field.
func OriginatingAgentIDIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldOriginatingAgentID, vs...))
}

// OriginatingAgentIDNotIn applies the NotIn predicate on the "originating_agent_id" field.
func OriginatingAgentIDNotIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldOriginatingAgentID, vs...))
}

// OriginatingAgentIDGT applies the GT predicate on the "originating_agent_id" field.
func OriginatingAgentIDGT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGT(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDGTE applies the GTE predicate on the "originating_agent_id" field.
func OriginatingAgentIDGTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGTE(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDLT applies the LT predicate on the "originating_agent_id" field.
func OriginatingAgentIDLT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLT(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDLTE applies the LTE predicate on the "originating_agent_id" field.
func OriginatingAgentIDLTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLTE(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDContains applies the Contains predicate on the "originating_agent_id" field.
func OriginatingAgentIDContains(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContains(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDHasPrefix applies the HasPrefix predicate on the "originating_agent_id" field.
func OriginatingAgentIDHasPrefix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasPrefix(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDHasSuffix applies the HasSuffix predicate on the "originating_agent_id" field.
func OriginatingAgentIDHasSuffix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasSuffix(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDIsNil applies the IsNil predicate on the "originating_agent_id" field.
func OriginatingAgentIDIsNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIsNull(FieldOriginatingAgentID))
}

// OriginatingAgentIDNotNil applies the NotNil predicate on the "originating_agent_id" field.
func OriginatingAgentIDNotNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotNull(FieldOriginatingAgentID))
}

// OriginatingAgentIDEqualFold applies the EqualFold predicate on the "originating_agent_id" field.
func OriginatingAgentIDEqualFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEqualFold(FieldOriginatingAgentID, v))
}

// OriginatingAgentIDContainsFold applies the ContainsFold predicate on the "originating_agent_id" field.
func OriginatingAgentIDContainsFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContainsFold(FieldOriginatingAgentID, v))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotNull(FieldResponse))
}

// CancelReasonEQ applies the EQ predicate on the "cancel_reason" field.
func CancelReasonEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEQ(FieldCancelReason, v))
}

// CancelReasonNEQ applies the NEQ predicate on the "cancel_reason" field.
func CancelReasonNEQ(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNEQ(FieldCancelReason, v))
}

// CancelReasonIn applies the In predicate on the "cancel_reason" field.
func CancelReasonIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIn(FieldCancelReason, vs...))
}

// CancelReasonNotIn applies the NotIn predicate on the "cancel_reason" field.
func CancelReasonNotIn(vs ...string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotIn(FieldCancelReason, vs...))
}

// CancelReasonGT applies the GT predicate on the "cancel_reason" field.
func CancelReasonGT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGT(FieldCancelReason, v))
}

// CancelReasonGTE applies the GTE predicate on the "cancel_reason" field.
func CancelReasonGTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldGTE(FieldCancelReason, v))
}

// CancelReasonLT applies the LT predicate on the "cancel_reason" field.
func CancelReasonLT(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLT(FieldCancelReason, v))
}

// CancelReasonLTE applies the LTE predicate on the "cancel_reason" field.
func CancelReasonLTE(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldLTE(FieldCancelReason, v))
}

// CancelReasonContains applies the Contains predicate on the "cancel_reason" field.
func CancelReasonContains(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContains(FieldCancelReason, v))
}

// CancelReasonHasPrefix applies the HasPrefix predicate on the "cancel_reason" field.
func CancelReasonHasPrefix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasPrefix(FieldCancelReason, v))
}

// CancelReasonHasSuffix applies the HasSuffix predicate on the "cancel_reason" field.
func CancelReasonHasSuffix(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldHasSuffix(FieldCancelReason, v))
}

// CancelReasonIsNil applies the IsNil predicate on the "cancel_reason" field.
func CancelReasonIsNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldIsNull(FieldCancelReason))
}

// CancelReasonNotNil applies the NotNil predicate on the "cancel_reason" field.
func CancelReasonNotNil() predicate.UIRequest {
	return predicate.UIRequest(sql.FieldNotNull(FieldCancelReason))
}

// CancelReasonEqualFold applies the EqualFold predicate on the "cancel_reason" field.
func CancelReasonEqualFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldEqualFold(FieldCancelReason, v))
}

// CancelReasonContainsFold applies the ContainsFold predicate on the "cancel_reason" field.
func CancelReasonContainsFold(v string) predicate.UIRequest {
	return predicate.UIRequest(sql.FieldContainsFold(FieldCancelReason, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.UIRequest {
	return predicate.UIRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.UIRequest {
	return predicate.UIRequest(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UIRequest) predicate.UIRequest {
	return predicate.UIRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UIRequest) predicate.UIRequest {
	return predicate.UIRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UIRequest) predicate.UIRequest {
	return predicate.UIRequest(sql.NotPredicates(p))
}
