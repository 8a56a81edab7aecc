// Code generated by ent, DO NOT EDIT.

package contextentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gianmatteo-arcana/engine-lever/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldTaskID, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldSequenceNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldActorID, v))
}

// ActorVersion applies equality check predicate on the "actor_version" field. It's identical to ActorVersionEQ.
func ActorVersion(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldActorVersion, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldOperation, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldReasoning, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContainsFold(FieldTaskID, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldSequenceNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// ActorKindEQ applies the EQ predicate on the "actor_kind" field.
func ActorKindEQ(v ActorKind) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldActorKind, v))
}

// ActorKindNEQ applies the NEQ predicate on the "actor_kind" field.
func ActorKindNEQ(v ActorKind) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldActorKind, v))
}

// ActorKindIn applies the In predicate on the "actor_kind" field.
func ActorKindIn(vs ...ActorKind) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldActorKind, vs...))
}

// ActorKindNotIn applies the NotIn predicate on the "actor_kind" field.
func ActorKindNotIn(vs ...ActorKind) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldActorKind, vs...))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContainsFold(FieldActorID, v))
}

// ActorVersionEQ applies the EQ predicate on the "actor_version" field.
func ActorVersionEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldActorVersion, v))
}

// ActorVersionNEQ applies the NEQ predicate on the "actor_version" field.
func ActorVersionNEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldActorVersion, v))
}

// ActorVersionIn applies the In predicate on the "actor_version" field.
func ActorVersionIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldActorVersion, vs...))
}

// ActorVersionNotIn applies the NotIn predicate on the "actor_version" field.
func ActorVersionNotIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldActorVersion, vs...))
}

// ActorVersionGT applies the GT predicate on the "actor_version" field.
func ActorVersionGT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldActorVersion, v))
}

// ActorVersionGTE applies the GTE predicate on the "actor_version" field.
func ActorVersionGTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldActorVersion, v))
}

// ActorVersionLT applies the LT predicate on the "actor_version" field.
func ActorVersionLT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldActorVersion, v))
}

// ActorVersionLTE applies the LTE predicate on the "actor_version" field.
func ActorVersionLTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldActorVersion, v))
}

// ActorVersionContains applies the Contains predicate on the "actor_version" field.
func ActorVersionContains(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContains(FieldActorVersion, v))
}

// ActorVersionHasPrefix applies the HasPrefix predicate on the "actor_version" field.
func ActorVersionHasPrefix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasPrefix(FieldActorVersion, v))
}

// ActorVersionHasSuffix applies the HasSuffix predicate on the "actor_version" field.
func ActorVersionHasSuffix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasSuffix(FieldActorVersion, v))
}

// ActorVersionIsNil applies the IsNil predicate on the "actor_version" field.
func ActorVersionIsNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIsNull(FieldActorVersion))
}

// ActorVersionNotNil applies the NotNil predicate on the "actor_version" field.
func ActorVersionNotNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotNull(FieldActorVersion))
}

// ActorVersionEqualFold applies the EqualFold predicate on the "actor_version" field.
func ActorVersionEqualFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEqualFold(FieldActorVersion, v))
}

// ActorVersionContainsFold applies the ContainsFold predicate on the "actor_version" field.
func ActorVersionContainsFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContainsFold(FieldActorVersion, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContainsFold(FieldOperation, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotNull(FieldData))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldContainsFold(FieldReasoning, v))
}

// TriggerIsNil applies the IsNil predicate on the "trigger" field.
func TriggerIsNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldIsNull(FieldTrigger))
}

// TriggerNotNil applies the NotNil predicate on the "trigger" field.
func TriggerNotNil() predicate.ContextEntry {
	return predicate.ContextEntry(sql.FieldNotNull(FieldTrigger))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.ContextEntry {
	return predicate.ContextEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.ContextEntry {
	return predicate.ContextEntry(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextEntry) predicate.ContextEntry {
	return predicate.ContextEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextEntry) predicate.ContextEntry {
	return predicate.ContextEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextEntry) predicate.ContextEntry {
	return predicate.ContextEntry(sql.NotPredicates(p))
}
