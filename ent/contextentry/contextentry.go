// Code generated by ent, DO NOT EDIT.

package contextentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contextentry type in the database.
	Label = "context_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entry_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldActorKind holds the string denoting the actor_kind field in the database.
	FieldActorKind = "actor_kind"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldActorVersion holds the string denoting the actor_version field in the database.
	FieldActorVersion = "actor_version"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the contextentry in the database.
	Table = "context_entries"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "context_entries"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for contextentry fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldSequenceNumber,
	FieldCreatedAt,
	FieldActorKind,
	FieldActorID,
	FieldActorVersion,
	FieldOperation,
	FieldData,
	FieldReasoning,
	FieldTrigger,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ActorKind defines the type for the "actor_kind" enum field.
type ActorKind string

// ActorKind values.
const (
	ActorKindUser   ActorKind = "user"
	ActorKindAgent  ActorKind = "agent"
	ActorKindSystem ActorKind = "system"
)

func (ak ActorKind) String() string {
	return string(ak)
}

// ActorKindValidator is a validator for the "actor_kind" field enum values. It is called by the builders before save.
func ActorKindValidator(ak ActorKind) error {
	switch ak {
	case ActorKindUser, ActorKindAgent, ActorKindSystem:
		return nil
	default:
		return fmt.Errorf("contextentry: invalid enum value for actor_kind field: %q", ak)
	}
}

// OrderOption defines the ordering options for the ContextEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByActorKind orders the results by the actor_kind field.
func ByActorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorKind, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByActorVersion orders the results by the actor_version field.
func ByActorVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorVersion, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
