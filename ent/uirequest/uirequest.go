// Code generated by ent, DO NOT EDIT.

package uirequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the uirequest type in the database.
	Label = "ui_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldTemplateKind holds the string denoting the template_kind field in the database.
	FieldTemplateKind = "template_kind"
	// FieldSemanticData holds the string denoting the semantic_data field in the database.
	FieldSemanticData = "semantic_data"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOriginatingEventID holds the string denoting the originating_event_id field in the database.
	FieldOriginatingEventID = "originating_event_id"
	// FieldOriginatingAgentID holds the string denoting the originating_agent_id field in the database.
	FieldOriginatingAgentID = "originating_agent_id"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldCancelReason holds the string denoting the cancel_reason field in the database.
	FieldCancelReason = "cancel_reason"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the uirequest in the database.
	Table = "ui_requests"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "ui_requests"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for uirequest fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldTemplateKind,
	FieldSemanticData,
	FieldPriority,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOriginatingEventID,
	FieldOriginatingAgentID,
	FieldResponse,
	FieldCancelReason,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TemplateKind defines the type for the "template_kind" enum field.
type TemplateKind string

// TemplateKind values.
const (
	TemplateKindForm         TemplateKind = "form"
	TemplateKindConfirmation TemplateKind = "confirmation"
	TemplateKindSelection    TemplateKind = "selection"
	TemplateKindUpload       TemplateKind = "upload"
	TemplateKindProgress     TemplateKind = "progress"
	TemplateKindError        TemplateKind = "error"
	TemplateKindSuccess      TemplateKind = "success"
	TemplateKindWaiting      TemplateKind = "waiting"
)

func (tk TemplateKind) String() string {
	return string(tk)
}

// TemplateKindValidator is a validator for the "template_kind" field enum values. It is called by the builders before save.
func TemplateKindValidator(tk TemplateKind) error {
	switch tk {
	case TemplateKindForm, TemplateKindConfirmation, TemplateKindSelection, TemplateKindUpload, TemplateKindProgress, TemplateKindError, TemplateKindSuccess, TemplateKindWaiting:
		return nil
	default:
		return fmt.Errorf("uirequest: invalid enum value for template_kind field: %q", tk)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("uirequest: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusResponded Status = "responded"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusResponded, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("uirequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the UIRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByTemplateKind orders the results by the template_kind field.
func ByTemplateKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateKind, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOriginatingEventID orders the results by the originating_event_id field.
func ByOriginatingEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginatingEventID, opts...).ToFunc()
}

// ByOriginatingAgentID orders the results by the originating_agent_id field.
func ByOriginatingAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginatingAgentID, opts...).ToFunc()
}

// ByCancelReason orders the results by the cancel_reason field.
func ByCancelReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelReason, opts...).ToFunc()
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
