// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gianmatteo-arcana/engine-lever/ent/contextentry"
	"github.com/gianmatteo-arcana/engine-lever/ent/task"
)

// ContextEntry is the model entity for the ContextEntry schema.
type ContextEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Strictly increasing by one per task, starting at 1
	SequenceNumber int `json:"sequence_number,omitempty"`
	// Wall-clock timestamp for display only; ordering is by sequence_number
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ActorKind holds the value of the "actor_kind" field.
	ActorKind contextentry.ActorKind `json:"actor_kind,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID string `json:"actor_id,omitempty"`
	// ActorVersion holds the value of the "actor_version" field.
	ActorVersion string `json:"actor_version,omitempty"`
	// Event kind, e.g. task_created, subtask_completed, ui_request_created
	Operation string `json:"operation,omitempty"`
	// Operation-dependent payload, deep-merged into projected state
	Data map[string]interface{} `json:"data,omitempty"`
	// Human-readable explanation recorded by the acting component
	Reasoning string `json:"reasoning,omitempty"`
	// What caused this entry: {kind, source, details}
	Trigger map[string]interface{} `json:"trigger,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContextEntryQuery when eager-loading is set.
	Edges        ContextEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContextEntryEdges holds the relations/edges for other nodes in the graph.
type ContextEntryEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextEntryEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextentry.FieldData, contextentry.FieldTrigger:
			values[i] = new([]byte)
		case contextentry.FieldSequenceNumber:
			values[i] = new(sql.NullInt64)
		case contextentry.FieldID, contextentry.FieldTaskID, contextentry.FieldActorKind, contextentry.FieldActorID, contextentry.FieldActorVersion, contextentry.FieldOperation, contextentry.FieldReasoning:
			values[i] = new(sql.NullString)
		case contextentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextEntry fields.
func (_m *ContextEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contextentry.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case contextentry.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case contextentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contextentry.FieldActorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_kind", values[i])
			} else if value.Valid {
				_m.ActorKind = contextentry.ActorKind(value.String)
			}
		case contextentry.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case contextentry.FieldActorVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_version", values[i])
			} else if value.Valid {
				_m.ActorVersion = value.String
			}
		case contextentry.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = value.String
			}
		case contextentry.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case contextentry.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case contextentry.FieldTrigger:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Trigger); err != nil {
					return fmt.Errorf("unmarshal field trigger: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContextEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ContextEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the ContextEntry entity.
func (_m *ContextEntry) QueryTask() *TaskQuery {
	return NewContextEntryClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this ContextEntry.
// Note that you need to call ContextEntry.Unwrap() before calling this method if this ContextEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextEntry) Update() *ContextEntryUpdateOne {
	return NewContextEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextEntry) Unwrap() *ContextEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ContextEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("actor_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorKind))
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	builder.WriteString("actor_version=")
	builder.WriteString(_m.ActorVersion)
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(_m.Operation)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteByte(')')
	return builder.String()
}

// ContextEntries is a parsable slice of ContextEntry.
type ContextEntries []*ContextEntry
