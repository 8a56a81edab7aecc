// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
)

// UIRequest is the model entity for the UIRequest schema.
type UIRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// TemplateKind holds the value of the "template_kind" field.
	TemplateKind uirequest.TemplateKind `json:"template_kind,omitempty"`
	// Agent intent (fields, choices, prompt); no presentation encoding
	SemanticData map[string]interface{} `json:"semantic_data,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority uirequest.Priority `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status uirequest.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// The ui_request_created entry this row mirrors
	OriginatingEventID string `json:"originating_event_id,omitempty"`
	// OriginatingAgentID holds the value of the "originating_agent_id" field.
	OriginatingAgentID string `json:"originating_agent_id,omitempty"`
	// User payload, set when status becomes responded
	Response map[string]interface{} `json:"response,omitempty"`
	// CancelReason holds the value of the "cancel_reason" field.
	CancelReason string `json:"cancel_reason,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UIRequestQuery when eager-loading is set.
	Edges        UIRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UIRequestEdges holds the relations/edges for other nodes in the graph.
type UIRequestEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UIRequestEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UIRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uirequest.FieldSemanticData, uirequest.FieldResponse:
			values[i] = new([]byte)
		case uirequest.FieldID, uirequest.FieldTaskID, uirequest.FieldTemplateKind, uirequest.FieldPriority, uirequest.FieldStatus, uirequest.FieldOriginatingEventID, uirequest.FieldOriginatingAgentID, uirequest.FieldCancelReason:
			values[i] = new(sql.NullString)
		case uirequest.FieldCreatedAt, uirequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UIRequest fields.
func (_m *UIRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uirequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case uirequest.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case uirequest.FieldTemplateKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_kind", values[i])
			} else if value.Valid {
				_m.TemplateKind = uirequest.TemplateKind(value.String)
			}
		case uirequest.FieldSemanticData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SemanticData); err != nil {
					return fmt.Errorf("unmarshal field semantic_data: %w", err)
				}
			}
		case uirequest.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = uirequest.Priority(value.String)
			}
		case uirequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = uirequest.Status(value.String)
			}
		case uirequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case uirequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case uirequest.FieldOriginatingEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field originating_event_id", values[i])
			} else if value.Valid {
				_m.OriginatingEventID = value.String
			}
		case uirequest.FieldOriginatingAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field originating_agent_id", values[i])
			} else if value.Valid {
				_m.OriginatingAgentID = value.String
			}
		case uirequest.FieldResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Response); err != nil {
					return fmt.Errorf("unmarshal field response: %w", err)
				}
			}
		case uirequest.FieldCancelReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_reason", values[i])
			} else if value.Valid {
				_m.CancelReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UIRequest.
// This includes values selected through modifiers, order, etc.
func (_m *UIRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the UIRequest entity.
func (_m *UIRequest) QueryTask() *TaskQuery {
	return NewUIRequestClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this UIRequest.
// Note that you need to call UIRequest.Unwrap() before calling this method if this UIRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UIRequest) Update() *UIRequestUpdateOne {
	return NewUIRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UIRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UIRequest) Unwrap() *UIRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UIRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UIRequest) String() string {
	var builder strings.Builder
	builder.WriteString("UIRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("template_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemplateKind))
	builder.WriteString(", ")
	builder.WriteString("semantic_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.SemanticData))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("originating_event_id=")
	builder.WriteString(_m.OriginatingEventID)
	builder.WriteString(", ")
	builder.WriteString("originating_agent_id=")
	builder.WriteString(_m.OriginatingAgentID)
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(fmt.Sprintf("%v", _m.Response))
	builder.WriteString(", ")
	builder.WriteString("cancel_reason=")
	builder.WriteString(_m.CancelReason)
	builder.WriteByte(')')
	return builder.String()
}

// UIRequests is a parsable slice of UIRequest.
type UIRequests []*UIRequest
