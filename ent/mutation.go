// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gianmatteo-arcana/engine-lever/ent/contextentry"
	"github.com/gianmatteo-arcana/engine-lever/ent/event"
	"github.com/gianmatteo-arcana/engine-lever/ent/predicate"
	"github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContextEntry = "ContextEntry"
	TypeEvent        = "Event"
	TypeTask         = "Task"
	TypeUIRequest    = "UIRequest"
)

// ContextEntryMutation represents an operation that mutates the ContextEntry nodes in the graph.
type ContextEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	sequence_number    *int
	addsequence_number *int
	created_at         *time.Time
	actor_kind         *contextentry.ActorKind
	actor_id           *string
	actor_version      *string
	operation          *string
	data               *map[string]interface{}
	reasoning          *string
	trigger            *map[string]interface{}
	clearedFields      map[string]struct{}
	task               *string
	clearedtask        bool
	done               bool
	oldValue           func(context.Context) (*ContextEntry, error)
	predicates         []predicate.ContextEntry
}

var _ ent.Mutation = (*ContextEntryMutation)(nil)

// contextentryOption allows management of the mutation configuration using functional options.
type contextentryOption func(*ContextEntryMutation)

// newContextEntryMutation creates new mutation for the ContextEntry entity.
func newContextEntryMutation(c config, op Op, opts ...contextentryOption) *ContextEntryMutation {
	m := &ContextEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeContextEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextEntryID sets the ID field of the mutation.
func withContextEntryID(id string) contextentryOption {
	return func(m *ContextEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextEntry
		)
		m.oldValue = func(ctx context.Context) (*ContextEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextEntry sets the old ContextEntry of the mutation.
func withContextEntry(node *ContextEntry) contextentryOption {
	return func(m *ContextEntryMutation) {
		m.oldValue = func(context.Context) (*ContextEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextEntry entities.
func (m *ContextEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ContextEntryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ContextEntryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ContextEntryMutation) ResetTaskID() {
	m.task = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *ContextEntryMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *ContextEntryMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *ContextEntryMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *ContextEntryMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *ContextEntryMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActorKind sets the "actor_kind" field.
func (m *ContextEntryMutation) SetActorKind(ck contextentry.ActorKind) {
	m.actor_kind = &ck
}

// ActorKind returns the value of the "actor_kind" field in the mutation.
func (m *ContextEntryMutation) ActorKind() (r contextentry.ActorKind, exists bool) {
	v := m.actor_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldActorKind returns the old "actor_kind" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldActorKind(ctx context.Context) (v contextentry.ActorKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorKind: %w", err)
	}
	return oldValue.ActorKind, nil
}

// ResetActorKind resets all changes to the "actor_kind" field.
func (m *ContextEntryMutation) ResetActorKind() {
	m.actor_kind = nil
}

// SetActorID sets the "actor_id" field.
func (m *ContextEntryMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *ContextEntryMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *ContextEntryMutation) ResetActorID() {
	m.actor_id = nil
}

// SetActorVersion sets the "actor_version" field.
func (m *ContextEntryMutation) SetActorVersion(s string) {
	m.actor_version = &s
}

// ActorVersion returns the value of the "actor_version" field in the mutation.
func (m *ContextEntryMutation) ActorVersion() (r string, exists bool) {
	v := m.actor_version
	if v == nil {
		return
	}
	return *v, true
}

// OldActorVersion returns the old "actor_version" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldActorVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorVersion: %w", err)
	}
	return oldValue.ActorVersion, nil
}

// ClearActorVersion clears the value of the "actor_version" field.
func (m *ContextEntryMutation) ClearActorVersion() {
	m.actor_version = nil
	m.clearedFields[contextentry.FieldActorVersion] = struct{}{}
}

// ActorVersionCleared returns if the "actor_version" field was cleared in this mutation.
func (m *ContextEntryMutation) ActorVersionCleared() bool {
	_, ok := m.clearedFields[contextentry.FieldActorVersion]
	return ok
}

// ResetActorVersion resets all changes to the "actor_version" field.
func (m *ContextEntryMutation) ResetActorVersion() {
	m.actor_version = nil
	delete(m.clearedFields, contextentry.FieldActorVersion)
}

// SetOperation sets the "operation" field.
func (m *ContextEntryMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *ContextEntryMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *ContextEntryMutation) ResetOperation() {
	m.operation = nil
}

// SetData sets the "data" field.
func (m *ContextEntryMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ContextEntryMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *ContextEntryMutation) ClearData() {
	m.data = nil
	m.clearedFields[contextentry.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *ContextEntryMutation) DataCleared() bool {
	_, ok := m.clearedFields[contextentry.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *ContextEntryMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, contextentry.FieldData)
}

// SetReasoning sets the "reasoning" field.
func (m *ContextEntryMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *ContextEntryMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *ContextEntryMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[contextentry.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *ContextEntryMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[contextentry.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *ContextEntryMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, contextentry.FieldReasoning)
}

// SetTrigger sets the "trigger" field.
func (m *ContextEntryMutation) SetTrigger(value map[string]interface{}) {
	m.trigger = &value
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *ContextEntryMutation) Trigger() (r map[string]interface{}, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldTrigger(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ClearTrigger clears the value of the "trigger" field.
func (m *ContextEntryMutation) ClearTrigger() {
	m.trigger = nil
	m.clearedFields[contextentry.FieldTrigger] = struct{}{}
}

// TriggerCleared returns if the "trigger" field was cleared in this mutation.
func (m *ContextEntryMutation) TriggerCleared() bool {
	_, ok := m.clearedFields[contextentry.FieldTrigger]
	return ok
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *ContextEntryMutation) ResetTrigger() {
	m.trigger = nil
	delete(m.clearedFields, contextentry.FieldTrigger)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ContextEntryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[contextentry.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ContextEntryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ContextEntryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ContextEntryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ContextEntryMutation builder.
func (m *ContextEntryMutation) Where(ps ...predicate.ContextEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextEntry).
func (m *ContextEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, contextentry.FieldTaskID)
	}
	if m.sequence_number != nil {
		fields = append(fields, contextentry.FieldSequenceNumber)
	}
	if m.created_at != nil {
		fields = append(fields, contextentry.FieldCreatedAt)
	}
	if m.actor_kind != nil {
		fields = append(fields, contextentry.FieldActorKind)
	}
	if m.actor_id != nil {
		fields = append(fields, contextentry.FieldActorID)
	}
	if m.actor_version != nil {
		fields = append(fields, contextentry.FieldActorVersion)
	}
	if m.operation != nil {
		fields = append(fields, contextentry.FieldOperation)
	}
	if m.data != nil {
		fields = append(fields, contextentry.FieldData)
	}
	if m.reasoning != nil {
		fields = append(fields, contextentry.FieldReasoning)
	}
	if m.trigger != nil {
		fields = append(fields, contextentry.FieldTrigger)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextentry.FieldTaskID:
		return m.TaskID()
	case contextentry.FieldSequenceNumber:
		return m.SequenceNumber()
	case contextentry.FieldCreatedAt:
		return m.CreatedAt()
	case contextentry.FieldActorKind:
		return m.ActorKind()
	case contextentry.FieldActorID:
		return m.ActorID()
	case contextentry.FieldActorVersion:
		return m.ActorVersion()
	case contextentry.FieldOperation:
		return m.Operation()
	case contextentry.FieldData:
		return m.Data()
	case contextentry.FieldReasoning:
		return m.Reasoning()
	case contextentry.FieldTrigger:
		return m.Trigger()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case contextentry.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case contextentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contextentry.FieldActorKind:
		return m.OldActorKind(ctx)
	case contextentry.FieldActorID:
		return m.OldActorID(ctx)
	case contextentry.FieldActorVersion:
		return m.OldActorVersion(ctx)
	case contextentry.FieldOperation:
		return m.OldOperation(ctx)
	case contextentry.FieldData:
		return m.OldData(ctx)
	case contextentry.FieldReasoning:
		return m.OldReasoning(ctx)
	case contextentry.FieldTrigger:
		return m.OldTrigger(ctx)
	}
	return nil, fmt.Errorf("unknown ContextEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case contextentry.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case contextentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contextentry.FieldActorKind:
		v, ok := value.(contextentry.ActorKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorKind(v)
		return nil
	case contextentry.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case contextentry.FieldActorVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorVersion(v)
		return nil
	case contextentry.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case contextentry.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case contextentry.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case contextentry.FieldTrigger:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	}
	return fmt.Errorf("unknown ContextEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, contextentry.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contextentry.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contextentry.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ContextEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextentry.FieldActorVersion) {
		fields = append(fields, contextentry.FieldActorVersion)
	}
	if m.FieldCleared(contextentry.FieldData) {
		fields = append(fields, contextentry.FieldData)
	}
	if m.FieldCleared(contextentry.FieldReasoning) {
		fields = append(fields, contextentry.FieldReasoning)
	}
	if m.FieldCleared(contextentry.FieldTrigger) {
		fields = append(fields, contextentry.FieldTrigger)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextEntryMutation) ClearField(name string) error {
	switch name {
	case contextentry.FieldActorVersion:
		m.ClearActorVersion()
		return nil
	case contextentry.FieldData:
		m.ClearData()
		return nil
	case contextentry.FieldReasoning:
		m.ClearReasoning()
		return nil
	case contextentry.FieldTrigger:
		m.ClearTrigger()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextEntryMutation) ResetField(name string) error {
	switch name {
	case contextentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case contextentry.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case contextentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contextentry.FieldActorKind:
		m.ResetActorKind()
		return nil
	case contextentry.FieldActorID:
		m.ResetActorID()
		return nil
	case contextentry.FieldActorVersion:
		m.ResetActorVersion()
		return nil
	case contextentry.FieldOperation:
		m.ResetOperation()
		return nil
	case contextentry.FieldData:
		m.ResetData()
		return nil
	case contextentry.FieldReasoning:
		m.ResetReasoning()
		return nil
	case contextentry.FieldTrigger:
		m.ResetTrigger()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, contextentry.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contextentry.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, contextentry.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case contextentry.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextEntryMutation) ClearEdge(name string) error {
	switch name {
	case contextentry.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextEntryMutation) ResetEdge(name string) error {
	switch name {
	case contextentry.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EventMutation) ResetTaskID() {
	m.task = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *EventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[event.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *EventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *EventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *EventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, event.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTaskID:
		return m.TaskID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTaskID:
		return m.OldTaskID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ResetTaskID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	template_id         *string
	template_snapshot   *map[string]interface{}
	status              *task.Status
	current_phase       *string
	latest_sequence     *int
	addlatest_sequence  *int
	created_at          *time.Time
	updated_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	error_message       *string
	pod_id              *string
	last_interaction_at *time.Time
	clearedFields       map[string]struct{}
	entries             map[string]struct{}
	removedentries      map[string]struct{}
	clearedentries      bool
	ui_requests         map[string]struct{}
	removedui_requests  map[string]struct{}
	clearedui_requests  bool
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TaskMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TaskMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TaskMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *TaskMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *TaskMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *TaskMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetTemplateSnapshot sets the "template_snapshot" field.
func (m *TaskMutation) SetTemplateSnapshot(value map[string]interface{}) {
	m.template_snapshot = &value
}

// TemplateSnapshot returns the value of the "template_snapshot" field in the mutation.
func (m *TaskMutation) TemplateSnapshot() (r map[string]interface{}, exists bool) {
	v := m.template_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateSnapshot returns the old "template_snapshot" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTemplateSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateSnapshot: %w", err)
	}
	return oldValue.TemplateSnapshot, nil
}

// ResetTemplateSnapshot resets all changes to the "template_snapshot" field.
func (m *TaskMutation) ResetTemplateSnapshot() {
	m.template_snapshot = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *TaskMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *TaskMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCurrentPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *TaskMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.clearedFields[task.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *TaskMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[task.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *TaskMutation) ResetCurrentPhase() {
	m.current_phase = nil
	delete(m.clearedFields, task.FieldCurrentPhase)
}

// SetLatestSequence sets the "latest_sequence" field.
func (m *TaskMutation) SetLatestSequence(i int) {
	m.latest_sequence = &i
	m.addlatest_sequence = nil
}

// LatestSequence returns the value of the "latest_sequence" field in the mutation.
func (m *TaskMutation) LatestSequence() (r int, exists bool) {
	v := m.latest_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestSequence returns the old "latest_sequence" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLatestSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestSequence: %w", err)
	}
	return oldValue.LatestSequence, nil
}

// AddLatestSequence adds i to the "latest_sequence" field.
func (m *TaskMutation) AddLatestSequence(i int) {
	if m.addlatest_sequence != nil {
		*m.addlatest_sequence += i
	} else {
		m.addlatest_sequence = &i
	}
}

// AddedLatestSequence returns the value that was added to the "latest_sequence" field in this mutation.
func (m *TaskMutation) AddedLatestSequence() (r int, exists bool) {
	v := m.addlatest_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatestSequence resets all changes to the "latest_sequence" field.
func (m *TaskMutation) ResetLatestSequence() {
	m.latest_sequence = nil
	m.addlatest_sequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *TaskMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *TaskMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *TaskMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[task.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *TaskMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *TaskMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, task.FieldLastInteractionAt)
}

// AddEntryIDs adds the "entries" edge to the ContextEntry entity by ids.
func (m *TaskMutation) AddEntryIDs(ids ...string) {
	if m.entries == nil {
		m.entries = make(map[string]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the ContextEntry entity.
func (m *TaskMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the ContextEntry entity was cleared.
func (m *TaskMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the ContextEntry entity by IDs.
func (m *TaskMutation) RemoveEntryIDs(ids ...string) {
	if m.removedentries == nil {
		m.removedentries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the ContextEntry entity.
func (m *TaskMutation) RemovedEntriesIDs() (ids []string) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *TaskMutation) EntriesIDs() (ids []string) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *TaskMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// AddUIRequestIDs adds the "ui_requests" edge to the UIRequest entity by ids.
func (m *TaskMutation) AddUIRequestIDs(ids ...string) {
	if m.ui_requests == nil {
		m.ui_requests = make(map[string]struct{})
	}
	for i := range ids {
		m.ui_requests[ids[i]] = struct{}{}
	}
}

// ClearUIRequests clears the "ui_requests" edge to the UIRequest entity.
func (m *TaskMutation) ClearUIRequests() {
	m.clearedui_requests = true
}

// UIRequestsCleared reports if the "ui_requests" edge to the UIRequest entity was cleared.
func (m *TaskMutation) UIRequestsCleared() bool {
	return m.clearedui_requests
}

// RemoveUIRequestIDs removes the "ui_requests" edge to the UIRequest entity by IDs.
func (m *TaskMutation) RemoveUIRequestIDs(ids ...string) {
	if m.removedui_requests == nil {
		m.removedui_requests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.ui_requests, ids[i])
		m.removedui_requests[ids[i]] = struct{}{}
	}
}

// RemovedUIRequests returns the removed IDs of the "ui_requests" edge to the UIRequest entity.
func (m *TaskMutation) RemovedUIRequestsIDs() (ids []string) {
	for id := range m.removedui_requests {
		ids = append(ids, id)
	}
	return
}

// UIRequestsIDs returns the "ui_requests" edge IDs in the mutation.
func (m *TaskMutation) UIRequestsIDs() (ids []string) {
	for id := range m.ui_requests {
		ids = append(ids, id)
	}
	return
}

// ResetUIRequests resets all changes to the "ui_requests" edge.
func (m *TaskMutation) ResetUIRequests() {
	m.ui_requests = nil
	m.clearedui_requests = false
	m.removedui_requests = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant_id != nil {
		fields = append(fields, task.FieldTenantID)
	}
	if m.template_id != nil {
		fields = append(fields, task.FieldTemplateID)
	}
	if m.template_snapshot != nil {
		fields = append(fields, task.FieldTemplateSnapshot)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.current_phase != nil {
		fields = append(fields, task.FieldCurrentPhase)
	}
	if m.latest_sequence != nil {
		fields = append(fields, task.FieldLatestSequence)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, task.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTenantID:
		return m.TenantID()
	case task.FieldTemplateID:
		return m.TemplateID()
	case task.FieldTemplateSnapshot:
		return m.TemplateSnapshot()
	case task.FieldStatus:
		return m.Status()
	case task.FieldCurrentPhase:
		return m.CurrentPhase()
	case task.FieldLatestSequence:
		return m.LatestSequence()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTenantID:
		return m.OldTenantID(ctx)
	case task.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case task.FieldTemplateSnapshot:
		return m.OldTemplateSnapshot(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case task.FieldLatestSequence:
		return m.OldLatestSequence(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case task.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case task.FieldTemplateSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateSnapshot(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case task.FieldLatestSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestSequence(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addlatest_sequence != nil {
		fields = append(fields, task.FieldLatestSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldLatestSequence:
		return m.AddedLatestSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldLatestSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatestSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldCurrentPhase) {
		fields = append(fields, task.FieldCurrentPhase)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLastInteractionAt) {
		fields = append(fields, task.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTenantID:
		m.ResetTenantID()
		return nil
	case task.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case task.FieldTemplateSnapshot:
		m.ResetTemplateSnapshot()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case task.FieldLatestSequence:
		m.ResetLatestSequence()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.entries != nil {
		edges = append(edges, task.EdgeEntries)
	}
	if m.ui_requests != nil {
		edges = append(edges, task.EdgeUIRequests)
	}
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeUIRequests:
		ids := make([]ent.Value, 0, len(m.ui_requests))
		for id := range m.ui_requests {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedentries != nil {
		edges = append(edges, task.EdgeEntries)
	}
	if m.removedui_requests != nil {
		edges = append(edges, task.EdgeUIRequests)
	}
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeUIRequests:
		ids := make([]ent.Value, 0, len(m.removedui_requests))
		for id := range m.removedui_requests {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedentries {
		edges = append(edges, task.EdgeEntries)
	}
	if m.clearedui_requests {
		edges = append(edges, task.EdgeUIRequests)
	}
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEntries:
		return m.clearedentries
	case task.EdgeUIRequests:
		return m.clearedui_requests
	case task.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEntries:
		m.ResetEntries()
		return nil
	case task.EdgeUIRequests:
		m.ResetUIRequests()
		return nil
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// UIRequestMutation represents an operation that mutates the UIRequest nodes in the graph.
type UIRequestMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	template_kind        *uirequest.TemplateKind
	semantic_data        *map[string]interface{}
	priority             *uirequest.Priority
	status               *uirequest.Status
	created_at           *time.Time
	updated_at           *time.Time
	originating_event_id *string
	originating_agent_id *string
	response             *map[string]interface{}
	cancel_reason        *string
	clearedFields        map[string]struct{}
	task                 *string
	clearedtask          bool
	done                 bool
	oldValue             func(context.Context) (*UIRequest, error)
	predicates           []predicate.UIRequest
}

var _ ent.Mutation = (*UIRequestMutation)(nil)

// uirequestOption allows management of the mutation configuration using functional options.
type uirequestOption func(*UIRequestMutation)

// newUIRequestMutation creates new mutation for the UIRequest entity.
func newUIRequestMutation(c config, op Op, opts ...uirequestOption) *UIRequestMutation {
	m := &UIRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeUIRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUIRequestID sets the ID field of the mutation.
func withUIRequestID(id string) uirequestOption {
	return func(m *UIRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *UIRequest
		)
		m.oldValue = func(ctx context.Context) (*UIRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UIRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUIRequest sets the old UIRequest of the mutation.
func withUIRequest(node *UIRequest) uirequestOption {
	return func(m *UIRequestMutation) {
		m.oldValue = func(context.Context) (*UIRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UIRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UIRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UIRequest entities.
func (m *UIRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UIRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UIRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UIRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *UIRequestMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *UIRequestMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *UIRequestMutation) ResetTaskID() {
	m.task = nil
}

// SetTemplateKind sets the "template_kind" field.
func (m *UIRequestMutation) SetTemplateKind(uk uirequest.TemplateKind) {
	m.template_kind = &uk
}

// TemplateKind returns the value of the "template_kind" field in the mutation.
func (m *UIRequestMutation) TemplateKind() (r uirequest.TemplateKind, exists bool) {
	v := m.template_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateKind returns the old "template_kind" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldTemplateKind(ctx context.Context) (v uirequest.TemplateKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateKind: %w", err)
	}
	return oldValue.TemplateKind, nil
}

// ResetTemplateKind resets all changes to the "template_kind" field.
func (m *UIRequestMutation) ResetTemplateKind() {
	m.template_kind = nil
}

// SetSemanticData sets the "semantic_data" field.
func (m *UIRequestMutation) SetSemanticData(value map[string]interface{}) {
	m.semantic_data = &value
}

// SemanticData returns the value of the "semantic_data" field in the mutation.
func (m *UIRequestMutation) SemanticData() (r map[string]interface{}, exists bool) {
	v := m.semantic_data
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticData returns the old "semantic_data" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldSemanticData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticData: %w", err)
	}
	return oldValue.SemanticData, nil
}

// ClearSemanticData clears the value of the "semantic_data" field.
func (m *UIRequestMutation) ClearSemanticData() {
	m.semantic_data = nil
	m.clearedFields[uirequest.FieldSemanticData] = struct{}{}
}

// SemanticDataCleared returns if the "semantic_data" field was cleared in this mutation.
func (m *UIRequestMutation) SemanticDataCleared() bool {
	_, ok := m.clearedFields[uirequest.FieldSemanticData]
	return ok
}

// ResetSemanticData resets all changes to the "semantic_data" field.
func (m *UIRequestMutation) ResetSemanticData() {
	m.semantic_data = nil
	delete(m.clearedFields, uirequest.FieldSemanticData)
}

// SetPriority sets the "priority" field.
func (m *UIRequestMutation) SetPriority(u uirequest.Priority) {
	m.priority = &u
}

// Priority returns the value of the "priority" field in the mutation.
func (m *UIRequestMutation) Priority() (r uirequest.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldPriority(ctx context.Context) (v uirequest.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *UIRequestMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *UIRequestMutation) SetStatus(u uirequest.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UIRequestMutation) Status() (r uirequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldStatus(ctx context.Context) (v uirequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UIRequestMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UIRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UIRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UIRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UIRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UIRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UIRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOriginatingEventID sets the "originating_event_id" field.
func (m *UIRequestMutation) SetOriginatingEventID(s string) {
	m.originating_event_id = &s
}

// OriginatingEventID returns the value of the "originating_event_id" field in the mutation.
func (m *UIRequestMutation) OriginatingEventID() (r string, exists bool) {
	v := m.originating_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginatingEventID returns the old "originating_event_id" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldOriginatingEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginatingEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginatingEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginatingEventID: %w", err)
	}
	return oldValue.OriginatingEventID, nil
}

// ClearOriginatingEventID clears the value of the "originating_event_id" field.
func (m *UIRequestMutation) ClearOriginatingEventID() {
	m.originating_event_id = nil
	m.clearedFields[uirequest.FieldOriginatingEventID] = struct{}{}
}

// OriginatingEventIDCleared returns if the "originating_event_id" field was cleared in this mutation.
func (m *UIRequestMutation) OriginatingEventIDCleared() bool {
	_, ok := m.clearedFields[uirequest.FieldOriginatingEventID]
	return ok
}

// ResetOriginatingEventID resets all changes to the "originating_event_id" field.
func (m *UIRequestMutation) ResetOriginatingEventID() {
	m.originating_event_id = nil
	delete(m.clearedFields, uirequest.FieldOriginatingEventID)
}

// SetOriginatingAgentID sets the "originating_agent_id" field.
func (m *UIRequestMutation) SetOriginatingAgentID(s string) {
	m.originating_agent_id = &s
}

// OriginatingAgentID returns the value of the "originating_agent_id" field in the mutation.
func (m *UIRequestMutation) OriginatingAgentID() (r string, exists bool) {
	v := m.originating_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginatingAgentID returns the old "originating_agent_id" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldOriginatingAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginatingAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginatingAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginatingAgentID: %w", err)
	}
	return oldValue.OriginatingAgentID, nil
}

// ClearOriginatingAgentID clears the value of the "originating_agent_id" field.
func (m *UIRequestMutation) ClearOriginatingAgentID() {
	m.originating_agent_id = nil
	m.clearedFields[uirequest.FieldOriginatingAgentID] = struct{}{}
}

// OriginatingAgentIDCleared returns if the "originating_agent_id" field was cleared in this mutation.
func (m *UIRequestMutation) OriginatingAgentIDCleared() bool {
	_, ok := m.clearedFields[uirequest.FieldOriginatingAgentID]
	return ok
}

// ResetOriginatingAgentID resets all changes to the "originating_agent_id" field.
func (m *UIRequestMutation) ResetOriginatingAgentID() {
	m.originating_agent_id = nil
	delete(m.clearedFields, uirequest.FieldOriginatingAgentID)
}

// SetResponse sets the "response" field.
func (m *UIRequestMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *UIRequestMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *UIRequestMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[uirequest.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *UIRequestMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[uirequest.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *UIRequestMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, uirequest.FieldResponse)
}

// SetCancelReason sets the "cancel_reason" field.
func (m *UIRequestMutation) SetCancelReason(s string) {
	m.cancel_reason = &s
}

// CancelReason returns the value of the "cancel_reason" field in the mutation.
func (m *UIRequestMutation) CancelReason() (r string, exists bool) {
	v := m.cancel_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelReason returns the old "cancel_reason" field's value of the UIRequest entity.
// If the UIRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UIRequestMutation) OldCancelReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelReason: %w", err)
	}
	return oldValue.CancelReason, nil
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (m *UIRequestMutation) ClearCancelReason() {
	m.cancel_reason = nil
	m.clearedFields[uirequest.FieldCancelReason] = struct{}{}
}

// CancelReasonCleared returns if the "cancel_reason" field was cleared in this mutation.
func (m *UIRequestMutation) CancelReasonCleared() bool {
	_, ok := m.clearedFields[uirequest.FieldCancelReason]
	return ok
}

// ResetCancelReason resets all changes to the "cancel_reason" field.
func (m *UIRequestMutation) ResetCancelReason() {
	m.cancel_reason = nil
	delete(m.clearedFields, uirequest.FieldCancelReason)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *UIRequestMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[uirequest.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *UIRequestMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *UIRequestMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *UIRequestMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the UIRequestMutation builder.
func (m *UIRequestMutation) Where(ps ...predicate.UIRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UIRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UIRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UIRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UIRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UIRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UIRequest).
func (m *UIRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UIRequestMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task != nil {
		fields = append(fields, uirequest.FieldTaskID)
	}
	if m.template_kind != nil {
		fields = append(fields, uirequest.FieldTemplateKind)
	}
	if m.semantic_data != nil {
		fields = append(fields, uirequest.FieldSemanticData)
	}
	if m.priority != nil {
		fields = append(fields, uirequest.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, uirequest.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, uirequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, uirequest.FieldUpdatedAt)
	}
	if m.originating_event_id != nil {
		fields = append(fields, uirequest.FieldOriginatingEventID)
	}
	if m.originating_agent_id != nil {
		fields = append(fields, uirequest.FieldOriginatingAgentID)
	}
	if m.response != nil {
		fields = append(fields, uirequest.FieldResponse)
	}
	if m.cancel_reason != nil {
		fields = append(fields, uirequest.FieldCancelReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UIRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uirequest.FieldTaskID:
		return m.TaskID()
	case uirequest.FieldTemplateKind:
		return m.TemplateKind()
	case uirequest.FieldSemanticData:
		return m.SemanticData()
	case uirequest.FieldPriority:
		return m.Priority()
	case uirequest.FieldStatus:
		return m.Status()
	case uirequest.FieldCreatedAt:
		return m.CreatedAt()
	case uirequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case uirequest.FieldOriginatingEventID:
		return m.OriginatingEventID()
	case uirequest.FieldOriginatingAgentID:
		return m.OriginatingAgentID()
	case uirequest.FieldResponse:
		return m.Response()
	case uirequest.FieldCancelReason:
		return m.CancelReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UIRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uirequest.FieldTaskID:
		return m.OldTaskID(ctx)
	case uirequest.FieldTemplateKind:
		return m.OldTemplateKind(ctx)
	case uirequest.FieldSemanticData:
		return m.OldSemanticData(ctx)
	case uirequest.FieldPriority:
		return m.OldPriority(ctx)
	case uirequest.FieldStatus:
		return m.OldStatus(ctx)
	case uirequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case uirequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case uirequest.FieldOriginatingEventID:
		return m.OldOriginatingEventID(ctx)
	case uirequest.FieldOriginatingAgentID:
		return m.OldOriginatingAgentID(ctx)
	case uirequest.FieldResponse:
		return m.OldResponse(ctx)
	case uirequest.FieldCancelReason:
		return m.OldCancelReason(ctx)
	}
	return nil, fmt.Errorf("unknown UIRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UIRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uirequest.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case uirequest.FieldTemplateKind:
		v, ok := value.(uirequest.TemplateKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateKind(v)
		return nil
	case uirequest.FieldSemanticData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticData(v)
		return nil
	case uirequest.FieldPriority:
		v, ok := value.(uirequest.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case uirequest.FieldStatus:
		v, ok := value.(uirequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uirequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case uirequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case uirequest.FieldOriginatingEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginatingEventID(v)
		return nil
	case uirequest.FieldOriginatingAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginatingAgentID(v)
		return nil
	case uirequest.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case uirequest.FieldCancelReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelReason(v)
		return nil
	}
	return fmt.Errorf("unknown UIRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UIRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UIRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UIRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UIRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UIRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uirequest.FieldSemanticData) {
		fields = append(fields, uirequest.FieldSemanticData)
	}
	if m.FieldCleared(uirequest.FieldOriginatingEventID) {
		fields = append(fields, uirequest.FieldOriginatingEventID)
	}
	if m.FieldCleared(uirequest.FieldOriginatingAgentID) {
		fields = append(fields, uirequest.FieldOriginatingAgentID)
	}
	if m.FieldCleared(uirequest.FieldResponse) {
		fields = append(fields, uirequest.FieldResponse)
	}
	if m.FieldCleared(uirequest.FieldCancelReason) {
		fields = append(fields, uirequest.FieldCancelReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UIRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UIRequestMutation) ClearField(name string) error {
	switch name {
	case uirequest.FieldSemanticData:
		m.ClearSemanticData()
		return nil
	case uirequest.FieldOriginatingEventID:
		m.ClearOriginatingEventID()
		return nil
	case uirequest.FieldOriginatingAgentID:
		m.ClearOriginatingAgentID()
		return nil
	case uirequest.FieldResponse:
		m.ClearResponse()
		return nil
	case uirequest.FieldCancelReason:
		m.ClearCancelReason()
		return nil
	}
	return fmt.Errorf("unknown UIRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UIRequestMutation) ResetField(name string) error {
	switch name {
	case uirequest.FieldTaskID:
		m.ResetTaskID()
		return nil
	case uirequest.FieldTemplateKind:
		m.ResetTemplateKind()
		return nil
	case uirequest.FieldSemanticData:
		m.ResetSemanticData()
		return nil
	case uirequest.FieldPriority:
		m.ResetPriority()
		return nil
	case uirequest.FieldStatus:
		m.ResetStatus()
		return nil
	case uirequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case uirequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case uirequest.FieldOriginatingEventID:
		m.ResetOriginatingEventID()
		return nil
	case uirequest.FieldOriginatingAgentID:
		m.ResetOriginatingAgentID()
		return nil
	case uirequest.FieldResponse:
		m.ResetResponse()
		return nil
	case uirequest.FieldCancelReason:
		m.ResetCancelReason()
		return nil
	}
	return fmt.Errorf("unknown UIRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UIRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, uirequest.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UIRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uirequest.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UIRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UIRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UIRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, uirequest.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UIRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case uirequest.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UIRequestMutation) ClearEdge(name string) error {
	switch name {
	case uirequest.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown UIRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UIRequestMutation) ResetEdge(name string) error {
	switch name {
	case uirequest.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown UIRequest edge %s", name)
}
