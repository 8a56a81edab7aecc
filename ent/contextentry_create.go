// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gianmatteo-arcana/engine-lever/ent/contextentry"
	"github.com/gianmatteo-arcana/engine-lever/ent/task"
)

// ContextEntryCreate is the builder for creating a ContextEntry entity.
type ContextEntryCreate struct {
	config
	mutation *ContextEntryMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ContextEntryCreate) SetTaskID(v string) *ContextEntryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *ContextEntryCreate) SetSequenceNumber(v int) *ContextEntryCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextEntryCreate) SetCreatedAt(v time.Time) *ContextEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextEntryCreate) SetNillableCreatedAt(v *time.Time) *ContextEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActorKind sets the "actor_kind" field.
func (_c *ContextEntryCreate) SetActorKind(v contextentry.ActorKind) *ContextEntryCreate {
	_c.mutation.SetActorKind(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *ContextEntryCreate) SetActorID(v string) *ContextEntryCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetActorVersion sets the "actor_version" field.
func (_c *ContextEntryCreate) SetActorVersion(v string) *ContextEntryCreate {
	_c.mutation.SetActorVersion(v)
	return _c
}

// SetNillableActorVersion sets the "actor_version" field if the given value is not nil.
func (_c *ContextEntryCreate) SetNillableActorVersion(v *string) *ContextEntryCreate {
	if v != nil {
		_c.SetActorVersion(*v)
	}
	return _c
}

// SetOperation sets the "operation" field.
func (_c *ContextEntryCreate) SetOperation(v string) *ContextEntryCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ContextEntryCreate) SetData(v map[string]interface{}) *ContextEntryCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *ContextEntryCreate) SetReasoning(v string) *ContextEntryCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *ContextEntryCreate) SetNillableReasoning(v *string) *ContextEntryCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *ContextEntryCreate) SetTrigger(v map[string]interface{}) *ContextEntryCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ContextEntryCreate) SetID(v string) *ContextEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ContextEntryCreate) SetTask(v *Task) *ContextEntryCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ContextEntryMutation object of the builder.
func (_c *ContextEntryCreate) Mutation() *ContextEntryMutation {
	return _c.mutation
}

// Save creates the ContextEntry in the database.
func (_c *ContextEntryCreate) Save(ctx context.Context) (*ContextEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextEntryCreate) SaveX(ctx context.Context) *ContextEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contextentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextEntryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ContextEntry.task_id"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "ContextEntry.sequence_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextEntry.created_at"`)}
	}
	if _, ok := _c.mutation.ActorKind(); !ok {
		return &ValidationError{Name: "actor_kind", err: errors.New(`ent: missing required field "ContextEntry.actor_kind"`)}
	}
	if v, ok := _c.mutation.ActorKind(); ok {
		if err := contextentry.ActorKindValidator(v); err != nil {
			return &ValidationError{Name: "actor_kind", err: fmt.Errorf(`ent: validator failed for field "ContextEntry.actor_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "ContextEntry.actor_id"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "ContextEntry.operation"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ContextEntry.task"`)}
	}
	return nil
}

func (_c *ContextEntryCreate) sqlSave(ctx context.Context) (*ContextEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ContextEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContextEntryCreate) createSpec() (*ContextEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextentry.Table, sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(contextentry.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contextentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ActorKind(); ok {
		_spec.SetField(contextentry.FieldActorKind, field.TypeEnum, value)
		_node.ActorKind = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(contextentry.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.ActorVersion(); ok {
		_spec.SetField(contextentry.FieldActorVersion, field.TypeString, value)
		_node.ActorVersion = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(contextentry.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(contextentry.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(contextentry.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(contextentry.FieldTrigger, field.TypeJSON, value)
		_node.Trigger = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.TaskTable,
			Columns: []string{contextentry.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContextEntryCreateBulk is the builder for creating many ContextEntry entities in bulk.
type ContextEntryCreateBulk struct {
	config
	err      error
	builders []*ContextEntryCreate
}

// Save creates the ContextEntry entities in the database.
func (_c *ContextEntryCreateBulk) Save(ctx context.Context) ([]*ContextEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContextEntryCreateBulk) SaveX(ctx context.Context) []*ContextEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
