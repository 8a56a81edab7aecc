// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gianmatteo-arcana/engine-lever/ent/contextentry"
	"github.com/gianmatteo-arcana/engine-lever/ent/predicate"
)

// ContextEntryUpdate is the builder for updating ContextEntry entities.
type ContextEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ContextEntryMutation
}

// Where appends a list predicates to the ContextEntryUpdate builder.
func (_u *ContextEntryUpdate) Where(ps ...predicate.ContextEntry) *ContextEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ContextEntryMutation object of the builder.
func (_u *ContextEntryUpdate) Mutation() *ContextEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextEntryUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextEntry.task"`)
	}
	return nil
}

func (_u *ContextEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextentry.Table, contextentry.Columns, sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorVersionCleared() {
		_spec.ClearField(contextentry.FieldActorVersion, field.TypeString)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(contextentry.FieldData, field.TypeJSON)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(contextentry.FieldReasoning, field.TypeString)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(contextentry.FieldTrigger, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextEntryUpdateOne is the builder for updating a single ContextEntry entity.
type ContextEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextEntryMutation
}

// Mutation returns the ContextEntryMutation object of the builder.
func (_u *ContextEntryUpdateOne) Mutation() *ContextEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextEntryUpdate builder.
func (_u *ContextEntryUpdateOne) Where(ps ...predicate.ContextEntry) *ContextEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextEntryUpdateOne) Select(field string, fields ...string) *ContextEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextEntry entity.
func (_u *ContextEntryUpdateOne) Save(ctx context.Context) (*ContextEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextEntryUpdateOne) SaveX(ctx context.Context) *ContextEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextEntryUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextEntry.task"`)
	}
	return nil
}

func (_u *ContextEntryUpdateOne) sqlSave(ctx context.Context) (_node *ContextEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextentry.Table, contextentry.Columns, sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextentry.FieldID)
		for _, f := range fields {
			if !contextentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorVersionCleared() {
		_spec.ClearField(contextentry.FieldActorVersion, field.TypeString)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(contextentry.FieldData, field.TypeJSON)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(contextentry.FieldReasoning, field.TypeString)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(contextentry.FieldTrigger, field.TypeJSON)
	}
	_node = &ContextEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
