// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gianmatteo-arcana/engine-lever/ent/task"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
)

// UIRequestCreate is the builder for creating a UIRequest entity.
type UIRequestCreate struct {
	config
	mutation *UIRequestMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *UIRequestCreate) SetTaskID(v string) *UIRequestCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetTemplateKind sets the "template_kind" field.
func (_c *UIRequestCreate) SetTemplateKind(v uirequest.TemplateKind) *UIRequestCreate {
	_c.mutation.SetTemplateKind(v)
	return _c
}

// SetSemanticData sets the "semantic_data" field.
func (_c *UIRequestCreate) SetSemanticData(v map[string]interface{}) *UIRequestCreate {
	_c.mutation.SetSemanticData(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *UIRequestCreate) SetPriority(v uirequest.Priority) *UIRequestCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *UIRequestCreate) SetNillablePriority(v *uirequest.Priority) *UIRequestCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UIRequestCreate) SetStatus(v uirequest.Status) *UIRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UIRequestCreate) SetNillableStatus(v *uirequest.Status) *UIRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UIRequestCreate) SetCreatedAt(v time.Time) *UIRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UIRequestCreate) SetNillableCreatedAt(v *time.Time) *UIRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UIRequestCreate) SetUpdatedAt(v time.Time) *UIRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UIRequestCreate) SetNillableUpdatedAt(v *time.Time) *UIRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOriginatingEventID sets the "originating_event_id" field.
func (_c *UIRequestCreate) SetOriginatingEventID(v string) *UIRequestCreate {
	_c.mutation.SetOriginatingEventID(v)
	return _c
}

// SetNillableOriginatingEventID sets the "originating_event_id" field if the given value is not nil.
func (_c *UIRequestCreate) SetNillableOriginatingEventID(v *string) *UIRequestCreate {
	if v != nil {
		_c.SetOriginatingEventID(*v)
	}
	return _c
}

// SetOriginatingAgentID sets the "originating_agent_id" field.
func (_c *UIRequestCreate) SetOriginatingAgentID(v string) *UIRequestCreate {
	_c.mutation.SetOriginatingAgentID(v)
	return _c
}

// SetNillableOriginatingAgentID sets the "originating_agent_id" field if the given value is not nil.
func (_c *UIRequestCreate) SetNillableOriginatingAgentID(v *string) *UIRequestCreate {
	if v != nil {
		_c.SetOriginatingAgentID(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *UIRequestCreate) SetResponse(v map[string]interface{}) *UIRequestCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetCancelReason sets the "cancel_reason" field.
func (_c *UIRequestCreate) SetCancelReason(v string) *UIRequestCreate {
	_c.mutation.SetCancelReason(v)
	return _c
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_c *UIRequestCreate) SetNillableCancelReason(v *string) *UIRequestCreate {
	if v != nil {
		_c.SetCancelReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UIRequestCreate) SetID(v string) *UIRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *UIRequestCreate) SetTask(v *Task) *UIRequestCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the UIRequestMutation object of the builder.
func (_c *UIRequestCreate) Mutation() *UIRequestMutation {
	return _c.mutation
}

// Save creates the UIRequest in the database.
func (_c *UIRequestCreate) Save(ctx context.Context) (*UIRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UIRequestCreate) SaveX(ctx context.Context) *UIRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UIRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UIRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UIRequestCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := uirequest.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := uirequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uirequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := uirequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UIRequestCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "UIRequest.task_id"`)}
	}
	if _, ok := _c.mutation.TemplateKind(); !ok {
		return &ValidationError{Name: "template_kind", err: errors.New(`ent: missing required field "UIRequest.template_kind"`)}
	}
	if v, ok := _c.mutation.TemplateKind(); ok {
		if err := uirequest.TemplateKindValidator(v); err != nil {
			return &ValidationError{Name: "template_kind", err: fmt.Errorf(`ent: validator failed for field "UIRequest.template_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "UIRequest.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := uirequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "UIRequest.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UIRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uirequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UIRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UIRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UIRequest.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "UIRequest.task"`)}
	}
	return nil
}

func (_c *UIRequestCreate) sqlSave(ctx context.Context) (*UIRequest, error) {
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
			return nil, fmt.Errorf("unexpected UIRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UIRequestCreate) createSpec() (*UIRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &UIRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uirequest.Table, sqlgraph.NewFieldSpec(uirequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateKind(); ok {
		_spec.SetField(uirequest.FieldTemplateKind, field.TypeEnum, value)
		_node.TemplateKind = value
	}
	if value, ok := _c.mutation.SemanticData(); ok {
		_spec.SetField(uirequest.FieldSemanticData, field.TypeJSON, value)
		_node.SemanticData = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(uirequest.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uirequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uirequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(uirequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OriginatingEventID(); ok {
		_spec.SetField(uirequest.FieldOriginatingEventID, field.TypeString, value)
		_node.OriginatingEventID = value
	}
	if value, ok := _c.mutation.OriginatingAgentID(); ok {
		_spec.SetField(uirequest.FieldOriginatingAgentID, field.TypeString, value)
		_node.OriginatingAgentID = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(uirequest.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.CancelReason(); ok {
		_spec.SetField(uirequest.FieldCancelReason, field.TypeString, value)
		_node.CancelReason = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uirequest.TaskTable,
			Columns: []string{uirequest.TaskColumn},
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

// UIRequestCreateBulk is the builder for creating many UIRequest entities in bulk.
type UIRequestCreateBulk struct {
	config
	err      error
	builders []*UIRequestCreate
}

// Save creates the UIRequest entities in the database.
func (_c *UIRequestCreateBulk) Save(ctx context.Context) ([]*UIRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UIRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UIRequestMutation)
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
func (_c *UIRequestCreateBulk) SaveX(ctx context.Context) []*UIRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UIRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UIRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
