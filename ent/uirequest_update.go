// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gianmatteo-arcana/engine-lever/ent/predicate"
	"github.com/gianmatteo-arcana/engine-lever/ent/uirequest"
)

// UIRequestUpdate is the builder for updating UIRequest entities.
type UIRequestUpdate struct {
	config
	hooks    []Hook
	mutation *UIRequestMutation
}

// Where appends a list predicates to the UIRequestUpdate builder.
func (_u *UIRequestUpdate) Where(ps ...predicate.UIRequest) *UIRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateKind sets the "template_kind" field.
func (_u *UIRequestUpdate) SetTemplateKind(v uirequest.TemplateKind) *UIRequestUpdate {
	_u.mutation.SetTemplateKind(v)
	return _u
}

// SetNillableTemplateKind sets the "template_kind" field if the given value is not nil.
func (_u *UIRequestUpdate) SetNillableTemplateKind(v *uirequest.TemplateKind) *UIRequestUpdate {
	if v != nil {
		_u.SetTemplateKind(*v)
	}
	return _u
}

// SetSemanticData sets the "semantic_data" field.
func (_u *UIRequestUpdate) SetSemanticData(v map[string]interface{}) *UIRequestUpdate {
	_u.mutation.SetSemanticData(v)
	return _u
}

// ClearSemanticData clears the value of the "semantic_data" field.
func (_u *UIRequestUpdate) ClearSemanticData() *UIRequestUpdate {
	_u.mutation.ClearSemanticData()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *UIRequestUpdate) SetPriority(v uirequest.Priority) *UIRequestUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *UIRequestUpdate) SetNillablePriority(v *uirequest.Priority) *UIRequestUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UIRequestUpdate) SetStatus(v uirequest.Status) *UIRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UIRequestUpdate) SetNillableStatus(v *uirequest.Status) *UIRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UIRequestUpdate) SetUpdatedAt(v time.Time) *UIRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOriginatingEventID sets the "originating_event_id" field.
func (_u *UIRequestUpdate) SetOriginatingEventID(v string) *UIRequestUpdate {
	_u.mutation.SetOriginatingEventID(v)
	return _u
}

// SetNillableOriginatingEventID sets the "originating_event_id" field if the given value is not nil.
func (_u *UIRequestUpdate) SetNillableOriginatingEventID(v *string) *UIRequestUpdate {
	if v != nil {
		_u.SetOriginatingEventID(*v)
	}
	return _u
}

// ClearOriginatingEventID clears the value of the "originating_event_id" field.
func (_u *UIRequestUpdate) ClearOriginatingEventID() *UIRequestUpdate {
	_u.mutation.ClearOriginatingEventID()
	return _u
}

// SetOriginatingAgentID sets the "originating_agent_id" field.
func (_u *UIRequestUpdate) SetOriginatingAgentID(v string) *UIRequestUpdate {
	_u.mutation.SetOriginatingAgentID(v)
	return _u
}

// SetNillableOriginatingAgentID sets the "originating_agent_id" field if the given value is not nil.
func (_u *UIRequestUpdate) SetNillableOriginatingAgentID(v *string) *UIRequestUpdate {
	if v != nil {
		_u.SetOriginatingAgentID(*v)
	}
	return _u
}

// ClearOriginatingAgentID clears the value of the "originating_agent_id" field.
func (_u *UIRequestUpdate) ClearOriginatingAgentID() *UIRequestUpdate {
	_u.mutation.ClearOriginatingAgentID()
	return _u
}

// SetResponse sets the "response" field.
func (_u *UIRequestUpdate) SetResponse(v map[string]interface{}) *UIRequestUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *UIRequestUpdate) ClearResponse() *UIRequestUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *UIRequestUpdate) SetCancelReason(v string) *UIRequestUpdate {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *UIRequestUpdate) SetNillableCancelReason(v *string) *UIRequestUpdate {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *UIRequestUpdate) ClearCancelReason() *UIRequestUpdate {
	_u.mutation.ClearCancelReason()
	return _u
}

// Mutation returns the UIRequestMutation object of the builder.
func (_u *UIRequestUpdate) Mutation() *UIRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UIRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UIRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UIRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UIRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UIRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uirequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UIRequestUpdate) check() error {
	if v, ok := _u.mutation.TemplateKind(); ok {
		if err := uirequest.TemplateKindValidator(v); err != nil {
			return &ValidationError{Name: "template_kind", err: fmt.Errorf(`ent: validator failed for field "UIRequest.template_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := uirequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "UIRequest.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uirequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UIRequest.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UIRequest.task"`)
	}
	return nil
}

func (_u *UIRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uirequest.Table, uirequest.Columns, sqlgraph.NewFieldSpec(uirequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateKind(); ok {
		_spec.SetField(uirequest.FieldTemplateKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SemanticData(); ok {
		_spec.SetField(uirequest.FieldSemanticData, field.TypeJSON, value)
	}
	if _u.mutation.SemanticDataCleared() {
		_spec.ClearField(uirequest.FieldSemanticData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(uirequest.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uirequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uirequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OriginatingEventID(); ok {
		_spec.SetField(uirequest.FieldOriginatingEventID, field.TypeString, value)
	}
	if _u.mutation.OriginatingEventIDCleared() {
		_spec.ClearField(uirequest.FieldOriginatingEventID, field.TypeString)
	}
	if value, ok := _u.mutation.OriginatingAgentID(); ok {
		_spec.SetField(uirequest.FieldOriginatingAgentID, field.TypeString, value)
	}
	if _u.mutation.OriginatingAgentIDCleared() {
		_spec.ClearField(uirequest.FieldOriginatingAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(uirequest.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(uirequest.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(uirequest.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(uirequest.FieldCancelReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uirequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UIRequestUpdateOne is the builder for updating a single UIRequest entity.
type UIRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UIRequestMutation
}

// SetTemplateKind sets the "template_kind" field.
func (_u *UIRequestUpdateOne) SetTemplateKind(v uirequest.TemplateKind) *UIRequestUpdateOne {
	_u.mutation.SetTemplateKind(v)
	return _u
}

// SetNillableTemplateKind sets the "template_kind" field if the given value is not nil.
func (_u *UIRequestUpdateOne) SetNillableTemplateKind(v *uirequest.TemplateKind) *UIRequestUpdateOne {
	if v != nil {
		_u.SetTemplateKind(*v)
	}
	return _u
}

// SetSemanticData sets the "semantic_data" field.
func (_u *UIRequestUpdateOne) SetSemanticData(v map[string]interface{}) *UIRequestUpdateOne {
	_u.mutation.SetSemanticData(v)
	return _u
}

// ClearSemanticData clears the value of the "semantic_data" field.
func (_u *UIRequestUpdateOne) ClearSemanticData() *UIRequestUpdateOne {
	_u.mutation.ClearSemanticData()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *UIRequestUpdateOne) SetPriority(v uirequest.Priority) *UIRequestUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *UIRequestUpdateOne) SetNillablePriority(v *uirequest.Priority) *UIRequestUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UIRequestUpdateOne) SetStatus(v uirequest.Status) *UIRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UIRequestUpdateOne) SetNillableStatus(v *uirequest.Status) *UIRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UIRequestUpdateOne) SetUpdatedAt(v time.Time) *UIRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOriginatingEventID sets the "originating_event_id" field.
func (_u *UIRequestUpdateOne) SetOriginatingEventID(v string) *UIRequestUpdateOne {
	_u.mutation.SetOriginatingEventID(v)
	return _u
}

// SetNillableOriginatingEventID sets the "originating_event_id" field if the given value is not nil.
func (_u *UIRequestUpdateOne) SetNillableOriginatingEventID(v *string) *UIRequestUpdateOne {
	if v != nil {
		_u.SetOriginatingEventID(*v)
	}
	return _u
}

// ClearOriginatingEventID clears the value of the "originating_event_id" field.
func (_u *UIRequestUpdateOne) ClearOriginatingEventID() *UIRequestUpdateOne {
	_u.mutation.ClearOriginatingEventID()
	return _u
}

// SetOriginatingAgentID sets the "originating_agent_id" field.
func (_u *UIRequestUpdateOne) SetOriginatingAgentID(v string) *UIRequestUpdateOne {
	_u.mutation.SetOriginatingAgentID(v)
	return _u
}

// SetNillableOriginatingAgentID sets the "originating_agent_id" field if the given value is not nil.
func (_u *UIRequestUpdateOne) SetNillableOriginatingAgentID(v *string) *UIRequestUpdateOne {
	if v != nil {
		_u.SetOriginatingAgentID(*v)
	}
	return _u
}

// ClearOriginatingAgentID clears the value of the "originating_agent_id" field.
func (_u *UIRequestUpdateOne) ClearOriginatingAgentID() *UIRequestUpdateOne {
	_u.mutation.ClearOriginatingAgentID()
	return _u
}

// SetResponse sets the "response" field.
func (_u *UIRequestUpdateOne) SetResponse(v map[string]interface{}) *UIRequestUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *UIRequestUpdateOne) ClearResponse() *UIRequestUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *UIRequestUpdateOne) SetCancelReason(v string) *UIRequestUpdateOne {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *UIRequestUpdateOne) SetNillableCancelReason(v *string) *UIRequestUpdateOne {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *UIRequestUpdateOne) ClearCancelReason() *UIRequestUpdateOne {
	_u.mutation.ClearCancelReason()
	return _u
}

// Mutation returns the UIRequestMutation object of the builder.
func (_u *UIRequestUpdateOne) Mutation() *UIRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the UIRequestUpdate builder.
func (_u *UIRequestUpdateOne) Where(ps ...predicate.UIRequest) *UIRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UIRequestUpdateOne) Select(field string, fields ...string) *UIRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UIRequest entity.
func (_u *UIRequestUpdateOne) Save(ctx context.Context) (*UIRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UIRequestUpdateOne) SaveX(ctx context.Context) *UIRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UIRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UIRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UIRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uirequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UIRequestUpdateOne) check() error {
	if v, ok := _u.mutation.TemplateKind(); ok {
		if err := uirequest.TemplateKindValidator(v); err != nil {
			return &ValidationError{Name: "template_kind", err: fmt.Errorf(`ent: validator failed for field "UIRequest.template_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := uirequest.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "UIRequest.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uirequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UIRequest.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UIRequest.task"`)
	}
	return nil
}

func (_u *UIRequestUpdateOne) sqlSave(ctx context.Context) (_node *UIRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uirequest.Table, uirequest.Columns, sqlgraph.NewFieldSpec(uirequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UIRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uirequest.FieldID)
		for _, f := range fields {
			if !uirequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uirequest.FieldID {
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
	if value, ok := _u.mutation.TemplateKind(); ok {
		_spec.SetField(uirequest.FieldTemplateKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SemanticData(); ok {
		_spec.SetField(uirequest.FieldSemanticData, field.TypeJSON, value)
	}
	if _u.mutation.SemanticDataCleared() {
		_spec.ClearField(uirequest.FieldSemanticData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(uirequest.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uirequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uirequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OriginatingEventID(); ok {
		_spec.SetField(uirequest.FieldOriginatingEventID, field.TypeString, value)
	}
	if _u.mutation.OriginatingEventIDCleared() {
		_spec.ClearField(uirequest.FieldOriginatingEventID, field.TypeString)
	}
	if value, ok := _u.mutation.OriginatingAgentID(); ok {
		_spec.SetField(uirequest.FieldOriginatingAgentID, field.TypeString, value)
	}
	if _u.mutation.OriginatingAgentIDCleared() {
		_spec.ClearField(uirequest.FieldOriginatingAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(uirequest.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(uirequest.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(uirequest.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(uirequest.FieldCancelReason, field.TypeString)
	}
	_node = &UIRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uirequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
