// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/errormind/ent/attemptevent"
	"github.com/abhisek/errormind/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdate) SetUserID(v string) *AttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AttemptEventUpdate) SetTaskID(v string) *AttemptEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTaskID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AttemptEventUpdate) SetErrorType(v string) *AttemptEventUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableErrorType(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetLogicBreakPoint sets the "logic_break_point" field.
func (_u *AttemptEventUpdate) SetLogicBreakPoint(v string) *AttemptEventUpdate {
	_u.mutation.SetLogicBreakPoint(v)
	return _u
}

// SetNillableLogicBreakPoint sets the "logic_break_point" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLogicBreakPoint(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLogicBreakPoint(*v)
	}
	return _u
}

// SetTrapTask sets the "trap_task" field.
func (_u *AttemptEventUpdate) SetTrapTask(v string) *AttemptEventUpdate {
	_u.mutation.SetTrapTask(v)
	return _u
}

// SetNillableTrapTask sets the "trap_task" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTrapTask(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTrapTask(*v)
	}
	return _u
}

// SetAdvice sets the "advice" field.
func (_u *AttemptEventUpdate) SetAdvice(v string) *AttemptEventUpdate {
	_u.mutation.SetAdvice(v)
	return _u
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAdvice(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAdvice(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *AttemptEventUpdate) SetStepCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStepCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *AttemptEventUpdate) AddStepCount(v int) *AttemptEventUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetTotalMs sets the "total_ms" field.
func (_u *AttemptEventUpdate) SetTotalMs(v int64) *AttemptEventUpdate {
	_u.mutation.ResetTotalMs()
	_u.mutation.SetTotalMs(v)
	return _u
}

// SetNillableTotalMs sets the "total_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTotalMs(v *int64) *AttemptEventUpdate {
	if v != nil {
		_u.SetTotalMs(*v)
	}
	return _u
}

// AddTotalMs adds value to the "total_ms" field.
func (_u *AttemptEventUpdate) AddTotalMs(v int64) *AttemptEventUpdate {
	_u.mutation.AddTotalMs(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *AttemptEventUpdate) SetFallback(v bool) *AttemptEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableFallback(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := attemptevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorType(); ok {
		if err := attemptevent.ErrorTypeValidator(v); err != nil {
			return &ValidationError{Name: "error_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.error_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(attemptevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(attemptevent.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogicBreakPoint(); ok {
		_spec.SetField(attemptevent.FieldLogicBreakPoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrapTask(); ok {
		_spec.SetField(attemptevent.FieldTrapTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Advice(); ok {
		_spec.SetField(attemptevent.FieldAdvice, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMs(); ok {
		_spec.SetField(attemptevent.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalMs(); ok {
		_spec.AddField(attemptevent.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(attemptevent.FieldFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdateOne) SetUserID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AttemptEventUpdateOne) SetTaskID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTaskID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AttemptEventUpdateOne) SetErrorType(v string) *AttemptEventUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableErrorType(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetLogicBreakPoint sets the "logic_break_point" field.
func (_u *AttemptEventUpdateOne) SetLogicBreakPoint(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLogicBreakPoint(v)
	return _u
}

// SetNillableLogicBreakPoint sets the "logic_break_point" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLogicBreakPoint(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLogicBreakPoint(*v)
	}
	return _u
}

// SetTrapTask sets the "trap_task" field.
func (_u *AttemptEventUpdateOne) SetTrapTask(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTrapTask(v)
	return _u
}

// SetNillableTrapTask sets the "trap_task" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTrapTask(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTrapTask(*v)
	}
	return _u
}

// SetAdvice sets the "advice" field.
func (_u *AttemptEventUpdateOne) SetAdvice(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAdvice(v)
	return _u
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAdvice(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAdvice(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *AttemptEventUpdateOne) SetStepCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStepCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *AttemptEventUpdateOne) AddStepCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetTotalMs sets the "total_ms" field.
func (_u *AttemptEventUpdateOne) SetTotalMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.ResetTotalMs()
	_u.mutation.SetTotalMs(v)
	return _u
}

// SetNillableTotalMs sets the "total_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTotalMs(v *int64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalMs(*v)
	}
	return _u
}

// AddTotalMs adds value to the "total_ms" field.
func (_u *AttemptEventUpdateOne) AddTotalMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.AddTotalMs(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *AttemptEventUpdateOne) SetFallback(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableFallback(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := attemptevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorType(); ok {
		if err := attemptevent.ErrorTypeValidator(v); err != nil {
			return &ValidationError{Name: "error_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.error_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(attemptevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(attemptevent.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogicBreakPoint(); ok {
		_spec.SetField(attemptevent.FieldLogicBreakPoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrapTask(); ok {
		_spec.SetField(attemptevent.FieldTrapTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Advice(); ok {
		_spec.SetField(attemptevent.FieldAdvice, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(attemptevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMs(); ok {
		_spec.SetField(attemptevent.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalMs(); ok {
		_spec.AddField(attemptevent.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(attemptevent.FieldFallback, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
