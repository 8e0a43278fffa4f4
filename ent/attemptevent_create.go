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
	"github.com/abhisek/errormind/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptEventCreate) SetUserID(v string) *AttemptEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *AttemptEventCreate) SetTaskID(v string) *AttemptEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *AttemptEventCreate) SetErrorType(v string) *AttemptEventCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetLogicBreakPoint sets the "logic_break_point" field.
func (_c *AttemptEventCreate) SetLogicBreakPoint(v string) *AttemptEventCreate {
	_c.mutation.SetLogicBreakPoint(v)
	return _c
}

// SetNillableLogicBreakPoint sets the "logic_break_point" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableLogicBreakPoint(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetLogicBreakPoint(*v)
	}
	return _c
}

// SetTrapTask sets the "trap_task" field.
func (_c *AttemptEventCreate) SetTrapTask(v string) *AttemptEventCreate {
	_c.mutation.SetTrapTask(v)
	return _c
}

// SetNillableTrapTask sets the "trap_task" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTrapTask(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetTrapTask(*v)
	}
	return _c
}

// SetAdvice sets the "advice" field.
func (_c *AttemptEventCreate) SetAdvice(v string) *AttemptEventCreate {
	_c.mutation.SetAdvice(v)
	return _c
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableAdvice(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetAdvice(*v)
	}
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *AttemptEventCreate) SetStepCount(v int) *AttemptEventCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableStepCount(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetTotalMs sets the "total_ms" field.
func (_c *AttemptEventCreate) SetTotalMs(v int64) *AttemptEventCreate {
	_c.mutation.SetTotalMs(v)
	return _c
}

// SetNillableTotalMs sets the "total_ms" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTotalMs(v *int64) *AttemptEventCreate {
	if v != nil {
		_c.SetTotalMs(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *AttemptEventCreate) SetFallback(v bool) *AttemptEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableFallback(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LogicBreakPoint(); !ok {
		v := attemptevent.DefaultLogicBreakPoint
		_c.mutation.SetLogicBreakPoint(v)
	}
	if _, ok := _c.mutation.TrapTask(); !ok {
		v := attemptevent.DefaultTrapTask
		_c.mutation.SetTrapTask(v)
	}
	if _, ok := _c.mutation.Advice(); !ok {
		v := attemptevent.DefaultAdvice
		_c.mutation.SetAdvice(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := attemptevent.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.TotalMs(); !ok {
		v := attemptevent.DefaultTotalMs
		_c.mutation.SetTotalMs(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := attemptevent.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AttemptEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "AttemptEvent.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := attemptevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		return &ValidationError{Name: "error_type", err: errors.New(`ent: missing required field "AttemptEvent.error_type"`)}
	}
	if v, ok := _c.mutation.ErrorType(); ok {
		if err := attemptevent.ErrorTypeValidator(v); err != nil {
			return &ValidationError{Name: "error_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.error_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LogicBreakPoint(); !ok {
		return &ValidationError{Name: "logic_break_point", err: errors.New(`ent: missing required field "AttemptEvent.logic_break_point"`)}
	}
	if _, ok := _c.mutation.TrapTask(); !ok {
		return &ValidationError{Name: "trap_task", err: errors.New(`ent: missing required field "AttemptEvent.trap_task"`)}
	}
	if _, ok := _c.mutation.Advice(); !ok {
		return &ValidationError{Name: "advice", err: errors.New(`ent: missing required field "AttemptEvent.advice"`)}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "AttemptEvent.step_count"`)}
	}
	if _, ok := _c.mutation.TotalMs(); !ok {
		return &ValidationError{Name: "total_ms", err: errors.New(`ent: missing required field "AttemptEvent.total_ms"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "AttemptEvent.fallback"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(attemptevent.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(attemptevent.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.LogicBreakPoint(); ok {
		_spec.SetField(attemptevent.FieldLogicBreakPoint, field.TypeString, value)
		_node.LogicBreakPoint = value
	}
	if value, ok := _c.mutation.TrapTask(); ok {
		_spec.SetField(attemptevent.FieldTrapTask, field.TypeString, value)
		_node.TrapTask = value
	}
	if value, ok := _c.mutation.Advice(); ok {
		_spec.SetField(attemptevent.FieldAdvice, field.TypeString, value)
		_node.Advice = value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(attemptevent.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.TotalMs(); ok {
		_spec.SetField(attemptevent.FieldTotalMs, field.TypeInt64, value)
		_node.TotalMs = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(attemptevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertOne {
	_c.conflict = opts
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflictColumns(columns ...string) *AttemptEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

type (
	// AttemptEventUpsertOne is the builder for "upsert"-ing
	//  one AttemptEvent node.
	AttemptEventUpsertOne struct {
		create *AttemptEventCreate
	}

	// AttemptEventUpsert is the "OnConflict" setter.
	AttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsert) SetUserID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateUserID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldUserID)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *AttemptEventUpsert) SetTaskID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTaskID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTaskID)
	return u
}

// SetErrorType sets the "error_type" field.
func (u *AttemptEventUpsert) SetErrorType(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldErrorType, v)
	return u
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateErrorType() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldErrorType)
	return u
}

// SetLogicBreakPoint sets the "logic_break_point" field.
func (u *AttemptEventUpsert) SetLogicBreakPoint(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldLogicBreakPoint, v)
	return u
}

// UpdateLogicBreakPoint sets the "logic_break_point" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateLogicBreakPoint() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldLogicBreakPoint)
	return u
}

// SetTrapTask sets the "trap_task" field.
func (u *AttemptEventUpsert) SetTrapTask(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTrapTask, v)
	return u
}

// UpdateTrapTask sets the "trap_task" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTrapTask() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTrapTask)
	return u
}

// SetAdvice sets the "advice" field.
func (u *AttemptEventUpsert) SetAdvice(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldAdvice, v)
	return u
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateAdvice() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldAdvice)
	return u
}

// SetStepCount sets the "step_count" field.
func (u *AttemptEventUpsert) SetStepCount(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldStepCount, v)
	return u
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateStepCount() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldStepCount)
	return u
}

// AddStepCount adds v to the "step_count" field.
func (u *AttemptEventUpsert) AddStepCount(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldStepCount, v)
	return u
}

// SetTotalMs sets the "total_ms" field.
func (u *AttemptEventUpsert) SetTotalMs(v int64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTotalMs, v)
	return u
}

// UpdateTotalMs sets the "total_ms" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTotalMs() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTotalMs)
	return u
}

// AddTotalMs adds v to the "total_ms" field.
func (u *AttemptEventUpsert) AddTotalMs(v int64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldTotalMs, v)
	return u
}

// SetFallback sets the "fallback" field.
func (u *AttemptEventUpsert) SetFallback(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldFallback, v)
	return u
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateFallback() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldFallback)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertOne) UpdateNewValues() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptEventUpsertOne) Ignore() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertOne) DoNothing() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreate.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertOne) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertOne) SetUserID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateUserID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *AttemptEventUpsertOne) SetTaskID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTaskID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTaskID()
	})
}

// SetErrorType sets the "error_type" field.
func (u *AttemptEventUpsertOne) SetErrorType(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateErrorType() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateErrorType()
	})
}

// SetLogicBreakPoint sets the "logic_break_point" field.
func (u *AttemptEventUpsertOne) SetLogicBreakPoint(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLogicBreakPoint(v)
	})
}

// UpdateLogicBreakPoint sets the "logic_break_point" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateLogicBreakPoint() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLogicBreakPoint()
	})
}

// SetTrapTask sets the "trap_task" field.
func (u *AttemptEventUpsertOne) SetTrapTask(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTrapTask(v)
	})
}

// UpdateTrapTask sets the "trap_task" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTrapTask() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTrapTask()
	})
}

// SetAdvice sets the "advice" field.
func (u *AttemptEventUpsertOne) SetAdvice(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetAdvice(v)
	})
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateAdvice() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateAdvice()
	})
}

// SetStepCount sets the "step_count" field.
func (u *AttemptEventUpsertOne) SetStepCount(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *AttemptEventUpsertOne) AddStepCount(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateStepCount() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateStepCount()
	})
}

// SetTotalMs sets the "total_ms" field.
func (u *AttemptEventUpsertOne) SetTotalMs(v int64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTotalMs(v)
	})
}

// AddTotalMs adds v to the "total_ms" field.
func (u *AttemptEventUpsertOne) AddTotalMs(v int64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddTotalMs(v)
	})
}

// UpdateTotalMs sets the "total_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTotalMs() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTotalMs()
	})
}

// SetFallback sets the "fallback" field.
func (u *AttemptEventUpsertOne) SetFallback(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateFallback() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateFallback()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertBulk {
	_c.conflict = opts
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflictColumns(columns ...string) *AttemptEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// AttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptEvent nodes.
type AttemptEventUpsertBulk struct {
	create *AttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) UpdateNewValues() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) Ignore() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertBulk) DoNothing() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertBulk) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertBulk) SetUserID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateUserID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *AttemptEventUpsertBulk) SetTaskID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTaskID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTaskID()
	})
}

// SetErrorType sets the "error_type" field.
func (u *AttemptEventUpsertBulk) SetErrorType(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateErrorType() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateErrorType()
	})
}

// SetLogicBreakPoint sets the "logic_break_point" field.
func (u *AttemptEventUpsertBulk) SetLogicBreakPoint(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLogicBreakPoint(v)
	})
}

// UpdateLogicBreakPoint sets the "logic_break_point" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateLogicBreakPoint() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLogicBreakPoint()
	})
}

// SetTrapTask sets the "trap_task" field.
func (u *AttemptEventUpsertBulk) SetTrapTask(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTrapTask(v)
	})
}

// UpdateTrapTask sets the "trap_task" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTrapTask() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTrapTask()
	})
}

// SetAdvice sets the "advice" field.
func (u *AttemptEventUpsertBulk) SetAdvice(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetAdvice(v)
	})
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateAdvice() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateAdvice()
	})
}

// SetStepCount sets the "step_count" field.
func (u *AttemptEventUpsertBulk) SetStepCount(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *AttemptEventUpsertBulk) AddStepCount(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateStepCount() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateStepCount()
	})
}

// SetTotalMs sets the "total_ms" field.
func (u *AttemptEventUpsertBulk) SetTotalMs(v int64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTotalMs(v)
	})
}

// AddTotalMs adds v to the "total_ms" field.
func (u *AttemptEventUpsertBulk) AddTotalMs(v int64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddTotalMs(v)
	})
}

// UpdateTotalMs sets the "total_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTotalMs() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTotalMs()
	})
}

// SetFallback sets the "fallback" field.
func (u *AttemptEventUpsertBulk) SetFallback(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateFallback() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateFallback()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
