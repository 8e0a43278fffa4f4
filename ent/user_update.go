// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/errormind/ent/predicate"
	"github.com/abhisek/errormind/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetLogical sets the "logical" field.
func (_u *UserUpdate) SetLogical(v int) *UserUpdate {
	_u.mutation.ResetLogical()
	_u.mutation.SetLogical(v)
	return _u
}

// SetNillableLogical sets the "logical" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLogical(v *int) *UserUpdate {
	if v != nil {
		_u.SetLogical(*v)
	}
	return _u
}

// AddLogical adds value to the "logical" field.
func (_u *UserUpdate) AddLogical(v int) *UserUpdate {
	_u.mutation.AddLogical(v)
	return _u
}

// SetComputational sets the "computational" field.
func (_u *UserUpdate) SetComputational(v int) *UserUpdate {
	_u.mutation.ResetComputational()
	_u.mutation.SetComputational(v)
	return _u
}

// SetNillableComputational sets the "computational" field if the given value is not nil.
func (_u *UserUpdate) SetNillableComputational(v *int) *UserUpdate {
	if v != nil {
		_u.SetComputational(*v)
	}
	return _u
}

// AddComputational adds value to the "computational" field.
func (_u *UserUpdate) AddComputational(v int) *UserUpdate {
	_u.mutation.AddComputational(v)
	return _u
}

// SetCarelessness sets the "carelessness" field.
func (_u *UserUpdate) SetCarelessness(v int) *UserUpdate {
	_u.mutation.ResetCarelessness()
	_u.mutation.SetCarelessness(v)
	return _u
}

// SetNillableCarelessness sets the "carelessness" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCarelessness(v *int) *UserUpdate {
	if v != nil {
		_u.SetCarelessness(*v)
	}
	return _u
}

// AddCarelessness adds value to the "carelessness" field.
func (_u *UserUpdate) AddCarelessness(v int) *UserUpdate {
	_u.mutation.AddCarelessness(v)
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *UserUpdate) SetStrategy(v int) *UserUpdate {
	_u.mutation.ResetStrategy()
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStrategy(v *int) *UserUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// AddStrategy adds value to the "strategy" field.
func (_u *UserUpdate) AddStrategy(v int) *UserUpdate {
	_u.mutation.AddStrategy(v)
	return _u
}

// SetAttention sets the "attention" field.
func (_u *UserUpdate) SetAttention(v int) *UserUpdate {
	_u.mutation.ResetAttention()
	_u.mutation.SetAttention(v)
	return _u
}

// SetNillableAttention sets the "attention" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAttention(v *int) *UserUpdate {
	if v != nil {
		_u.SetAttention(*v)
	}
	return _u
}

// AddAttention adds value to the "attention" field.
func (_u *UserUpdate) AddAttention(v int) *UserUpdate {
	_u.mutation.AddAttention(v)
	return _u
}

// SetSolvedTaskIds sets the "solved_task_ids" field.
func (_u *UserUpdate) SetSolvedTaskIds(v []string) *UserUpdate {
	_u.mutation.SetSolvedTaskIds(v)
	return _u
}

// AppendSolvedTaskIds appends value to the "solved_task_ids" field.
func (_u *UserUpdate) AppendSolvedTaskIds(v []string) *UserUpdate {
	_u.mutation.AppendSolvedTaskIds(v)
	return _u
}

// ClearSolvedTaskIds clears the value of the "solved_task_ids" field.
func (_u *UserUpdate) ClearSolvedTaskIds() *UserUpdate {
	_u.mutation.ClearSolvedTaskIds()
	return _u
}

// SetFailedTaskIds sets the "failed_task_ids" field.
func (_u *UserUpdate) SetFailedTaskIds(v []string) *UserUpdate {
	_u.mutation.SetFailedTaskIds(v)
	return _u
}

// AppendFailedTaskIds appends value to the "failed_task_ids" field.
func (_u *UserUpdate) AppendFailedTaskIds(v []string) *UserUpdate {
	_u.mutation.AppendFailedTaskIds(v)
	return _u
}

// ClearFailedTaskIds clears the value of the "failed_task_ids" field.
func (_u *UserUpdate) ClearFailedTaskIds() *UserUpdate {
	_u.mutation.ClearFailedTaskIds()
	return _u
}

// SetPlacementCompleted sets the "placement_completed" field.
func (_u *UserUpdate) SetPlacementCompleted(v bool) *UserUpdate {
	_u.mutation.SetPlacementCompleted(v)
	return _u
}

// SetNillablePlacementCompleted sets the "placement_completed" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePlacementCompleted(v *bool) *UserUpdate {
	if v != nil {
		_u.SetPlacementCompleted(*v)
	}
	return _u
}

// SetAssignedLevel sets the "assigned_level" field.
func (_u *UserUpdate) SetAssignedLevel(v string) *UserUpdate {
	_u.mutation.SetAssignedLevel(v)
	return _u
}

// SetNillableAssignedLevel sets the "assigned_level" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAssignedLevel(v *string) *UserUpdate {
	if v != nil {
		_u.SetAssignedLevel(*v)
	}
	return _u
}

// SetAssignedGrade sets the "assigned_grade" field.
func (_u *UserUpdate) SetAssignedGrade(v int) *UserUpdate {
	_u.mutation.ResetAssignedGrade()
	_u.mutation.SetAssignedGrade(v)
	return _u
}

// SetNillableAssignedGrade sets the "assigned_grade" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAssignedGrade(v *int) *UserUpdate {
	if v != nil {
		_u.SetAssignedGrade(*v)
	}
	return _u
}

// AddAssignedGrade adds value to the "assigned_grade" field.
func (_u *UserUpdate) AddAssignedGrade(v int) *UserUpdate {
	_u.mutation.AddAssignedGrade(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Logical(); ok {
		_spec.SetField(user.FieldLogical, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLogical(); ok {
		_spec.AddField(user.FieldLogical, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Computational(); ok {
		_spec.SetField(user.FieldComputational, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComputational(); ok {
		_spec.AddField(user.FieldComputational, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Carelessness(); ok {
		_spec.SetField(user.FieldCarelessness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCarelessness(); ok {
		_spec.AddField(user.FieldCarelessness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(user.FieldStrategy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategy(); ok {
		_spec.AddField(user.FieldStrategy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attention(); ok {
		_spec.SetField(user.FieldAttention, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttention(); ok {
		_spec.AddField(user.FieldAttention, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolvedTaskIds(); ok {
		_spec.SetField(user.FieldSolvedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSolvedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldSolvedTaskIds, value)
		})
	}
	if _u.mutation.SolvedTaskIdsCleared() {
		_spec.ClearField(user.FieldSolvedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailedTaskIds(); ok {
		_spec.SetField(user.FieldFailedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldFailedTaskIds, value)
		})
	}
	if _u.mutation.FailedTaskIdsCleared() {
		_spec.ClearField(user.FieldFailedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlacementCompleted(); ok {
		_spec.SetField(user.FieldPlacementCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedLevel(); ok {
		_spec.SetField(user.FieldAssignedLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedGrade(); ok {
		_spec.SetField(user.FieldAssignedGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedGrade(); ok {
		_spec.AddField(user.FieldAssignedGrade, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetLogical sets the "logical" field.
func (_u *UserUpdateOne) SetLogical(v int) *UserUpdateOne {
	_u.mutation.ResetLogical()
	_u.mutation.SetLogical(v)
	return _u
}

// SetNillableLogical sets the "logical" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLogical(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetLogical(*v)
	}
	return _u
}

// AddLogical adds value to the "logical" field.
func (_u *UserUpdateOne) AddLogical(v int) *UserUpdateOne {
	_u.mutation.AddLogical(v)
	return _u
}

// SetComputational sets the "computational" field.
func (_u *UserUpdateOne) SetComputational(v int) *UserUpdateOne {
	_u.mutation.ResetComputational()
	_u.mutation.SetComputational(v)
	return _u
}

// SetNillableComputational sets the "computational" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableComputational(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetComputational(*v)
	}
	return _u
}

// AddComputational adds value to the "computational" field.
func (_u *UserUpdateOne) AddComputational(v int) *UserUpdateOne {
	_u.mutation.AddComputational(v)
	return _u
}

// SetCarelessness sets the "carelessness" field.
func (_u *UserUpdateOne) SetCarelessness(v int) *UserUpdateOne {
	_u.mutation.ResetCarelessness()
	_u.mutation.SetCarelessness(v)
	return _u
}

// SetNillableCarelessness sets the "carelessness" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCarelessness(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCarelessness(*v)
	}
	return _u
}

// AddCarelessness adds value to the "carelessness" field.
func (_u *UserUpdateOne) AddCarelessness(v int) *UserUpdateOne {
	_u.mutation.AddCarelessness(v)
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *UserUpdateOne) SetStrategy(v int) *UserUpdateOne {
	_u.mutation.ResetStrategy()
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStrategy(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// AddStrategy adds value to the "strategy" field.
func (_u *UserUpdateOne) AddStrategy(v int) *UserUpdateOne {
	_u.mutation.AddStrategy(v)
	return _u
}

// SetAttention sets the "attention" field.
func (_u *UserUpdateOne) SetAttention(v int) *UserUpdateOne {
	_u.mutation.ResetAttention()
	_u.mutation.SetAttention(v)
	return _u
}

// SetNillableAttention sets the "attention" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAttention(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetAttention(*v)
	}
	return _u
}

// AddAttention adds value to the "attention" field.
func (_u *UserUpdateOne) AddAttention(v int) *UserUpdateOne {
	_u.mutation.AddAttention(v)
	return _u
}

// SetSolvedTaskIds sets the "solved_task_ids" field.
func (_u *UserUpdateOne) SetSolvedTaskIds(v []string) *UserUpdateOne {
	_u.mutation.SetSolvedTaskIds(v)
	return _u
}

// AppendSolvedTaskIds appends value to the "solved_task_ids" field.
func (_u *UserUpdateOne) AppendSolvedTaskIds(v []string) *UserUpdateOne {
	_u.mutation.AppendSolvedTaskIds(v)
	return _u
}

// ClearSolvedTaskIds clears the value of the "solved_task_ids" field.
func (_u *UserUpdateOne) ClearSolvedTaskIds() *UserUpdateOne {
	_u.mutation.ClearSolvedTaskIds()
	return _u
}

// SetFailedTaskIds sets the "failed_task_ids" field.
func (_u *UserUpdateOne) SetFailedTaskIds(v []string) *UserUpdateOne {
	_u.mutation.SetFailedTaskIds(v)
	return _u
}

// AppendFailedTaskIds appends value to the "failed_task_ids" field.
func (_u *UserUpdateOne) AppendFailedTaskIds(v []string) *UserUpdateOne {
	_u.mutation.AppendFailedTaskIds(v)
	return _u
}

// ClearFailedTaskIds clears the value of the "failed_task_ids" field.
func (_u *UserUpdateOne) ClearFailedTaskIds() *UserUpdateOne {
	_u.mutation.ClearFailedTaskIds()
	return _u
}

// SetPlacementCompleted sets the "placement_completed" field.
func (_u *UserUpdateOne) SetPlacementCompleted(v bool) *UserUpdateOne {
	_u.mutation.SetPlacementCompleted(v)
	return _u
}

// SetNillablePlacementCompleted sets the "placement_completed" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePlacementCompleted(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetPlacementCompleted(*v)
	}
	return _u
}

// SetAssignedLevel sets the "assigned_level" field.
func (_u *UserUpdateOne) SetAssignedLevel(v string) *UserUpdateOne {
	_u.mutation.SetAssignedLevel(v)
	return _u
}

// SetNillableAssignedLevel sets the "assigned_level" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAssignedLevel(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetAssignedLevel(*v)
	}
	return _u
}

// SetAssignedGrade sets the "assigned_grade" field.
func (_u *UserUpdateOne) SetAssignedGrade(v int) *UserUpdateOne {
	_u.mutation.ResetAssignedGrade()
	_u.mutation.SetAssignedGrade(v)
	return _u
}

// SetNillableAssignedGrade sets the "assigned_grade" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAssignedGrade(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetAssignedGrade(*v)
	}
	return _u
}

// AddAssignedGrade adds value to the "assigned_grade" field.
func (_u *UserUpdateOne) AddAssignedGrade(v int) *UserUpdateOne {
	_u.mutation.AddAssignedGrade(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Logical(); ok {
		_spec.SetField(user.FieldLogical, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLogical(); ok {
		_spec.AddField(user.FieldLogical, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Computational(); ok {
		_spec.SetField(user.FieldComputational, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComputational(); ok {
		_spec.AddField(user.FieldComputational, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Carelessness(); ok {
		_spec.SetField(user.FieldCarelessness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCarelessness(); ok {
		_spec.AddField(user.FieldCarelessness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(user.FieldStrategy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategy(); ok {
		_spec.AddField(user.FieldStrategy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attention(); ok {
		_spec.SetField(user.FieldAttention, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttention(); ok {
		_spec.AddField(user.FieldAttention, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolvedTaskIds(); ok {
		_spec.SetField(user.FieldSolvedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSolvedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldSolvedTaskIds, value)
		})
	}
	if _u.mutation.SolvedTaskIdsCleared() {
		_spec.ClearField(user.FieldSolvedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailedTaskIds(); ok {
		_spec.SetField(user.FieldFailedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldFailedTaskIds, value)
		})
	}
	if _u.mutation.FailedTaskIdsCleared() {
		_spec.ClearField(user.FieldFailedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlacementCompleted(); ok {
		_spec.SetField(user.FieldPlacementCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedLevel(); ok {
		_spec.SetField(user.FieldAssignedLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedGrade(); ok {
		_spec.SetField(user.FieldAssignedGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedGrade(); ok {
		_spec.AddField(user.FieldAssignedGrade, field.TypeInt, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
