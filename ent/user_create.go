// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/errormind/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *UserCreate) SetName(v string) *UserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserCreate) SetPasswordHash(v string) *UserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetLogical sets the "logical" field.
func (_c *UserCreate) SetLogical(v int) *UserCreate {
	_c.mutation.SetLogical(v)
	return _c
}

// SetNillableLogical sets the "logical" field if the given value is not nil.
func (_c *UserCreate) SetNillableLogical(v *int) *UserCreate {
	if v != nil {
		_c.SetLogical(*v)
	}
	return _c
}

// SetComputational sets the "computational" field.
func (_c *UserCreate) SetComputational(v int) *UserCreate {
	_c.mutation.SetComputational(v)
	return _c
}

// SetNillableComputational sets the "computational" field if the given value is not nil.
func (_c *UserCreate) SetNillableComputational(v *int) *UserCreate {
	if v != nil {
		_c.SetComputational(*v)
	}
	return _c
}

// SetCarelessness sets the "carelessness" field.
func (_c *UserCreate) SetCarelessness(v int) *UserCreate {
	_c.mutation.SetCarelessness(v)
	return _c
}

// SetNillableCarelessness sets the "carelessness" field if the given value is not nil.
func (_c *UserCreate) SetNillableCarelessness(v *int) *UserCreate {
	if v != nil {
		_c.SetCarelessness(*v)
	}
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *UserCreate) SetStrategy(v int) *UserCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_c *UserCreate) SetNillableStrategy(v *int) *UserCreate {
	if v != nil {
		_c.SetStrategy(*v)
	}
	return _c
}

// SetAttention sets the "attention" field.
func (_c *UserCreate) SetAttention(v int) *UserCreate {
	_c.mutation.SetAttention(v)
	return _c
}

// SetNillableAttention sets the "attention" field if the given value is not nil.
func (_c *UserCreate) SetNillableAttention(v *int) *UserCreate {
	if v != nil {
		_c.SetAttention(*v)
	}
	return _c
}

// SetSolvedTaskIds sets the "solved_task_ids" field.
func (_c *UserCreate) SetSolvedTaskIds(v []string) *UserCreate {
	_c.mutation.SetSolvedTaskIds(v)
	return _c
}

// SetFailedTaskIds sets the "failed_task_ids" field.
func (_c *UserCreate) SetFailedTaskIds(v []string) *UserCreate {
	_c.mutation.SetFailedTaskIds(v)
	return _c
}

// SetPlacementCompleted sets the "placement_completed" field.
func (_c *UserCreate) SetPlacementCompleted(v bool) *UserCreate {
	_c.mutation.SetPlacementCompleted(v)
	return _c
}

// SetNillablePlacementCompleted sets the "placement_completed" field if the given value is not nil.
func (_c *UserCreate) SetNillablePlacementCompleted(v *bool) *UserCreate {
	if v != nil {
		_c.SetPlacementCompleted(*v)
	}
	return _c
}

// SetAssignedLevel sets the "assigned_level" field.
func (_c *UserCreate) SetAssignedLevel(v string) *UserCreate {
	_c.mutation.SetAssignedLevel(v)
	return _c
}

// SetNillableAssignedLevel sets the "assigned_level" field if the given value is not nil.
func (_c *UserCreate) SetNillableAssignedLevel(v *string) *UserCreate {
	if v != nil {
		_c.SetAssignedLevel(*v)
	}
	return _c
}

// SetAssignedGrade sets the "assigned_grade" field.
func (_c *UserCreate) SetAssignedGrade(v int) *UserCreate {
	_c.mutation.SetAssignedGrade(v)
	return _c
}

// SetNillableAssignedGrade sets the "assigned_grade" field if the given value is not nil.
func (_c *UserCreate) SetNillableAssignedGrade(v *int) *UserCreate {
	if v != nil {
		_c.SetAssignedGrade(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v string) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.Logical(); !ok {
		v := user.DefaultLogical
		_c.mutation.SetLogical(v)
	}
	if _, ok := _c.mutation.Computational(); !ok {
		v := user.DefaultComputational
		_c.mutation.SetComputational(v)
	}
	if _, ok := _c.mutation.Carelessness(); !ok {
		v := user.DefaultCarelessness
		_c.mutation.SetCarelessness(v)
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		v := user.DefaultStrategy
		_c.mutation.SetStrategy(v)
	}
	if _, ok := _c.mutation.Attention(); !ok {
		v := user.DefaultAttention
		_c.mutation.SetAttention(v)
	}
	if _, ok := _c.mutation.PlacementCompleted(); !ok {
		v := user.DefaultPlacementCompleted
		_c.mutation.SetPlacementCompleted(v)
	}
	if _, ok := _c.mutation.AssignedLevel(); !ok {
		v := user.DefaultAssignedLevel
		_c.mutation.SetAssignedLevel(v)
	}
	if _, ok := _c.mutation.AssignedGrade(); !ok {
		v := user.DefaultAssignedGrade
		_c.mutation.SetAssignedGrade(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "User.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "User.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`ent: missing required field "User.password_hash"`)}
	}
	if v, ok := _c.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Logical(); !ok {
		return &ValidationError{Name: "logical", err: errors.New(`ent: missing required field "User.logical"`)}
	}
	if _, ok := _c.mutation.Computational(); !ok {
		return &ValidationError{Name: "computational", err: errors.New(`ent: missing required field "User.computational"`)}
	}
	if _, ok := _c.mutation.Carelessness(); !ok {
		return &ValidationError{Name: "carelessness", err: errors.New(`ent: missing required field "User.carelessness"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "User.strategy"`)}
	}
	if _, ok := _c.mutation.Attention(); !ok {
		return &ValidationError{Name: "attention", err: errors.New(`ent: missing required field "User.attention"`)}
	}
	if _, ok := _c.mutation.PlacementCompleted(); !ok {
		return &ValidationError{Name: "placement_completed", err: errors.New(`ent: missing required field "User.placement_completed"`)}
	}
	if _, ok := _c.mutation.AssignedLevel(); !ok {
		return &ValidationError{Name: "assigned_level", err: errors.New(`ent: missing required field "User.assigned_level"`)}
	}
	if _, ok := _c.mutation.AssignedGrade(); !ok {
		return &ValidationError{Name: "assigned_grade", err: errors.New(`ent: missing required field "User.assigned_grade"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := user.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "User.id": %w`, err)}
		}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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
			return nil, fmt.Errorf("unexpected User.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.Logical(); ok {
		_spec.SetField(user.FieldLogical, field.TypeInt, value)
		_node.Logical = value
	}
	if value, ok := _c.mutation.Computational(); ok {
		_spec.SetField(user.FieldComputational, field.TypeInt, value)
		_node.Computational = value
	}
	if value, ok := _c.mutation.Carelessness(); ok {
		_spec.SetField(user.FieldCarelessness, field.TypeInt, value)
		_node.Carelessness = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(user.FieldStrategy, field.TypeInt, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Attention(); ok {
		_spec.SetField(user.FieldAttention, field.TypeInt, value)
		_node.Attention = value
	}
	if value, ok := _c.mutation.SolvedTaskIds(); ok {
		_spec.SetField(user.FieldSolvedTaskIds, field.TypeJSON, value)
		_node.SolvedTaskIds = value
	}
	if value, ok := _c.mutation.FailedTaskIds(); ok {
		_spec.SetField(user.FieldFailedTaskIds, field.TypeJSON, value)
		_node.FailedTaskIds = value
	}
	if value, ok := _c.mutation.PlacementCompleted(); ok {
		_spec.SetField(user.FieldPlacementCompleted, field.TypeBool, value)
		_node.PlacementCompleted = value
	}
	if value, ok := _c.mutation.AssignedLevel(); ok {
		_spec.SetField(user.FieldAssignedLevel, field.TypeString, value)
		_node.AssignedLevel = value
	}
	if value, ok := _c.mutation.AssignedGrade(); ok {
		_spec.SetField(user.FieldAssignedGrade, field.TypeInt, value)
		_node.AssignedGrade = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreate) OnConflict(opts ...sql.ConflictOption) *UserUpsertOne {
	_c.conflict = opts
	return &UserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertOne{
		create: _c,
	}
}

type (
	// UserUpsertOne is the builder for "upsert"-ing
	//  one User node.
	UserUpsertOne struct {
		create *UserCreate
	}

	// UserUpsert is the "OnConflict" setter.
	UserUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *UserUpsert) SetName(v string) *UserUpsert {
	u.Set(user.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsert) UpdateName() *UserUpsert {
	u.SetExcluded(user.FieldName)
	return u
}

// SetEmail sets the "email" field.
func (u *UserUpsert) SetEmail(v string) *UserUpsert {
	u.Set(user.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsert) UpdateEmail() *UserUpsert {
	u.SetExcluded(user.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsert) SetPasswordHash(v string) *UserUpsert {
	u.Set(user.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsert) UpdatePasswordHash() *UserUpsert {
	u.SetExcluded(user.FieldPasswordHash)
	return u
}

// SetLogical sets the "logical" field.
func (u *UserUpsert) SetLogical(v int) *UserUpsert {
	u.Set(user.FieldLogical, v)
	return u
}

// UpdateLogical sets the "logical" field to the value that was provided on create.
func (u *UserUpsert) UpdateLogical() *UserUpsert {
	u.SetExcluded(user.FieldLogical)
	return u
}

// AddLogical adds v to the "logical" field.
func (u *UserUpsert) AddLogical(v int) *UserUpsert {
	u.Add(user.FieldLogical, v)
	return u
}

// SetComputational sets the "computational" field.
func (u *UserUpsert) SetComputational(v int) *UserUpsert {
	u.Set(user.FieldComputational, v)
	return u
}

// UpdateComputational sets the "computational" field to the value that was provided on create.
func (u *UserUpsert) UpdateComputational() *UserUpsert {
	u.SetExcluded(user.FieldComputational)
	return u
}

// AddComputational adds v to the "computational" field.
func (u *UserUpsert) AddComputational(v int) *UserUpsert {
	u.Add(user.FieldComputational, v)
	return u
}

// SetCarelessness sets the "carelessness" field.
func (u *UserUpsert) SetCarelessness(v int) *UserUpsert {
	u.Set(user.FieldCarelessness, v)
	return u
}

// UpdateCarelessness sets the "carelessness" field to the value that was provided on create.
func (u *UserUpsert) UpdateCarelessness() *UserUpsert {
	u.SetExcluded(user.FieldCarelessness)
	return u
}

// AddCarelessness adds v to the "carelessness" field.
func (u *UserUpsert) AddCarelessness(v int) *UserUpsert {
	u.Add(user.FieldCarelessness, v)
	return u
}

// SetStrategy sets the "strategy" field.
func (u *UserUpsert) SetStrategy(v int) *UserUpsert {
	u.Set(user.FieldStrategy, v)
	return u
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *UserUpsert) UpdateStrategy() *UserUpsert {
	u.SetExcluded(user.FieldStrategy)
	return u
}

// AddStrategy adds v to the "strategy" field.
func (u *UserUpsert) AddStrategy(v int) *UserUpsert {
	u.Add(user.FieldStrategy, v)
	return u
}

// SetAttention sets the "attention" field.
func (u *UserUpsert) SetAttention(v int) *UserUpsert {
	u.Set(user.FieldAttention, v)
	return u
}

// UpdateAttention sets the "attention" field to the value that was provided on create.
func (u *UserUpsert) UpdateAttention() *UserUpsert {
	u.SetExcluded(user.FieldAttention)
	return u
}

// AddAttention adds v to the "attention" field.
func (u *UserUpsert) AddAttention(v int) *UserUpsert {
	u.Add(user.FieldAttention, v)
	return u
}

// SetSolvedTaskIds sets the "solved_task_ids" field.
func (u *UserUpsert) SetSolvedTaskIds(v []string) *UserUpsert {
	u.Set(user.FieldSolvedTaskIds, v)
	return u
}

// UpdateSolvedTaskIds sets the "solved_task_ids" field to the value that was provided on create.
func (u *UserUpsert) UpdateSolvedTaskIds() *UserUpsert {
	u.SetExcluded(user.FieldSolvedTaskIds)
	return u
}

// ClearSolvedTaskIds clears the value of the "solved_task_ids" field.
func (u *UserUpsert) ClearSolvedTaskIds() *UserUpsert {
	u.SetNull(user.FieldSolvedTaskIds)
	return u
}

// SetFailedTaskIds sets the "failed_task_ids" field.
func (u *UserUpsert) SetFailedTaskIds(v []string) *UserUpsert {
	u.Set(user.FieldFailedTaskIds, v)
	return u
}

// UpdateFailedTaskIds sets the "failed_task_ids" field to the value that was provided on create.
func (u *UserUpsert) UpdateFailedTaskIds() *UserUpsert {
	u.SetExcluded(user.FieldFailedTaskIds)
	return u
}

// ClearFailedTaskIds clears the value of the "failed_task_ids" field.
func (u *UserUpsert) ClearFailedTaskIds() *UserUpsert {
	u.SetNull(user.FieldFailedTaskIds)
	return u
}

// SetPlacementCompleted sets the "placement_completed" field.
func (u *UserUpsert) SetPlacementCompleted(v bool) *UserUpsert {
	u.Set(user.FieldPlacementCompleted, v)
	return u
}

// UpdatePlacementCompleted sets the "placement_completed" field to the value that was provided on create.
func (u *UserUpsert) UpdatePlacementCompleted() *UserUpsert {
	u.SetExcluded(user.FieldPlacementCompleted)
	return u
}

// SetAssignedLevel sets the "assigned_level" field.
func (u *UserUpsert) SetAssignedLevel(v string) *UserUpsert {
	u.Set(user.FieldAssignedLevel, v)
	return u
}

// UpdateAssignedLevel sets the "assigned_level" field to the value that was provided on create.
func (u *UserUpsert) UpdateAssignedLevel() *UserUpsert {
	u.SetExcluded(user.FieldAssignedLevel)
	return u
}

// SetAssignedGrade sets the "assigned_grade" field.
func (u *UserUpsert) SetAssignedGrade(v int) *UserUpsert {
	u.Set(user.FieldAssignedGrade, v)
	return u
}

// UpdateAssignedGrade sets the "assigned_grade" field to the value that was provided on create.
func (u *UserUpsert) UpdateAssignedGrade() *UserUpsert {
	u.SetExcluded(user.FieldAssignedGrade)
	return u
}

// AddAssignedGrade adds v to the "assigned_grade" field.
func (u *UserUpsert) AddAssignedGrade(v int) *UserUpsert {
	u.Add(user.FieldAssignedGrade, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(user.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(user.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertOne) DoNothing() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreate.OnConflict
// documentation for more info.
func (u *UserUpsertOne) Update(set func(*UserUpsert)) *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *UserUpsertOne) SetName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertOne) SetEmail(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateEmail() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsertOne) SetPasswordHash(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsertOne) UpdatePasswordHash() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetLogical sets the "logical" field.
func (u *UserUpsertOne) SetLogical(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLogical(v)
	})
}

// AddLogical adds v to the "logical" field.
func (u *UserUpsertOne) AddLogical(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddLogical(v)
	})
}

// UpdateLogical sets the "logical" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLogical() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLogical()
	})
}

// SetComputational sets the "computational" field.
func (u *UserUpsertOne) SetComputational(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetComputational(v)
	})
}

// AddComputational adds v to the "computational" field.
func (u *UserUpsertOne) AddComputational(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddComputational(v)
	})
}

// UpdateComputational sets the "computational" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateComputational() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateComputational()
	})
}

// SetCarelessness sets the "carelessness" field.
func (u *UserUpsertOne) SetCarelessness(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetCarelessness(v)
	})
}

// AddCarelessness adds v to the "carelessness" field.
func (u *UserUpsertOne) AddCarelessness(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddCarelessness(v)
	})
}

// UpdateCarelessness sets the "carelessness" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateCarelessness() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCarelessness()
	})
}

// SetStrategy sets the "strategy" field.
func (u *UserUpsertOne) SetStrategy(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetStrategy(v)
	})
}

// AddStrategy adds v to the "strategy" field.
func (u *UserUpsertOne) AddStrategy(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateStrategy() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateStrategy()
	})
}

// SetAttention sets the "attention" field.
func (u *UserUpsertOne) SetAttention(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetAttention(v)
	})
}

// AddAttention adds v to the "attention" field.
func (u *UserUpsertOne) AddAttention(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddAttention(v)
	})
}

// UpdateAttention sets the "attention" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateAttention() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAttention()
	})
}

// SetSolvedTaskIds sets the "solved_task_ids" field.
func (u *UserUpsertOne) SetSolvedTaskIds(v []string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetSolvedTaskIds(v)
	})
}

// UpdateSolvedTaskIds sets the "solved_task_ids" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateSolvedTaskIds() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateSolvedTaskIds()
	})
}

// ClearSolvedTaskIds clears the value of the "solved_task_ids" field.
func (u *UserUpsertOne) ClearSolvedTaskIds() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearSolvedTaskIds()
	})
}

// SetFailedTaskIds sets the "failed_task_ids" field.
func (u *UserUpsertOne) SetFailedTaskIds(v []string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetFailedTaskIds(v)
	})
}

// UpdateFailedTaskIds sets the "failed_task_ids" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateFailedTaskIds() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFailedTaskIds()
	})
}

// ClearFailedTaskIds clears the value of the "failed_task_ids" field.
func (u *UserUpsertOne) ClearFailedTaskIds() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearFailedTaskIds()
	})
}

// SetPlacementCompleted sets the "placement_completed" field.
func (u *UserUpsertOne) SetPlacementCompleted(v bool) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetPlacementCompleted(v)
	})
}

// UpdatePlacementCompleted sets the "placement_completed" field to the value that was provided on create.
func (u *UserUpsertOne) UpdatePlacementCompleted() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePlacementCompleted()
	})
}

// SetAssignedLevel sets the "assigned_level" field.
func (u *UserUpsertOne) SetAssignedLevel(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetAssignedLevel(v)
	})
}

// UpdateAssignedLevel sets the "assigned_level" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateAssignedLevel() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAssignedLevel()
	})
}

// SetAssignedGrade sets the "assigned_grade" field.
func (u *UserUpsertOne) SetAssignedGrade(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetAssignedGrade(v)
	})
}

// AddAssignedGrade adds v to the "assigned_grade" field.
func (u *UserUpsertOne) AddAssignedGrade(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddAssignedGrade(v)
	})
}

// UpdateAssignedGrade sets the "assigned_grade" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateAssignedGrade() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAssignedGrade()
	})
}

// Exec executes the query.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserUpsertOne.ID is not supported by MySQL driver. Use UserUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
	conflict []sql.ConflictOption
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserUpsertBulk {
	_c.conflict = opts
	return &UserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflictColumns(columns ...string) *UserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertBulk{
		create: _c,
	}
}

// UserUpsertBulk is the builder for "upsert"-ing
// a bulk of User nodes.
type UserUpsertBulk struct {
	create *UserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertBulk) UpdateNewValues() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(user.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(user.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserUpsertBulk) Ignore() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertBulk) DoNothing() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreateBulk.OnConflict
// documentation for more info.
func (u *UserUpsertBulk) Update(set func(*UserUpsert)) *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *UserUpsertBulk) SetName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertBulk) SetEmail(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateEmail() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsertBulk) SetPasswordHash(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdatePasswordHash() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetLogical sets the "logical" field.
func (u *UserUpsertBulk) SetLogical(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLogical(v)
	})
}

// AddLogical adds v to the "logical" field.
func (u *UserUpsertBulk) AddLogical(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddLogical(v)
	})
}

// UpdateLogical sets the "logical" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLogical() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLogical()
	})
}

// SetComputational sets the "computational" field.
func (u *UserUpsertBulk) SetComputational(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetComputational(v)
	})
}

// AddComputational adds v to the "computational" field.
func (u *UserUpsertBulk) AddComputational(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddComputational(v)
	})
}

// UpdateComputational sets the "computational" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateComputational() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateComputational()
	})
}

// SetCarelessness sets the "carelessness" field.
func (u *UserUpsertBulk) SetCarelessness(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetCarelessness(v)
	})
}

// AddCarelessness adds v to the "carelessness" field.
func (u *UserUpsertBulk) AddCarelessness(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddCarelessness(v)
	})
}

// UpdateCarelessness sets the "carelessness" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateCarelessness() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCarelessness()
	})
}

// SetStrategy sets the "strategy" field.
func (u *UserUpsertBulk) SetStrategy(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetStrategy(v)
	})
}

// AddStrategy adds v to the "strategy" field.
func (u *UserUpsertBulk) AddStrategy(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateStrategy() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateStrategy()
	})
}

// SetAttention sets the "attention" field.
func (u *UserUpsertBulk) SetAttention(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetAttention(v)
	})
}

// AddAttention adds v to the "attention" field.
func (u *UserUpsertBulk) AddAttention(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddAttention(v)
	})
}

// UpdateAttention sets the "attention" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateAttention() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAttention()
	})
}

// SetSolvedTaskIds sets the "solved_task_ids" field.
func (u *UserUpsertBulk) SetSolvedTaskIds(v []string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetSolvedTaskIds(v)
	})
}

// UpdateSolvedTaskIds sets the "solved_task_ids" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateSolvedTaskIds() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateSolvedTaskIds()
	})
}

// ClearSolvedTaskIds clears the value of the "solved_task_ids" field.
func (u *UserUpsertBulk) ClearSolvedTaskIds() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearSolvedTaskIds()
	})
}

// SetFailedTaskIds sets the "failed_task_ids" field.
func (u *UserUpsertBulk) SetFailedTaskIds(v []string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetFailedTaskIds(v)
	})
}

// UpdateFailedTaskIds sets the "failed_task_ids" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateFailedTaskIds() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFailedTaskIds()
	})
}

// ClearFailedTaskIds clears the value of the "failed_task_ids" field.
func (u *UserUpsertBulk) ClearFailedTaskIds() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearFailedTaskIds()
	})
}

// SetPlacementCompleted sets the "placement_completed" field.
func (u *UserUpsertBulk) SetPlacementCompleted(v bool) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetPlacementCompleted(v)
	})
}

// UpdatePlacementCompleted sets the "placement_completed" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdatePlacementCompleted() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePlacementCompleted()
	})
}

// SetAssignedLevel sets the "assigned_level" field.
func (u *UserUpsertBulk) SetAssignedLevel(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetAssignedLevel(v)
	})
}

// UpdateAssignedLevel sets the "assigned_level" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateAssignedLevel() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAssignedLevel()
	})
}

// SetAssignedGrade sets the "assigned_grade" field.
func (u *UserUpsertBulk) SetAssignedGrade(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetAssignedGrade(v)
	})
}

// AddAssignedGrade adds v to the "assigned_grade" field.
func (u *UserUpsertBulk) AddAssignedGrade(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddAssignedGrade(v)
	})
}

// UpdateAssignedGrade sets the "assigned_grade" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateAssignedGrade() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateAssignedGrade()
	})
}

// Exec executes the query.
func (u *UserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
