// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/errormind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// Logical applies equality check predicate on the "logical" field. It's identical to LogicalEQ.
func Logical(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLogical, v))
}

// Computational applies equality check predicate on the "computational" field. It's identical to ComputationalEQ.
func Computational(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldComputational, v))
}

// Carelessness applies equality check predicate on the "carelessness" field. It's identical to CarelessnessEQ.
func Carelessness(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCarelessness, v))
}

// Strategy applies equality check predicate on the "strategy" field. It's identical to StrategyEQ.
func Strategy(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStrategy, v))
}

// Attention applies equality check predicate on the "attention" field. It's identical to AttentionEQ.
func Attention(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAttention, v))
}

// PlacementCompleted applies equality check predicate on the "placement_completed" field. It's identical to PlacementCompletedEQ.
func PlacementCompleted(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPlacementCompleted, v))
}

// AssignedLevel applies equality check predicate on the "assigned_level" field. It's identical to AssignedLevelEQ.
func AssignedLevel(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssignedLevel, v))
}

// AssignedGrade applies equality check predicate on the "assigned_grade" field. It's identical to AssignedGradeEQ.
func AssignedGrade(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssignedGrade, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// LogicalEQ applies the EQ predicate on the "logical" field.
func LogicalEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLogical, v))
}

// LogicalNEQ applies the NEQ predicate on the "logical" field.
func LogicalNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLogical, v))
}

// LogicalIn applies the In predicate on the "logical" field.
func LogicalIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldLogical, vs...))
}

// LogicalNotIn applies the NotIn predicate on the "logical" field.
func LogicalNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLogical, vs...))
}

// LogicalGT applies the GT predicate on the "logical" field.
func LogicalGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldLogical, v))
}

// LogicalGTE applies the GTE predicate on the "logical" field.
func LogicalGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLogical, v))
}

// LogicalLT applies the LT predicate on the "logical" field.
func LogicalLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldLogical, v))
}

// LogicalLTE applies the LTE predicate on the "logical" field.
func LogicalLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLogical, v))
}

// ComputationalEQ applies the EQ predicate on the "computational" field.
func ComputationalEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldComputational, v))
}

// ComputationalNEQ applies the NEQ predicate on the "computational" field.
func ComputationalNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldComputational, v))
}

// ComputationalIn applies the In predicate on the "computational" field.
func ComputationalIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldComputational, vs...))
}

// ComputationalNotIn applies the NotIn predicate on the "computational" field.
func ComputationalNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldComputational, vs...))
}

// ComputationalGT applies the GT predicate on the "computational" field.
func ComputationalGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldComputational, v))
}

// ComputationalGTE applies the GTE predicate on the "computational" field.
func ComputationalGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldComputational, v))
}

// ComputationalLT applies the LT predicate on the "computational" field.
func ComputationalLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldComputational, v))
}

// ComputationalLTE applies the LTE predicate on the "computational" field.
func ComputationalLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldComputational, v))
}

// CarelessnessEQ applies the EQ predicate on the "carelessness" field.
func CarelessnessEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCarelessness, v))
}

// CarelessnessNEQ applies the NEQ predicate on the "carelessness" field.
func CarelessnessNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCarelessness, v))
}

// CarelessnessIn applies the In predicate on the "carelessness" field.
func CarelessnessIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCarelessness, vs...))
}

// CarelessnessNotIn applies the NotIn predicate on the "carelessness" field.
func CarelessnessNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCarelessness, vs...))
}

// CarelessnessGT applies the GT predicate on the "carelessness" field.
func CarelessnessGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCarelessness, v))
}

// CarelessnessGTE applies the GTE predicate on the "carelessness" field.
func CarelessnessGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCarelessness, v))
}

// CarelessnessLT applies the LT predicate on the "carelessness" field.
func CarelessnessLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCarelessness, v))
}

// CarelessnessLTE applies the LTE predicate on the "carelessness" field.
func CarelessnessLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCarelessness, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStrategy, vs...))
}

// StrategyGT applies the GT predicate on the "strategy" field.
func StrategyGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldStrategy, v))
}

// StrategyGTE applies the GTE predicate on the "strategy" field.
func StrategyGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldStrategy, v))
}

// StrategyLT applies the LT predicate on the "strategy" field.
func StrategyLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldStrategy, v))
}

// StrategyLTE applies the LTE predicate on the "strategy" field.
func StrategyLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldStrategy, v))
}

// AttentionEQ applies the EQ predicate on the "attention" field.
func AttentionEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAttention, v))
}

// AttentionNEQ applies the NEQ predicate on the "attention" field.
func AttentionNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAttention, v))
}

// AttentionIn applies the In predicate on the "attention" field.
func AttentionIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldAttention, vs...))
}

// AttentionNotIn applies the NotIn predicate on the "attention" field.
func AttentionNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAttention, vs...))
}

// AttentionGT applies the GT predicate on the "attention" field.
func AttentionGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldAttention, v))
}

// AttentionGTE applies the GTE predicate on the "attention" field.
func AttentionGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAttention, v))
}

// AttentionLT applies the LT predicate on the "attention" field.
func AttentionLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldAttention, v))
}

// AttentionLTE applies the LTE predicate on the "attention" field.
func AttentionLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAttention, v))
}

// SolvedTaskIdsIsNil applies the IsNil predicate on the "solved_task_ids" field.
func SolvedTaskIdsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSolvedTaskIds))
}

// SolvedTaskIdsNotNil applies the NotNil predicate on the "solved_task_ids" field.
func SolvedTaskIdsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSolvedTaskIds))
}

// FailedTaskIdsIsNil applies the IsNil predicate on the "failed_task_ids" field.
func FailedTaskIdsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldFailedTaskIds))
}

// FailedTaskIdsNotNil applies the NotNil predicate on the "failed_task_ids" field.
func FailedTaskIdsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldFailedTaskIds))
}

// PlacementCompletedEQ applies the EQ predicate on the "placement_completed" field.
func PlacementCompletedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPlacementCompleted, v))
}

// PlacementCompletedNEQ applies the NEQ predicate on the "placement_completed" field.
func PlacementCompletedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPlacementCompleted, v))
}

// AssignedLevelEQ applies the EQ predicate on the "assigned_level" field.
func AssignedLevelEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssignedLevel, v))
}

// AssignedLevelNEQ applies the NEQ predicate on the "assigned_level" field.
func AssignedLevelNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAssignedLevel, v))
}

// AssignedLevelIn applies the In predicate on the "assigned_level" field.
func AssignedLevelIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldAssignedLevel, vs...))
}

// AssignedLevelNotIn applies the NotIn predicate on the "assigned_level" field.
func AssignedLevelNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAssignedLevel, vs...))
}

// AssignedLevelGT applies the GT predicate on the "assigned_level" field.
func AssignedLevelGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldAssignedLevel, v))
}

// AssignedLevelGTE applies the GTE predicate on the "assigned_level" field.
func AssignedLevelGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAssignedLevel, v))
}

// AssignedLevelLT applies the LT predicate on the "assigned_level" field.
func AssignedLevelLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldAssignedLevel, v))
}

// AssignedLevelLTE applies the LTE predicate on the "assigned_level" field.
func AssignedLevelLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAssignedLevel, v))
}

// AssignedLevelContains applies the Contains predicate on the "assigned_level" field.
func AssignedLevelContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldAssignedLevel, v))
}

// AssignedLevelHasPrefix applies the HasPrefix predicate on the "assigned_level" field.
func AssignedLevelHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldAssignedLevel, v))
}

// AssignedLevelHasSuffix applies the HasSuffix predicate on the "assigned_level" field.
func AssignedLevelHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldAssignedLevel, v))
}

// AssignedLevelEqualFold applies the EqualFold predicate on the "assigned_level" field.
func AssignedLevelEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldAssignedLevel, v))
}

// AssignedLevelContainsFold applies the ContainsFold predicate on the "assigned_level" field.
func AssignedLevelContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldAssignedLevel, v))
}

// AssignedGradeEQ applies the EQ predicate on the "assigned_grade" field.
func AssignedGradeEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssignedGrade, v))
}

// AssignedGradeNEQ applies the NEQ predicate on the "assigned_grade" field.
func AssignedGradeNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAssignedGrade, v))
}

// AssignedGradeIn applies the In predicate on the "assigned_grade" field.
func AssignedGradeIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldAssignedGrade, vs...))
}

// AssignedGradeNotIn applies the NotIn predicate on the "assigned_grade" field.
func AssignedGradeNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAssignedGrade, vs...))
}

// AssignedGradeGT applies the GT predicate on the "assigned_grade" field.
func AssignedGradeGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldAssignedGrade, v))
}

// AssignedGradeGTE applies the GTE predicate on the "assigned_grade" field.
func AssignedGradeGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAssignedGrade, v))
}

// AssignedGradeLT applies the LT predicate on the "assigned_grade" field.
func AssignedGradeLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldAssignedGrade, v))
}

// AssignedGradeLTE applies the LTE predicate on the "assigned_grade" field.
func AssignedGradeLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAssignedGrade, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
