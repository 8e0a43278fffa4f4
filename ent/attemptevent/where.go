// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/errormind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTaskID, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldErrorType, v))
}

// LogicBreakPoint applies equality check predicate on the "logic_break_point" field. It's identical to LogicBreakPointEQ.
func LogicBreakPoint(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldLogicBreakPoint, v))
}

// TrapTask applies equality check predicate on the "trap_task" field. It's identical to TrapTaskEQ.
func TrapTask(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTrapTask, v))
}

// Advice applies equality check predicate on the "advice" field. It's identical to AdviceEQ.
func Advice(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldAdvice, v))
}

// StepCount applies equality check predicate on the "step_count" field. It's identical to StepCountEQ.
func StepCount(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldStepCount, v))
}

// TotalMs applies equality check predicate on the "total_ms" field. It's identical to TotalMsEQ.
func TotalMs(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTotalMs, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldFallback, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldTaskID, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldErrorType, v))
}

// LogicBreakPointEQ applies the EQ predicate on the "logic_break_point" field.
func LogicBreakPointEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldLogicBreakPoint, v))
}

// LogicBreakPointNEQ applies the NEQ predicate on the "logic_break_point" field.
func LogicBreakPointNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldLogicBreakPoint, v))
}

// LogicBreakPointIn applies the In predicate on the "logic_break_point" field.
func LogicBreakPointIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldLogicBreakPoint, vs...))
}

// LogicBreakPointNotIn applies the NotIn predicate on the "logic_break_point" field.
func LogicBreakPointNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldLogicBreakPoint, vs...))
}

// LogicBreakPointGT applies the GT predicate on the "logic_break_point" field.
func LogicBreakPointGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldLogicBreakPoint, v))
}

// LogicBreakPointGTE applies the GTE predicate on the "logic_break_point" field.
func LogicBreakPointGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldLogicBreakPoint, v))
}

// LogicBreakPointLT applies the LT predicate on the "logic_break_point" field.
func LogicBreakPointLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldLogicBreakPoint, v))
}

// LogicBreakPointLTE applies the LTE predicate on the "logic_break_point" field.
func LogicBreakPointLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldLogicBreakPoint, v))
}

// LogicBreakPointContains applies the Contains predicate on the "logic_break_point" field.
func LogicBreakPointContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldLogicBreakPoint, v))
}

// LogicBreakPointHasPrefix applies the HasPrefix predicate on the "logic_break_point" field.
func LogicBreakPointHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldLogicBreakPoint, v))
}

// LogicBreakPointHasSuffix applies the HasSuffix predicate on the "logic_break_point" field.
func LogicBreakPointHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldLogicBreakPoint, v))
}

// LogicBreakPointEqualFold applies the EqualFold predicate on the "logic_break_point" field.
func LogicBreakPointEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldLogicBreakPoint, v))
}

// LogicBreakPointContainsFold applies the ContainsFold predicate on the "logic_break_point" field.
func LogicBreakPointContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldLogicBreakPoint, v))
}

// TrapTaskEQ applies the EQ predicate on the "trap_task" field.
func TrapTaskEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTrapTask, v))
}

// TrapTaskNEQ applies the NEQ predicate on the "trap_task" field.
func TrapTaskNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTrapTask, v))
}

// TrapTaskIn applies the In predicate on the "trap_task" field.
func TrapTaskIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTrapTask, vs...))
}

// TrapTaskNotIn applies the NotIn predicate on the "trap_task" field.
func TrapTaskNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTrapTask, vs...))
}

// TrapTaskGT applies the GT predicate on the "trap_task" field.
func TrapTaskGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTrapTask, v))
}

// TrapTaskGTE applies the GTE predicate on the "trap_task" field.
func TrapTaskGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTrapTask, v))
}

// TrapTaskLT applies the LT predicate on the "trap_task" field.
func TrapTaskLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTrapTask, v))
}

// TrapTaskLTE applies the LTE predicate on the "trap_task" field.
func TrapTaskLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTrapTask, v))
}

// TrapTaskContains applies the Contains predicate on the "trap_task" field.
func TrapTaskContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldTrapTask, v))
}

// TrapTaskHasPrefix applies the HasPrefix predicate on the "trap_task" field.
func TrapTaskHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldTrapTask, v))
}

// TrapTaskHasSuffix applies the HasSuffix predicate on the "trap_task" field.
func TrapTaskHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldTrapTask, v))
}

// TrapTaskEqualFold applies the EqualFold predicate on the "trap_task" field.
func TrapTaskEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldTrapTask, v))
}

// TrapTaskContainsFold applies the ContainsFold predicate on the "trap_task" field.
func TrapTaskContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldTrapTask, v))
}

// AdviceEQ applies the EQ predicate on the "advice" field.
func AdviceEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldAdvice, v))
}

// AdviceNEQ applies the NEQ predicate on the "advice" field.
func AdviceNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldAdvice, v))
}

// AdviceIn applies the In predicate on the "advice" field.
func AdviceIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldAdvice, vs...))
}

// AdviceNotIn applies the NotIn predicate on the "advice" field.
func AdviceNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldAdvice, vs...))
}

// AdviceGT applies the GT predicate on the "advice" field.
func AdviceGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldAdvice, v))
}

// AdviceGTE applies the GTE predicate on the "advice" field.
func AdviceGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldAdvice, v))
}

// AdviceLT applies the LT predicate on the "advice" field.
func AdviceLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldAdvice, v))
}

// AdviceLTE applies the LTE predicate on the "advice" field.
func AdviceLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldAdvice, v))
}

// AdviceContains applies the Contains predicate on the "advice" field.
func AdviceContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldAdvice, v))
}

// AdviceHasPrefix applies the HasPrefix predicate on the "advice" field.
func AdviceHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldAdvice, v))
}

// AdviceHasSuffix applies the HasSuffix predicate on the "advice" field.
func AdviceHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldAdvice, v))
}

// AdviceEqualFold applies the EqualFold predicate on the "advice" field.
func AdviceEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldAdvice, v))
}

// AdviceContainsFold applies the ContainsFold predicate on the "advice" field.
func AdviceContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldAdvice, v))
}

// StepCountEQ applies the EQ predicate on the "step_count" field.
func StepCountEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldStepCount, v))
}

// StepCountNEQ applies the NEQ predicate on the "step_count" field.
func StepCountNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldStepCount, v))
}

// StepCountIn applies the In predicate on the "step_count" field.
func StepCountIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldStepCount, vs...))
}

// StepCountNotIn applies the NotIn predicate on the "step_count" field.
func StepCountNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldStepCount, vs...))
}

// StepCountGT applies the GT predicate on the "step_count" field.
func StepCountGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldStepCount, v))
}

// StepCountGTE applies the GTE predicate on the "step_count" field.
func StepCountGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldStepCount, v))
}

// StepCountLT applies the LT predicate on the "step_count" field.
func StepCountLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldStepCount, v))
}

// StepCountLTE applies the LTE predicate on the "step_count" field.
func StepCountLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldStepCount, v))
}

// TotalMsEQ applies the EQ predicate on the "total_ms" field.
func TotalMsEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTotalMs, v))
}

// TotalMsNEQ applies the NEQ predicate on the "total_ms" field.
func TotalMsNEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTotalMs, v))
}

// TotalMsIn applies the In predicate on the "total_ms" field.
func TotalMsIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTotalMs, vs...))
}

// TotalMsNotIn applies the NotIn predicate on the "total_ms" field.
func TotalMsNotIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTotalMs, vs...))
}

// TotalMsGT applies the GT predicate on the "total_ms" field.
func TotalMsGT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTotalMs, v))
}

// TotalMsGTE applies the GTE predicate on the "total_ms" field.
func TotalMsGTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTotalMs, v))
}

// TotalMsLT applies the LT predicate on the "total_ms" field.
func TotalMsLT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTotalMs, v))
}

// TotalMsLTE applies the LTE predicate on the "total_ms" field.
func TotalMsLTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTotalMs, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldFallback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.NotPredicates(p))
}
