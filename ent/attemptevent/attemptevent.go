// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldLogicBreakPoint holds the string denoting the logic_break_point field in the database.
	FieldLogicBreakPoint = "logic_break_point"
	// FieldTrapTask holds the string denoting the trap_task field in the database.
	FieldTrapTask = "trap_task"
	// FieldAdvice holds the string denoting the advice field in the database.
	FieldAdvice = "advice"
	// FieldStepCount holds the string denoting the step_count field in the database.
	FieldStepCount = "step_count"
	// FieldTotalMs holds the string denoting the total_ms field in the database.
	FieldTotalMs = "total_ms"
	// FieldFallback holds the string denoting the fallback field in the database.
	FieldFallback = "fallback"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldTaskID,
	FieldErrorType,
	FieldLogicBreakPoint,
	FieldTrapTask,
	FieldAdvice,
	FieldStepCount,
	FieldTotalMs,
	FieldFallback,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	TaskIDValidator func(string) error
	// ErrorTypeValidator is a validator for the "error_type" field. It is called by the builders before save.
	ErrorTypeValidator func(string) error
	// DefaultLogicBreakPoint holds the default value on creation for the "logic_break_point" field.
	DefaultLogicBreakPoint string
	// DefaultTrapTask holds the default value on creation for the "trap_task" field.
	DefaultTrapTask string
	// DefaultAdvice holds the default value on creation for the "advice" field.
	DefaultAdvice string
	// DefaultStepCount holds the default value on creation for the "step_count" field.
	DefaultStepCount int
	// DefaultTotalMs holds the default value on creation for the "total_ms" field.
	DefaultTotalMs int64
	// DefaultFallback holds the default value on creation for the "fallback" field.
	DefaultFallback bool
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByLogicBreakPoint orders the results by the logic_break_point field.
func ByLogicBreakPoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicBreakPoint, opts...).ToFunc()
}

// ByTrapTask orders the results by the trap_task field.
func ByTrapTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrapTask, opts...).ToFunc()
}

// ByAdvice orders the results by the advice field.
func ByAdvice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdvice, opts...).ToFunc()
}

// ByStepCount orders the results by the step_count field.
func ByStepCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCount, opts...).ToFunc()
}

// ByTotalMs orders the results by the total_ms field.
func ByTotalMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMs, opts...).ToFunc()
}

// ByFallback orders the results by the fallback field.
func ByFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallback, opts...).ToFunc()
}
