// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/errormind/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Carelessness, Wrong Strategy, Logical, Computational, or Unknown
	ErrorType string `json:"error_type,omitempty"`
	// LogicBreakPoint holds the value of the "logic_break_point" field.
	LogicBreakPoint string `json:"logic_break_point,omitempty"`
	// TrapTask holds the value of the "trap_task" field.
	TrapTask string `json:"trap_task,omitempty"`
	// Advice holds the value of the "advice" field.
	Advice string `json:"advice,omitempty"`
	// StepCount holds the value of the "step_count" field.
	StepCount int `json:"step_count,omitempty"`
	// Wall-clock time from task open to submit
	TotalMs int64 `json:"total_ms,omitempty"`
	// True when the diagnostic is the canned fallback, not a model result
	Fallback     bool `json:"fallback,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldFallback:
			values[i] = new(sql.NullBool)
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldStepCount, attemptevent.FieldTotalMs:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldUserID, attemptevent.FieldTaskID, attemptevent.FieldErrorType, attemptevent.FieldLogicBreakPoint, attemptevent.FieldTrapTask, attemptevent.FieldAdvice:
			values[i] = new(sql.NullString)
		case attemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (_m *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case attemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case attemptevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case attemptevent.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case attemptevent.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case attemptevent.FieldLogicBreakPoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logic_break_point", values[i])
			} else if value.Valid {
				_m.LogicBreakPoint = value.String
			}
		case attemptevent.FieldTrapTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trap_task", values[i])
			} else if value.Valid {
				_m.TrapTask = value.String
			}
		case attemptevent.FieldAdvice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field advice", values[i])
			} else if value.Valid {
				_m.Advice = value.String
			}
		case attemptevent.FieldStepCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_count", values[i])
			} else if value.Valid {
				_m.StepCount = int(value.Int64)
			}
		case attemptevent.FieldTotalMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_ms", values[i])
			} else if value.Valid {
				_m.TotalMs = value.Int64
			}
		case attemptevent.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("logic_break_point=")
	builder.WriteString(_m.LogicBreakPoint)
	builder.WriteString(", ")
	builder.WriteString("trap_task=")
	builder.WriteString(_m.TrapTask)
	builder.WriteString(", ")
	builder.WriteString("advice=")
	builder.WriteString(_m.Advice)
	builder.WriteString(", ")
	builder.WriteString("step_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepCount))
	builder.WriteString(", ")
	builder.WriteString("total_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMs))
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent
