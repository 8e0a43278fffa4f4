// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/errormind/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at registration
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Normalized (trimmed, lower-cased) at registration
	Email string `json:"email,omitempty"`
	// bcrypt hash of the credential
	PasswordHash string `json:"-"`
	// Logical holds the value of the "logical" field.
	Logical int `json:"logical,omitempty"`
	// Computational holds the value of the "computational" field.
	Computational int `json:"computational,omitempty"`
	// Carelessness holds the value of the "carelessness" field.
	Carelessness int `json:"carelessness,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy int `json:"strategy,omitempty"`
	// Attention holds the value of the "attention" field.
	Attention int `json:"attention,omitempty"`
	// SolvedTaskIds holds the value of the "solved_task_ids" field.
	SolvedTaskIds []string `json:"solved_task_ids,omitempty"`
	// FailedTaskIds holds the value of the "failed_task_ids" field.
	FailedTaskIds []string `json:"failed_task_ids,omitempty"`
	// PlacementCompleted holds the value of the "placement_completed" field.
	PlacementCompleted bool `json:"placement_completed,omitempty"`
	// AssignedLevel holds the value of the "assigned_level" field.
	AssignedLevel string `json:"assigned_level,omitempty"`
	// AssignedGrade holds the value of the "assigned_grade" field.
	AssignedGrade int `json:"assigned_grade,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldSolvedTaskIds, user.FieldFailedTaskIds:
			values[i] = new([]byte)
		case user.FieldPlacementCompleted:
			values[i] = new(sql.NullBool)
		case user.FieldLogical, user.FieldComputational, user.FieldCarelessness, user.FieldStrategy, user.FieldAttention, user.FieldAssignedGrade:
			values[i] = new(sql.NullInt64)
		case user.FieldID, user.FieldName, user.FieldEmail, user.FieldPasswordHash, user.FieldAssignedLevel:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldLogical:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field logical", values[i])
			} else if value.Valid {
				_m.Logical = int(value.Int64)
			}
		case user.FieldComputational:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field computational", values[i])
			} else if value.Valid {
				_m.Computational = int(value.Int64)
			}
		case user.FieldCarelessness:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field carelessness", values[i])
			} else if value.Valid {
				_m.Carelessness = int(value.Int64)
			}
		case user.FieldStrategy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = int(value.Int64)
			}
		case user.FieldAttention:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attention", values[i])
			} else if value.Valid {
				_m.Attention = int(value.Int64)
			}
		case user.FieldSolvedTaskIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field solved_task_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SolvedTaskIds); err != nil {
					return fmt.Errorf("unmarshal field solved_task_ids: %w", err)
				}
			}
		case user.FieldFailedTaskIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_task_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedTaskIds); err != nil {
					return fmt.Errorf("unmarshal field failed_task_ids: %w", err)
				}
			}
		case user.FieldPlacementCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field placement_completed", values[i])
			} else if value.Valid {
				_m.PlacementCompleted = value.Bool
			}
		case user.FieldAssignedLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_level", values[i])
			} else if value.Valid {
				_m.AssignedLevel = value.String
			}
		case user.FieldAssignedGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_grade", values[i])
			} else if value.Valid {
				_m.AssignedGrade = int(value.Int64)
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("logical=")
	builder.WriteString(fmt.Sprintf("%v", _m.Logical))
	builder.WriteString(", ")
	builder.WriteString("computational=")
	builder.WriteString(fmt.Sprintf("%v", _m.Computational))
	builder.WriteString(", ")
	builder.WriteString("carelessness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Carelessness))
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	builder.WriteString("attention=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attention))
	builder.WriteString(", ")
	builder.WriteString("solved_task_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SolvedTaskIds))
	builder.WriteString(", ")
	builder.WriteString("failed_task_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedTaskIds))
	builder.WriteString(", ")
	builder.WriteString("placement_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlacementCompleted))
	builder.WriteString(", ")
	builder.WriteString("assigned_level=")
	builder.WriteString(_m.AssignedLevel)
	builder.WriteString(", ")
	builder.WriteString("assigned_grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedGrade))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
