// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldLogical holds the string denoting the logical field in the database.
	FieldLogical = "logical"
	// FieldComputational holds the string denoting the computational field in the database.
	FieldComputational = "computational"
	// FieldCarelessness holds the string denoting the carelessness field in the database.
	FieldCarelessness = "carelessness"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldAttention holds the string denoting the attention field in the database.
	FieldAttention = "attention"
	// FieldSolvedTaskIds holds the string denoting the solved_task_ids field in the database.
	FieldSolvedTaskIds = "solved_task_ids"
	// FieldFailedTaskIds holds the string denoting the failed_task_ids field in the database.
	FieldFailedTaskIds = "failed_task_ids"
	// FieldPlacementCompleted holds the string denoting the placement_completed field in the database.
	FieldPlacementCompleted = "placement_completed"
	// FieldAssignedLevel holds the string denoting the assigned_level field in the database.
	FieldAssignedLevel = "assigned_level"
	// FieldAssignedGrade holds the string denoting the assigned_grade field in the database.
	FieldAssignedGrade = "assigned_grade"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldPasswordHash,
	FieldLogical,
	FieldComputational,
	FieldCarelessness,
	FieldStrategy,
	FieldAttention,
	FieldSolvedTaskIds,
	FieldFailedTaskIds,
	FieldPlacementCompleted,
	FieldAssignedLevel,
	FieldAssignedGrade,
	FieldCreatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// DefaultLogical holds the default value on creation for the "logical" field.
	DefaultLogical int
	// DefaultComputational holds the default value on creation for the "computational" field.
	DefaultComputational int
	// DefaultCarelessness holds the default value on creation for the "carelessness" field.
	DefaultCarelessness int
	// DefaultStrategy holds the default value on creation for the "strategy" field.
	DefaultStrategy int
	// DefaultAttention holds the default value on creation for the "attention" field.
	DefaultAttention int
	// DefaultPlacementCompleted holds the default value on creation for the "placement_completed" field.
	DefaultPlacementCompleted bool
	// DefaultAssignedLevel holds the default value on creation for the "assigned_level" field.
	DefaultAssignedLevel string
	// DefaultAssignedGrade holds the default value on creation for the "assigned_grade" field.
	DefaultAssignedGrade int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByLogical orders the results by the logical field.
func ByLogical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogical, opts...).ToFunc()
}

// ByComputational orders the results by the computational field.
func ByComputational(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputational, opts...).ToFunc()
}

// ByCarelessness orders the results by the carelessness field.
func ByCarelessness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarelessness, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByAttention orders the results by the attention field.
func ByAttention(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttention, opts...).ToFunc()
}

// ByPlacementCompleted orders the results by the placement_completed field.
func ByPlacementCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlacementCompleted, opts...).ToFunc()
}

// ByAssignedLevel orders the results by the assigned_level field.
func ByAssignedLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedLevel, opts...).ToFunc()
}

// ByAssignedGrade orders the results by the assigned_grade field.
func ByAssignedGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedGrade, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
