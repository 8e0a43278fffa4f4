// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "error_type", Type: field.TypeString},
		{Name: "logic_break_point", Type: field.TypeString, Default: ""},
		{Name: "trap_task", Type: field.TypeString, Default: ""},
		{Name: "advice", Type: field.TypeString, Default: ""},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "total_ms", Type: field.TypeInt64, Default: 0},
		{Name: "fallback", Type: field.TypeBool, Default: false},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_task_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "folder", Type: field.TypeString, Default: "Knowledge Vault"},
		{Name: "captured_at", Type: field.TypeTime},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "note_user_id",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[1]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Default: ""},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "logical", Type: field.TypeInt, Default: 0},
		{Name: "computational", Type: field.TypeInt, Default: 0},
		{Name: "carelessness", Type: field.TypeInt, Default: 0},
		{Name: "strategy", Type: field.TypeInt, Default: 0},
		{Name: "attention", Type: field.TypeInt, Default: 0},
		{Name: "solved_task_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "failed_task_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "placement_completed", Type: field.TypeBool, Default: false},
		{Name: "assigned_level", Type: field.TypeString, Default: "School"},
		{Name: "assigned_grade", Type: field.TypeInt, Default: 9},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LlmRequestEventsTable,
		NotesTable,
		SettingsTable,
		UsersTable,
	}
)

func init() {
}
