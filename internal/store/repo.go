package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the requested record does not exist, or the
// supplied credentials matched no user.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail indicates a registration attempt with an email that
// already belongs to another user (compared after normalization).
var ErrDuplicateEmail = errors.New("email already registered")

// Stats holds the five per-user error-vector tallies.
type Stats struct {
	Logical       int
	Computational int
	Carelessness  int
	Strategy      int
	Attention     int
}

// User is a registered learner. PasswordHash is never exposed outside
// the store; credential checks go through FindByCredentials.
type User struct {
	ID                 string
	Name               string
	Email              string
	Stats              Stats
	SolvedTaskIDs      []string
	FailedTaskIDs      []string
	PlacementCompleted bool
	AssignedLevel      string
	AssignedGrade      int
	CreatedAt          time.Time
}

// Note is a captured knowledge snippet owned by one user.
type Note struct {
	ID         string
	UserID     string
	Text       string
	Folder     string
	CapturedAt time.Time
}

// UserRepo manages learner accounts.
type UserRepo interface {
	// Create registers a new user. The email is normalized (trimmed,
	// lower-cased) before the duplicate check. Returns ErrDuplicateEmail
	// when another user already holds the normalized email.
	Create(ctx context.Context, name, email, password string) (*User, error)

	// FindByCredentials returns the user whose normalized email and
	// password both match, or ErrNotFound.
	FindByCredentials(ctx context.Context, email, password string) (*User, error)

	// Get returns the user with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*User, error)

	// Update replaces the stored record by id. Returns ErrNotFound when
	// no user with that id exists; unknown ids are never upserted.
	Update(ctx context.Context, u *User) error
}

// NoteRepo manages the append-only note collection.
type NoteRepo interface {
	// Append stores a new note. ID and CapturedAt are assigned when zero.
	Append(ctx context.Context, n *Note) error

	// ListByUser returns a user's notes, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Note, error)
}

// SessionRepo manages the persisted current-user pointer.
type SessionRepo interface {
	// SetCurrent records userID as the signed-in user.
	SetCurrent(ctx context.Context, userID string) error

	// Current returns the signed-in user, or (nil, nil) when no one is
	// signed in or the pointed-at user no longer exists.
	Current(ctx context.Context) (*User, error)

	// Clear removes the current-user pointer.
	Clear(ctx context.Context) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// AttemptEventData captures one task attempt outcome for the event log.
type AttemptEventData struct {
	UserID          string
	TaskID          string
	ErrorType       string
	LogicBreakPoint string
	TrapTask        string
	Advice          string
	StepCount       int
	TotalMs         int64
	Fallback        bool
}

// AttemptRecord is a persisted attempt event.
type AttemptRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates model usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a task attempt outcome.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// ListAttempts returns a user's attempt events, newest first.
	ListAttempts(ctx context.Context, userID string, opts QueryOpts) ([]*AttemptRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns a single LLM event by row id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates call counts, token totals, and mean
	// latency per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
