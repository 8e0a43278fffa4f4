package solver

import (
	"context"
	"testing"

	"github.com/abhisek/errormind/internal/account"
	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/store"
)

// fakeUserRepo implements store.UserRepo in memory.
type fakeUserRepo struct {
	updated *store.User
}

func (f *fakeUserRepo) Create(ctx context.Context, name, email, password string) (*store.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, password string) (*store.User, error) {
	return nil, store.ErrNotFound
}
func (f *fakeUserRepo) Get(ctx context.Context, id string) (*store.User, error) {
	return nil, store.ErrNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, u *store.User) error {
	f.updated = u
	return nil
}

// fakeSessionRepo implements store.SessionRepo in memory.
type fakeSessionRepo struct {
	current string
}

func (f *fakeSessionRepo) SetCurrent(ctx context.Context, userID string) error {
	f.current = userID
	return nil
}
func (f *fakeSessionRepo) Current(ctx context.Context) (*store.User, error) {
	return nil, nil
}
func (f *fakeSessionRepo) Clear(ctx context.Context) error {
	f.current = ""
	return nil
}

// fakeEventRepo records appended attempts.
type fakeEventRepo struct {
	attempts []store.AttemptEventData
}

func (f *fakeEventRepo) AppendAttempt(ctx context.Context, data store.AttemptEventData) error {
	f.attempts = append(f.attempts, data)
	return nil
}
func (f *fakeEventRepo) ListAttempts(ctx context.Context, userID string, opts store.QueryOpts) ([]*store.AttemptRecord, error) {
	return nil, nil
}
func (f *fakeEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetLLMEvent(ctx context.Context, id int) (*store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByPurpose(ctx context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func testTask() catalog.Task {
	return catalog.Task{
		ID:      "phys-01",
		Level:   catalog.LevelBachelor,
		Subject: catalog.SubjectPhysics,
		Topic:   "Kinematics",
		Kind:    catalog.KindTextStep,
		Content: map[catalog.Language]catalog.TaskContent{
			catalog.LangEN: {Question: "q", Solution: "s", Hint: "h"},
		},
	}
}

func testDeps(t *testing.T) (screens.Deps, *fakeEventRepo) {
	t.Helper()
	events := &fakeEventRepo{}
	acct := account.NewSession(&fakeUserRepo{}, &fakeSessionRepo{})
	if err := acct.SignIn(context.Background(), &store.User{ID: "u1", Name: "Ada"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return screens.Deps{Account: acct, Events: events}, events
}

func TestCancelDuringAnalysisDropsLateResult(t *testing.T) {
	deps, _ := testDeps(t)
	s := New(deps, testTask())

	if ok := s.recorder.Append("v = d/t", nil); !ok {
		t.Fatal("expected step to commit")
	}
	cmd := s.finish("")
	if cmd == nil {
		t.Fatal("expected analysis command")
	}
	if s.phase != phaseAnalyzing {
		t.Fatalf("phase = %v, want analyzing", s.phase)
	}

	_, handled := s.InterceptBack()
	if !handled {
		t.Fatal("expected cancel to be handled during analysis")
	}
	if s.phase != phaseInput {
		t.Fatalf("phase = %v, want input after cancel", s.phase)
	}

	// The in-flight command still resolves; its message must be dropped.
	msg := cmd()
	updated, _ := s.Update(msg)
	s = updated.(*SolverScreen)

	if s.phase != phaseInput {
		t.Fatalf("phase = %v, want input after stale resolution", s.phase)
	}
	if s.result != nil {
		t.Fatal("stale diagnosis must not surface a result")
	}
}

func TestCancelledSubmissionCanBeResubmitted(t *testing.T) {
	deps, _ := testDeps(t)
	s := New(deps, testTask())

	s.recorder.Append("v = d/t", nil)
	stale := s.finish("")
	s.InterceptBack()

	fresh := s.finish("")
	if fresh == nil {
		t.Fatal("expected resubmission command")
	}

	// Stale resolution arrives after the resubmission and is ignored.
	updated, _ := s.Update(stale())
	s = updated.(*SolverScreen)
	if s.phase != phaseAnalyzing {
		t.Fatalf("phase = %v, want analyzing while fresh attempt runs", s.phase)
	}

	updated, _ = s.Update(fresh())
	s = updated.(*SolverScreen)
	if s.phase != phaseResult {
		t.Fatalf("phase = %v, want result from fresh attempt", s.phase)
	}
	if s.result == nil || !s.result.Fallback {
		t.Fatal("expected offline fallback result")
	}
}

func TestOfflineDiagnosisCompletesAndPersists(t *testing.T) {
	deps, events := testDeps(t)
	s := New(deps, testTask())

	s.recorder.Append("v = d/t", nil)
	cmd := s.finish("")

	updated, _ := s.Update(cmd())
	s = updated.(*SolverScreen)

	if s.phase != phaseResult {
		t.Fatalf("phase = %v, want result", s.phase)
	}
	if s.saveErr != nil {
		t.Fatalf("save error: %v", s.saveErr)
	}
	if s.result == nil || !s.result.Fallback {
		t.Fatal("expected fallback result without a provider")
	}

	if len(events.attempts) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(events.attempts))
	}
	if !events.attempts[0].Fallback {
		t.Fatal("expected attempt event flagged as fallback")
	}

	u := deps.Account.User()
	if u == nil {
		t.Fatal("expected signed-in user")
	}
	if len(u.FailedTaskIDs) != 1 || u.FailedTaskIDs[0] != "phys-01" {
		t.Fatalf("failed ids = %v, want [phys-01]", u.FailedTaskIDs)
	}
}
