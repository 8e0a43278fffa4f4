package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.Users().Create(ctx, "Aida", "  Aida@Example.COM ", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "aida@example.com" {
		t.Errorf("email = %q, want normalized", u.Email)
	}
	if u.ID == "" {
		t.Error("expected generated id")
	}
	if u.AssignedLevel != "School" || u.AssignedGrade != 9 {
		t.Errorf("defaults = %s/%d, want School/9", u.AssignedLevel, u.AssignedGrade)
	}
	if u.PlacementCompleted {
		t.Error("new user should not have completed placement")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()

	if _, err := users.Create(ctx, "A", "a@b.com", "pw1"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Same email with different case and whitespace must collide.
	_, err := users.Create(ctx, "B", " A@B.COM ", "pw2")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}

	// Store must be unchanged.
	count, err := s.Client().User.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestFindByCredentials(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()

	created, err := users.Create(ctx, "Aida", "a@b.com", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"exact match", "a@b.com", "secret", nil},
		{"case-insensitive email", "A@B.COM", "secret", nil},
		{"wrong password", "a@b.com", "wrong", ErrNotFound},
		{"unknown email", "x@y.com", "secret", ErrNotFound},
		{"case-sensitive password", "a@b.com", "SECRET", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := users.FindByCredentials(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if u.ID != created.ID {
				t.Errorf("id = %q, want %q", u.ID, created.ID)
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()

	u, err := users.Create(ctx, "Aida", "a@b.com", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u.Stats.Logical = 3
	u.FailedTaskIDs = []string{"k12-math-01"}
	u.PlacementCompleted = true
	u.AssignedLevel = "Bachelor"
	u.AssignedGrade = 13
	if err := users.Update(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := users.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stats.Logical != 3 {
		t.Errorf("logical = %d, want 3", got.Stats.Logical)
	}
	if len(got.FailedTaskIDs) != 1 || got.FailedTaskIDs[0] != "k12-math-01" {
		t.Errorf("failed ids = %v", got.FailedTaskIDs)
	}
	if !got.PlacementCompleted || got.AssignedLevel != "Bachelor" || got.AssignedGrade != 13 {
		t.Errorf("placement = %v/%s/%d", got.PlacementCompleted, got.AssignedLevel, got.AssignedGrade)
	}
}

func TestUpdateUnknownUserFailsLoudly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Users().Update(ctx, &User{ID: "no-such-id", Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestNotesAppendOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	notes := s.Notes()

	for _, text := range []string{"first insight", "second insight"} {
		if err := notes.Append(ctx, &Note{UserID: "u1", Text: text}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := notes.Append(ctx, &Note{UserID: "u2", Text: "other user"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := notes.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, n := range got {
		if n.Folder != "Knowledge Vault" {
			t.Errorf("folder = %q, want default", n.Folder)
		}
		if n.ID == "" || n.CapturedAt.IsZero() {
			t.Error("expected assigned id and timestamp")
		}
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Empty store: nobody signed in.
	cur, err := s.Session().Current(ctx)
	if err != nil {
		t.Fatalf("current (empty): %v", err)
	}
	if cur != nil {
		t.Fatal("expected nil current user")
	}

	u, err := s.Users().Create(ctx, "Aida", "a@b.com", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Session().SetCurrent(ctx, u.ID); err != nil {
		t.Fatalf("set current: %v", err)
	}

	cur, err = s.Session().Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur == nil || cur.ID != u.ID || cur.Email != u.Email || cur.Name != u.Name {
		t.Fatalf("current = %+v, want round-tripped user", cur)
	}

	if err := s.Session().Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cur, err = s.Session().Current(ctx)
	if err != nil {
		t.Fatalf("current (cleared): %v", err)
	}
	if cur != nil {
		t.Fatal("expected nil after clear")
	}
}

func TestAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	for i, et := range []string{"Logical", "Unknown"} {
		err := events.AppendAttempt(ctx, AttemptEventData{
			UserID:    "u1",
			TaskID:    "k12-math-01",
			ErrorType: et,
			StepCount: i + 1,
			TotalMs:   int64(1000 * (i + 1)),
			Fallback:  et == "Unknown",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := events.ListAttempts(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].ErrorType != "Unknown" || !got[0].Fallback {
		t.Errorf("got[0] = %+v, want latest fallback attempt", got[0])
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("sequence not descending: %d then %d", got[0].Sequence, got[1].Sequence)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	err := events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "error-analysis",
		InputTokens:  120,
		OutputTokens: 60,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[user]\nprompt",
		ResponseBody: `{"errorType":"Logical"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	list, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}

	got, err := events.GetLLMEvent(ctx, list[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "error-analysis" || got.InputTokens != 120 {
		t.Errorf("got = %+v", got)
	}

	missing, err := events.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not increasing (prev %d)", seq, prev)
		}
		prev = seq
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "m", Purpose: "error-analysis", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "error-analysis", InputTokens: 60, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "hint", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
	}
	for i, data := range appends {
		if err := events.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(usage))
	}

	byPurpose := make(map[string]LLMUsage)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	analysis := byPurpose["error-analysis"]
	if analysis.Calls != 2 || analysis.InputTokens != 160 || analysis.OutputTokens != 80 {
		t.Errorf("error-analysis usage = %+v", analysis)
	}
	if analysis.AvgLatencyMs != 300 {
		t.Errorf("expected avg latency 300, got %d", analysis.AvgLatencyMs)
	}

	hint := byPurpose["hint"]
	if hint.Calls != 1 || hint.InputTokens != 10 {
		t.Errorf("hint usage = %+v", hint)
	}
}
