package diagnosis

import (
	"slices"
	"testing"

	"github.com/abhisek/errormind/internal/store"
)

func TestApply_IncrementsMatchingStat(t *testing.T) {
	tests := []struct {
		errorType string
		check     func(store.Stats) int
	}{
		{"Logical", func(s store.Stats) int { return s.Logical }},
		{"Computational", func(s store.Stats) int { return s.Computational }},
		{"Carelessness", func(s store.Stats) int { return s.Carelessness }},
		{"Wrong Strategy", func(s store.Stats) int { return s.Strategy }},
		{"Attention", func(s store.Stats) int { return s.Attention }},
	}

	for _, tt := range tests {
		t.Run(tt.errorType, func(t *testing.T) {
			u := store.User{ID: "u1"}
			got := Apply(u, "t1", &Result{ErrorType: tt.errorType})
			if tt.check(got.Stats) != 1 {
				t.Fatalf("expected stat for %q to be 1", tt.errorType)
			}
		})
	}
}

func TestApply_MatchIsCaseInsensitiveSubstring(t *testing.T) {
	u := store.User{ID: "u1"}
	got := Apply(u, "t1", &Result{ErrorType: "logical / COMPUTATIONAL slip"})
	if got.Stats.Logical != 1 || got.Stats.Computational != 1 {
		t.Fatalf("expected both logical and computational incremented, got %+v", got.Stats)
	}
	if got.Stats.Carelessness != 0 {
		t.Fatalf("unexpected carelessness increment: %+v", got.Stats)
	}
}

func TestApply_UnknownIncrementsNothing(t *testing.T) {
	u := store.User{ID: "u1"}
	got := Apply(u, "t1", &Result{ErrorType: ErrorUnknown})
	if got.Stats != (store.Stats{}) {
		t.Fatalf("expected no stat change, got %+v", got.Stats)
	}
	if !slices.Contains(got.FailedTaskIDs, "t1") {
		t.Fatal("expected task recorded as failed")
	}
}

func TestApply_FailureRecordsFailedTaskOnce(t *testing.T) {
	u := store.User{ID: "u1", FailedTaskIDs: []string{"t1"}}
	got := Apply(u, "t1", &Result{ErrorType: ErrorLogical})
	if len(got.FailedTaskIDs) != 1 {
		t.Fatalf("expected no duplicate failed entry, got %v", got.FailedTaskIDs)
	}
}

func TestApply_SuccessRecordsSolvedAndClearsFailed(t *testing.T) {
	u := store.User{ID: "u1", FailedTaskIDs: []string{"t1", "t2"}}
	got := Apply(u, "t1", &Result{ErrorType: OutcomeSuccess})

	if !slices.Contains(got.SolvedTaskIDs, "t1") {
		t.Fatal("expected task recorded as solved")
	}
	if slices.Contains(got.FailedTaskIDs, "t1") {
		t.Fatal("expected earlier failure to be cleared")
	}
	if !slices.Contains(got.FailedTaskIDs, "t2") {
		t.Fatal("unrelated failed task must survive")
	}
}

func TestApply_SuccessDeduplicatesSolved(t *testing.T) {
	u := store.User{ID: "u1", SolvedTaskIDs: []string{"t1"}}
	got := Apply(u, "t1", &Result{ErrorType: OutcomeNone})
	if len(got.SolvedTaskIDs) != 1 {
		t.Fatalf("expected single solved entry, got %v", got.SolvedTaskIDs)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	u := store.User{ID: "u1", FailedTaskIDs: []string{"t1"}}
	_ = Apply(u, "t1", &Result{ErrorType: OutcomeSuccess})
	if len(u.FailedTaskIDs) != 1 || u.FailedTaskIDs[0] != "t1" {
		t.Fatalf("input user mutated: %v", u.FailedTaskIDs)
	}
}
