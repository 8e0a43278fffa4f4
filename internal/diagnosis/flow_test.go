package diagnosis

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/abhisek/errormind/internal/placement"
	"github.com/abhisek/errormind/internal/store"
)

// Walks the full learner lifecycle against a real database: register,
// calibrate, fail a task, and verify the profile the next load sees.
func TestLearnerLifecycle(t *testing.T) {
	ctx := context.Background()

	st, err := store.Open(filepath.Join(t.TempDir(), "lifecycle.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	u, err := st.Users().Create(ctx, "Ada", "ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Calibration: School Student, then any focus and habit answers.
	w := placement.NewWizard()
	for i := 0; !w.Done(); i++ {
		if !w.Select(0) {
			t.Fatalf("select on step %d rejected", i)
		}
	}
	outcome, err := w.Outcome()
	if err != nil {
		t.Fatalf("outcome: %v", err)
	}
	if outcome.Level != "School" || outcome.Grade != 9 {
		t.Fatalf("outcome = %+v, want School grade 9", outcome)
	}

	u.PlacementCompleted = true
	u.AssignedLevel = string(outcome.Level)
	u.AssignedGrade = outcome.Grade
	if err := st.Users().Update(ctx, u); err != nil {
		t.Fatalf("save placement: %v", err)
	}

	// A failed attempt diagnosed as a logic error.
	updated := Apply(*u, "k12-math-01", &Result{
		ErrorType:       ErrorLogical,
		LogicBreakPoint: "Dropped the sign when isolating x.",
		Advice:          "Re-check each transformation against the previous line.",
	})
	if err := st.Users().Update(ctx, &updated); err != nil {
		t.Fatalf("save attempt outcome: %v", err)
	}

	// A fresh read must see the calibrated, diagnosed profile.
	got, err := st.Users().Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !got.PlacementCompleted || got.AssignedLevel != "School" || got.AssignedGrade != 9 {
		t.Errorf("placement not persisted: %+v", got)
	}
	if got.Stats.Logical != 1 {
		t.Errorf("Logical = %d, want 1", got.Stats.Logical)
	}
	if (got.Stats.Computational | got.Stats.Carelessness | got.Stats.Strategy | got.Stats.Attention) != 0 {
		t.Errorf("unrelated stats incremented: %+v", got.Stats)
	}
	if !slices.Contains(got.FailedTaskIDs, "k12-math-01") {
		t.Errorf("FailedTaskIDs = %v, want k12-math-01 recorded", got.FailedTaskIDs)
	}
	if len(got.SolvedTaskIDs) != 0 {
		t.Errorf("SolvedTaskIDs = %v, want empty", got.SolvedTaskIDs)
	}
}
