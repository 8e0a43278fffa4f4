package placement

import (
	"testing"

	"github.com/abhisek/errormind/internal/catalog"
)

func TestWizard_FullRun(t *testing.T) {
	w := NewWizard()

	if w.Done() {
		t.Fatal("fresh wizard must not be done")
	}
	if w.Len() != 3 {
		t.Fatalf("expected 3 questions, got %d", w.Len())
	}

	// School Student, STEM, Carelessness.
	for _, idx := range []int{0, 0, 0} {
		if !w.Select(idx) {
			t.Fatalf("select failed at step %d", w.Step())
		}
	}

	if !w.Done() {
		t.Fatal("wizard should be done after three answers")
	}

	out, err := w.Outcome()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Level != catalog.LevelSchool || out.Grade != 9 {
		t.Fatalf("expected School/9, got %s/%d", out.Level, out.Grade)
	}
}

func TestWizard_OutcomeMapping(t *testing.T) {
	tests := []struct {
		statusIdx int
		level     catalog.Level
		grade     int
	}{
		{0, catalog.LevelSchool, 9},
		{1, catalog.LevelBachelor, 13},
		{2, catalog.LevelMaster, 16},
		{3, catalog.LevelExpert, 20},
	}

	for _, tt := range tests {
		w := NewWizard()
		w.Select(tt.statusIdx)
		w.Select(0)
		w.Select(0)

		out, err := w.Outcome()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Level != tt.level || out.Grade != tt.grade {
			t.Errorf("status %d: expected %s/%d, got %s/%d",
				tt.statusIdx, tt.level, tt.grade, out.Level, out.Grade)
		}
	}
}

func TestWizard_OutcomeBeforeFinish(t *testing.T) {
	w := NewWizard()
	w.Select(0)

	if _, err := w.Outcome(); err != ErrNotFinished {
		t.Fatalf("expected ErrNotFinished, got %v", err)
	}
}

func TestWizard_RejectsBadSelections(t *testing.T) {
	w := NewWizard()

	if w.Select(-1) {
		t.Fatal("negative index must be rejected")
	}
	if w.Select(99) {
		t.Fatal("out-of-range index must be rejected")
	}

	w.Select(0)
	w.Select(0)
	w.Select(0)
	if w.Select(0) {
		t.Fatal("selection after completion must be rejected")
	}
}

func TestWizard_RecordsAnswers(t *testing.T) {
	w := NewWizard()
	w.Select(0)
	w.Select(1) // Medicine & Bio
	w.Select(2) // Strategy Failure

	focus, ok := w.Answer("focus_area")
	if !ok || focus.Value != "Medicine" {
		t.Fatalf("expected Medicine focus, got %+v (ok=%v)", focus, ok)
	}
	habit, ok := w.Answer("error_habit")
	if !ok || habit.Value != "strategy" {
		t.Fatalf("expected strategy habit, got %+v (ok=%v)", habit, ok)
	}
}

func TestQuestion_LocalizedTitles(t *testing.T) {
	q := Questions()[0]

	if got := q.TitleIn(catalog.LangRU); got != "Ваш текущий статус?" {
		t.Fatalf("unexpected Russian title: %q", got)
	}
	// Kazakh has no translation here and falls back to English.
	if got := q.TitleIn(catalog.LangKK); got != "Current status?" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}
