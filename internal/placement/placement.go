// Package placement implements the one-time calibration wizard that
// assigns a new user an academic tier and grade.
package placement

import (
	"errors"

	"github.com/abhisek/errormind/internal/catalog"
)

// Option is one selectable answer of a calibration question.
type Option struct {
	Label map[catalog.Language]string
	Value string

	// Level and Grade are set only on current-status options; they
	// determine the placement outcome.
	Level catalog.Level
	Grade int
}

// LabelIn returns the option label in lang, falling back to English.
func (o Option) LabelIn(lang catalog.Language) string {
	if s, ok := o.Label[lang]; ok && s != "" {
		return s
	}
	return o.Label[catalog.LangEN]
}

// Question is one step of the calibration wizard.
type Question struct {
	ID      string
	Title   map[catalog.Language]string
	Options []Option
}

// TitleIn returns the question title in lang, falling back to English.
func (q Question) TitleIn(lang catalog.Language) string {
	if s, ok := q.Title[lang]; ok && s != "" {
		return s
	}
	return q.Title[catalog.LangEN]
}

// Outcome is the result of a completed calibration.
type Outcome struct {
	Level catalog.Level
	Grade int
}

// Questions returns the calibration questions in wizard order.
func Questions() []Question {
	return []Question{
		{
			ID: "current_status",
			Title: map[catalog.Language]string{
				catalog.LangEN: "Current status?",
				catalog.LangRU: "Ваш текущий статус?",
			},
			Options: []Option{
				{
					Label: map[catalog.Language]string{
						catalog.LangEN: "School Student",
						catalog.LangRU: "Школьник (5-11 класс)",
					},
					Value: "School",
					Level: catalog.LevelSchool,
					Grade: 9,
				},
				{
					Label: map[catalog.Language]string{
						catalog.LangEN: "Undergraduate",
						catalog.LangRU: "Студент (Бакалавриат)",
					},
					Value: "Bachelor",
					Level: catalog.LevelBachelor,
					Grade: 13,
				},
				{
					Label: map[catalog.Language]string{
						catalog.LangEN: "Master / Specialist",
						catalog.LangRU: "Магистр / Специалист",
					},
					Value: "Master",
					Level: catalog.LevelMaster,
					Grade: 16,
				},
				{
					Label: map[catalog.Language]string{
						catalog.LangEN: "Expert / Researcher",
						catalog.LangRU: "PhD / Исследователь",
					},
					Value: "Expert",
					Level: catalog.LevelExpert,
					Grade: 20,
				},
			},
		},
		{
			ID: "focus_area",
			Title: map[catalog.Language]string{
				catalog.LangEN: "Primary area of focus?",
				catalog.LangRU: "Основная область интересов?",
			},
			Options: []Option{
				{Label: map[catalog.Language]string{catalog.LangEN: "STEM (Physics, Math)"}, Value: "STEM"},
				{Label: map[catalog.Language]string{catalog.LangEN: "Medicine & Bio"}, Value: "Medicine"},
				{Label: map[catalog.Language]string{catalog.LangEN: "Computer Science"}, Value: "CS"},
				{Label: map[catalog.Language]string{catalog.LangEN: "Economics & Law"}, Value: "Econ"},
			},
		},
		{
			ID: "error_habit",
			Title: map[catalog.Language]string{
				catalog.LangEN: "Typical error cause?",
				catalog.LangRU: "Типичная причина ошибок?",
			},
			Options: []Option{
				{
					Label: map[catalog.Language]string{
						catalog.LangEN: "Carelessness",
						catalog.LangRU: "Невнимательность",
					},
					Value: "attention",
				},
				{
					Label: map[catalog.Language]string{
						catalog.LangEN: "Theory Gap",
						catalog.LangRU: "Недостаток теории",
					},
					Value: "logical",
				},
				{
					Label: map[catalog.Language]string{
						catalog.LangEN: "Strategy Failure",
						catalog.LangRU: "Неверная стратегия",
					},
					Value: "strategy",
				},
			},
		},
	}
}

// ErrNotFinished is returned when the outcome is requested before all
// questions are answered.
var ErrNotFinished = errors.New("placement: wizard not finished")

// Wizard walks a user through the calibration questions one at a time.
// Answers cannot be revised; the wizard only moves forward.
type Wizard struct {
	questions []Question
	step      int
	answers   map[string]Option
}

// NewWizard creates a wizard positioned at the first question.
func NewWizard() *Wizard {
	return &Wizard{
		questions: Questions(),
		answers:   make(map[string]Option),
	}
}

// Step returns the zero-based index of the current question.
func (w *Wizard) Step() int { return w.step }

// Len returns the number of questions.
func (w *Wizard) Len() int { return len(w.questions) }

// Done reports whether every question has been answered.
func (w *Wizard) Done() bool { return w.step >= len(w.questions) }

// Current returns the question awaiting an answer.
func (w *Wizard) Current() (Question, bool) {
	if w.Done() {
		return Question{}, false
	}
	return w.questions[w.step], true
}

// Select records the option at index for the current question and
// advances. Out-of-range indexes and selections after completion are
// ignored and reported as false.
func (w *Wizard) Select(index int) bool {
	q, ok := w.Current()
	if !ok || index < 0 || index >= len(q.Options) {
		return false
	}
	w.answers[q.ID] = q.Options[index]
	w.step++
	return true
}

// Answer returns the recorded option for a question ID.
func (w *Wizard) Answer(questionID string) (Option, bool) {
	opt, ok := w.answers[questionID]
	return opt, ok
}

// Outcome derives the placement from the current-status answer. The
// focus and habit answers shape nothing today; they are kept for the
// dashboard summary only.
func (w *Wizard) Outcome() (Outcome, error) {
	if !w.Done() {
		return Outcome{}, ErrNotFinished
	}
	status := w.answers["current_status"]
	return Outcome{Level: status.Level, Grade: status.Grade}, nil
}
