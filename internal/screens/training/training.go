package training

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/router"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/screens/solver"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// TrainingScreen lists catalog tasks filtered by academic tier.
type TrainingScreen struct {
	deps     screens.Deps
	level    int // index into catalog.SelectableLevels
	selected int
}

var _ screen.Screen = (*TrainingScreen)(nil)
var _ screen.KeyHintProvider = (*TrainingScreen)(nil)

// New creates the training screen with the filter on All tiers.
func New(deps screens.Deps) *TrainingScreen {
	return &TrainingScreen{deps: deps}
}

func (t *TrainingScreen) Init() tea.Cmd {
	return nil
}

func (t *TrainingScreen) Title() string {
	return i18n.T(t.deps.Account.Lang(), i18n.TrainingTile)
}

func (t *TrainingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Tier filter"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TrainingScreen) tasks() []catalog.Task {
	return t.deps.Catalog.TasksByLevel(catalog.SelectableLevels[t.level])
}

func (t *TrainingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	tasks := t.tasks()
	switch kmsg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
		}
	case "down", "j":
		if t.selected < len(tasks)-1 {
			t.selected++
		}
	case "left", "h":
		t.level = (t.level - 1 + len(catalog.SelectableLevels)) % len(catalog.SelectableLevels)
		t.selected = 0
	case "right", "l":
		t.level = (t.level + 1) % len(catalog.SelectableLevels)
		t.selected = 0
	case "enter":
		if t.selected < len(tasks) {
			task := tasks[t.selected]
			deps := t.deps
			return t, func() tea.Msg {
				return router.PushScreenMsg{Screen: solver.New(deps, task)}
			}
		}
	}

	return t, nil
}

func (t *TrainingScreen) View(width, height int) string {
	lang := t.deps.Account.Lang()
	tasks := t.tasks()

	filter := theme.Subtitle.Render(
		fmt.Sprintf("Tier: %s  (%d tasks)", catalog.SelectableLevels[t.level], len(tasks)))

	var b strings.Builder
	if len(tasks) == 0 {
		b.WriteString(theme.Hint.Render("No tasks at this tier."))
	}
	for i, task := range tasks {
		line := renderTaskRow(task, lang)
		if i == t.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteByte('\n')
	}

	card := theme.Card.Width(min(width-8, 76)).Render(b.String())
	content := strings.Join([]string{filter, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderTaskRow formats one task line for list views.
func renderTaskRow(task catalog.Task, lang catalog.Language) string {
	kind := string(task.Kind)
	switch task.Kind {
	case catalog.KindSpotTheError:
		kind = i18n.T(lang, i18n.SpotTheError)
	case catalog.KindSequence:
		kind = i18n.T(lang, i18n.SequenceTask)
	}
	return fmt.Sprintf("%-28s %-16s %-10s %s", task.Topic, task.Subject, task.Level, kind)
}
