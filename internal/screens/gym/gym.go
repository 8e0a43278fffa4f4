// Package gym lists the tasks the learner previously failed so they can
// be retried until the failure vector clears.
package gym

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

// GymScreen is the remediation list built from FailedTaskIDs.
type GymScreen struct {
	deps     screens.Deps
	selected int
}

var _ screen.Screen = (*GymScreen)(nil)
var _ screen.KeyHintProvider = (*GymScreen)(nil)

// New creates the remediation screen.
func New(deps screens.Deps) *GymScreen {
	return &GymScreen{deps: deps}
}

func (g *GymScreen) Init() tea.Cmd {
	return nil
}

func (g *GymScreen) Title() string {
	return i18n.T(g.deps.Account.Lang(), i18n.GymTile)
}

func (g *GymScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Retry"},
		{Key: "Esc", Description: "Back"},
	}
}

// tasks resolves the live failed list so a cleared vector disappears as
// soon as the learner returns from a successful retry.
func (g *GymScreen) tasks() []catalog.Task {
	u := g.deps.Account.User()
	if u == nil {
		return nil
	}
	return g.deps.Catalog.TasksByIDs(u.FailedTaskIDs)
}

func (g *GymScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	tasks := g.tasks()
	if g.selected >= len(tasks) && len(tasks) > 0 {
		g.selected = len(tasks) - 1
	}

	switch kmsg.String() {
	case "up", "k":
		if g.selected > 0 {
			g.selected--
		}
	case "down", "j":
		if g.selected < len(tasks)-1 {
			g.selected++
		}
	case "enter":
		if g.selected < len(tasks) {
			task := tasks[g.selected]
			deps := g.deps
			return g, func() tea.Msg {
				return router.PushScreenMsg{Screen: solver.New(deps, task)}
			}
		}
	}

	return g, nil
}

func (g *GymScreen) View(width, height int) string {
	lang := g.deps.Account.Lang()
	tasks := g.tasks()

	title := theme.Title.Render(i18n.T(lang, i18n.GymTile))
	subtitle := theme.Subtitle.Render(i18n.T(lang, i18n.GymDesc))

	var b strings.Builder
	if len(tasks) == 0 {
		b.WriteString(theme.Correct.Render("No failure vectors. All clear."))
	}
	for i, task := range tasks {
		line := fmt.Sprintf("%-28s %-16s %s", task.Topic, task.Subject, task.Level)
		if i == g.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteByte('\n')
	}

	card := theme.Card.Width(min(width-8, 72)).Render(b.String())
	content := strings.Join([]string{title, subtitle, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
