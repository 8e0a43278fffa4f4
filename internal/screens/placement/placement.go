package placement

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	wizard "github.com/abhisek/errormind/internal/placement"
	"github.com/abhisek/errormind/internal/router"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/screens/dashboard"
	"github.com/abhisek/errormind/internal/store"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// savedMsg reports the async profile save after the last answer.
type savedMsg struct {
	User *store.User
	Err  error
}

// PlacementScreen runs the calibration wizard. It cannot be backed out
// of; a fresh account must finish calibration before the dashboard.
type PlacementScreen struct {
	deps     screens.Deps
	wizard   *wizard.Wizard
	selected int
	saving   bool
	errMsg   string
}

var _ screen.Screen = (*PlacementScreen)(nil)
var _ screen.KeyHintProvider = (*PlacementScreen)(nil)
var _ screen.BackInterceptor = (*PlacementScreen)(nil)

// New creates the placement screen.
func New(deps screens.Deps) *PlacementScreen {
	return &PlacementScreen{
		deps:   deps,
		wizard: wizard.NewWizard(),
	}
}

func (p *PlacementScreen) Init() tea.Cmd {
	return nil
}

func (p *PlacementScreen) Title() string {
	return "System Calibration"
}

func (p *PlacementScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

// InterceptBack blocks Esc: calibration is mandatory once started.
func (p *PlacementScreen) InterceptBack() (tea.Cmd, bool) {
	return nil, true
}

func (p *PlacementScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		p.saving = false
		if msg.Err != nil {
			p.errMsg = "Could not save calibration: " + msg.Err.Error()
			return p, nil
		}
		deps := p.deps
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: dashboard.New(deps)}
		}

	case tea.KeyMsg:
		if p.saving {
			return p, nil
		}
		q, ok := p.wizard.Current()
		if !ok {
			return p, nil
		}
		switch msg.String() {
		case "up", "k":
			if p.selected > 0 {
				p.selected--
			}
		case "down", "j":
			if p.selected < len(q.Options)-1 {
				p.selected++
			}
		case "enter":
			if p.wizard.Select(p.selected) {
				p.selected = 0
				if p.wizard.Done() {
					return p, p.save()
				}
			}
		}
	}

	return p, nil
}

// save writes the outcome to the profile off the UI loop.
func (p *PlacementScreen) save() tea.Cmd {
	p.saving = true
	out, err := p.wizard.Outcome()
	if err != nil {
		return func() tea.Msg { return savedMsg{Err: err} }
	}

	acct := p.deps.Account
	return func() tea.Msg {
		u := acct.User()
		if u == nil {
			return savedMsg{Err: store.ErrNotFound}
		}
		updated := *u
		updated.AssignedLevel = string(out.Level)
		updated.AssignedGrade = out.Grade
		updated.PlacementCompleted = true
		if err := acct.SaveUser(context.Background(), &updated); err != nil {
			return savedMsg{Err: err}
		}
		return savedMsg{User: &updated}
	}
}

func (p *PlacementScreen) View(width, height int) string {
	lang := p.deps.Account.Lang()

	header := theme.Title.Render("System Calibration")

	// Progress dots, one per question.
	var dots []string
	for i := 0; i < p.wizard.Len(); i++ {
		if i <= p.wizard.Step() {
			dots = append(dots, theme.Selected.Render("■"))
		} else {
			dots = append(dots, theme.Hint.Render("□"))
		}
	}
	progress := strings.Join(dots, " ")

	var body string
	if p.saving {
		body = theme.Hint.Render("Calibrating...")
	} else if q, ok := p.wizard.Current(); ok {
		var b strings.Builder
		b.WriteString(theme.Body.Bold(true).Render(q.TitleIn(lang)))
		b.WriteString("\n\n")
		for i, opt := range q.Options {
			if i == p.selected {
				b.WriteString(theme.Selected.Render("  ▸ " + opt.LabelIn(lang)))
			} else {
				b.WriteString(theme.Unselected.Render("    " + opt.LabelIn(lang)))
			}
			b.WriteByte('\n')
		}
		body = b.String()
	}

	if p.errMsg != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg)
	}

	card := theme.Card.Width(min(width-8, 60)).Render(body)
	content := strings.Join([]string{header, "", progress, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
