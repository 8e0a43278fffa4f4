package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/router"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/screens/dashboard"
	"github.com/abhisek/errormind/internal/screens/home"
	"github.com/abhisek/errormind/internal/screens/placement"
	"github.com/abhisek/errormind/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    screens.Deps
	router  *router.Router
	initial tea.Cmd
	width   int
	height  int
}

// newAppModel builds the screen stack. A restored session skips the
// landing flow: the dashboard (or the calibration wizard, when the
// profile is uncalibrated) goes straight on top of home so Esc and
// logout still land somewhere sensible.
func newAppModel(deps screens.Deps) AppModel {
	r := router.New(home.New(deps))

	var initial tea.Cmd
	if u := deps.Account.User(); u != nil {
		if u.PlacementCompleted {
			initial = r.Push(dashboard.New(deps))
		} else {
			initial = r.Push(placement.New(deps))
		}
	}

	return AppModel{
		deps:    deps,
		router:  r,
		initial: initial,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initial
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok {
				cmd, handled := bi.InterceptBack()
				if handled {
					return m, cmd
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	userName, level := "", ""
	grade := 0
	if u := m.deps.Account.User(); u != nil {
		userName, level, grade = u.Name, u.AssignedLevel, u.AssignedGrade
	}
	header := layout.RenderHeader(title, userName, level, grade, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps screens.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
