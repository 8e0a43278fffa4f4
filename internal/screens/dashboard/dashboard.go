package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/router"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/screens/gym"
	"github.com/abhisek/errormind/internal/screens/history"
	"github.com/abhisek/errormind/internal/screens/materials"
	"github.com/abhisek/errormind/internal/screens/notes"
	"github.com/abhisek/errormind/internal/screens/training"
	"github.com/abhisek/errormind/internal/store"
	"github.com/abhisek/errormind/internal/ui/components"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// DashboardScreen is the signed-in hub: mistake map plus navigation.
type DashboardScreen struct {
	deps screens.Deps
	menu components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(deps screens.Deps) *DashboardScreen {
	lang := deps.Account.Lang()

	failedCount := 0
	if u := deps.Account.User(); u != nil {
		failedCount = len(u.FailedTaskIDs)
	}

	items := []components.MenuItem{
		{
			Label:  i18n.T(lang, i18n.TrainingTile),
			Detail: i18n.T(lang, i18n.TrainingDesc),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: training.New(deps)}
				}
			},
		},
		{
			Label:  i18n.T(lang, i18n.GymTile),
			Detail: fmt.Sprintf("%d failure vectors", failedCount),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: gym.New(deps)}
				}
			},
		},
		{
			Label:  i18n.T(lang, i18n.LibTile),
			Detail: i18n.T(lang, i18n.LibDesc),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: materials.New(deps)}
				}
			},
		},
		{
			Label:  i18n.T(lang, i18n.KnowledgeFolders),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: notes.New(deps)}
				}
			},
		},
		{
			Label:  "Attempt History",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(deps)}
				}
			},
		},
		{
			Label:  i18n.T(lang, i18n.Logout),
			Action: func() tea.Cmd {
				acct := deps.Account
				return func() tea.Msg {
					_ = acct.SignOut(context.Background())
					return router.PopScreenMsg{}
				}
			},
		},
	}

	return &DashboardScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return i18n.T(d.deps.Account.Lang(), i18n.Dashboard)
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	lang := d.deps.Account.Lang()
	u := d.deps.Account.User()
	if u == nil {
		return theme.Hint.Render("No active session.")
	}

	greeting := theme.Title.Render(u.Name) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("%s / Grade %d", u.AssignedLevel, u.AssignedGrade))

	mapCard := theme.Card.Width(min(width-8, 60)).Render(renderMistakeMap(lang, u.Stats))
	menuCard := theme.Card.Width(min(width-8, 60)).Render(d.menu.View())

	content := strings.Join([]string{greeting, "", mapCard, "", menuCard}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderMistakeMap draws the five error-vector bars scaled to the
// largest tally.
func renderMistakeMap(lang catalog.Language, stats store.Stats) string {
	maxVal := max(stats.Logical, stats.Computational, stats.Carelessness, stats.Strategy, stats.Attention, 1)

	bars := []components.StatBar{
		{Label: "Logical", Value: stats.Logical, Max: maxVal, Width: 24},
		{Label: "Computational", Value: stats.Computational, Max: maxVal, Width: 24},
		{Label: "Carelessness", Value: stats.Carelessness, Max: maxVal, Width: 24},
		{Label: "Strategy", Value: stats.Strategy, Max: maxVal, Width: 24},
		{Label: "Attention", Value: stats.Attention, Max: maxVal, Width: 24},
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(i18n.T(lang, i18n.StatsTile)))
	b.WriteString("\n\n")
	for _, bar := range bars {
		b.WriteString(bar.View())
		b.WriteByte('\n')
	}
	return b.String()
}
