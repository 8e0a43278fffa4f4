package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/router"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/screens/auth"
	"github.com/abhisek/errormind/internal/screens/guide"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// HomeScreen is the landing screen shown before sign-in.
type HomeScreen struct {
	deps screens.Deps
	menu int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the landing screen.
func New(deps screens.Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return ""
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "L", Description: "Language"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) items() []string {
	lang := h.deps.Account.Lang()
	return []string{
		i18n.T(lang, i18n.Login),
		i18n.T(lang, i18n.Signup),
		i18n.T(lang, i18n.Guide),
		"Quit",
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.menu > 0 {
			h.menu--
		}
	case "down", "j":
		if h.menu < len(h.items())-1 {
			h.menu++
		}
	case "l", "L":
		h.deps.Account.CycleLang()
	case "enter":
		switch h.menu {
		case 0:
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: auth.New(h.deps, auth.ModeLogin)}
			}
		case 1:
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: auth.New(h.deps, auth.ModeSignup)}
			}
		case 2:
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: guide.New(h.deps)}
			}
		case 3:
			return h, tea.Quit
		}
	}

	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	lang := h.deps.Account.Lang()

	title := theme.Title.Render(i18n.T(lang, i18n.HeroTitle))
	subtitle := theme.Subtitle.Width(min(width-8, 70)).Render(i18n.T(lang, i18n.HeroSubtitle))

	var menu strings.Builder
	for i, label := range h.items() {
		if i == h.menu {
			menu.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			menu.WriteString(theme.Unselected.Render("    " + label))
		}
		menu.WriteByte('\n')
	}

	langLine := theme.Hint.Render("[" + strings.ToUpper(string(lang)) + "]")

	content := strings.Join([]string{title, "", subtitle, "", "", menu.String(), langLine}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
