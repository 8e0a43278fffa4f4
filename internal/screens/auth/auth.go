package auth

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/router"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/screens/dashboard"
	placementscreen "github.com/abhisek/errormind/internal/screens/placement"
	"github.com/abhisek/errormind/internal/store"
	"github.com/abhisek/errormind/internal/ui/components"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// Mode selects between the login and registration forms.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

// authResultMsg carries the outcome of an async auth attempt.
type authResultMsg struct {
	User *store.User
	Err  error
}

// AuthScreen is the login / registration form.
type AuthScreen struct {
	deps       screens.Deps
	mode       Mode
	name       components.TextInput
	email      components.TextInput
	password   components.TextInput
	focus      int
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates the auth screen in the given mode.
func New(deps screens.Deps, mode Mode) *AuthScreen {
	lang := deps.Account.Lang()
	s := &AuthScreen{
		deps:     deps,
		mode:     mode,
		name:     components.NewTextInput(i18n.T(lang, i18n.Name), "", false),
		email:    components.NewTextInput(i18n.T(lang, i18n.Email), "you@node.net", false),
		password: components.NewTextInput(i18n.T(lang, i18n.Password), "", true),
	}
	return s
}

func (a *AuthScreen) Init() tea.Cmd {
	if a.mode == ModeSignup {
		return a.name.Focus()
	}
	return a.email.Focus()
}

func (a *AuthScreen) Title() string {
	lang := a.deps.Account.Lang()
	if a.mode == ModeSignup {
		return i18n.T(lang, i18n.Signup)
	}
	return i18n.T(lang, i18n.Login)
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// fieldCount returns the number of form fields in the current mode.
func (a *AuthScreen) fieldCount() int {
	if a.mode == ModeSignup {
		return 3
	}
	return 2
}

// field maps the focus index to the input, with name present only in
// signup mode.
func (a *AuthScreen) field(i int) *components.TextInput {
	if a.mode == ModeSignup {
		switch i {
		case 0:
			return &a.name
		case 1:
			return &a.email
		default:
			return &a.password
		}
	}
	if i == 0 {
		return &a.email
	}
	return &a.password
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		a.submitting = false
		if msg.Err != nil {
			a.errMsg = a.describeError(msg.Err)
			return a, nil
		}
		return a, a.enter(msg.User)

	case tea.KeyMsg:
		if a.submitting {
			return a, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			dir := 1
			if msg.String() == "shift+tab" || msg.String() == "up" {
				dir = -1
			}
			a.field(a.focus).Blur()
			a.focus = (a.focus + dir + a.fieldCount()) % a.fieldCount()
			return a, a.field(a.focus).Focus()
		case "enter":
			return a, a.submit()
		}
	}

	var cmd tea.Cmd
	f := a.field(a.focus)
	*f, cmd = f.Update(msg)
	return a, cmd
}

// submit validates the form and runs the auth call off the UI loop.
func (a *AuthScreen) submit() tea.Cmd {
	a.errMsg = ""

	email := strings.TrimSpace(a.email.Value())
	password := a.password.Value()
	name := strings.TrimSpace(a.name.Value())

	if email == "" || password == "" {
		a.errMsg = "Email and secure key are required."
		return nil
	}

	a.submitting = true
	mode := a.mode
	users := a.deps.Users

	return func() tea.Msg {
		ctx := context.Background()
		var u *store.User
		var err error
		if mode == ModeSignup {
			u, err = users.Create(ctx, name, email, password)
		} else {
			u, err = users.FindByCredentials(ctx, email, password)
		}
		return authResultMsg{User: u, Err: err}
	}
}

// enter persists the sign-in and routes to placement or the dashboard.
// Replace keeps the login form off the back stack.
func (a *AuthScreen) enter(u *store.User) tea.Cmd {
	deps := a.deps
	return func() tea.Msg {
		if err := deps.Account.SignIn(context.Background(), u); err != nil {
			return authResultMsg{Err: err}
		}
		if !u.PlacementCompleted {
			return router.ReplaceScreenMsg{Screen: placementscreen.New(deps)}
		}
		return router.ReplaceScreenMsg{Screen: dashboard.New(deps)}
	}
}

func (a *AuthScreen) describeError(err error) string {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return "That email is already registered."
	case errors.Is(err, store.ErrNotFound):
		return "Invalid email or secure key."
	default:
		return "Something went wrong: " + err.Error()
	}
}

func (a *AuthScreen) View(width, height int) string {
	lang := a.deps.Account.Lang()

	title := theme.Title.Render(i18n.T(lang, i18n.AuthWelcome))
	subtitle := theme.Subtitle.Render(i18n.T(lang, i18n.AuthSubtitle))

	var fields []string
	if a.mode == ModeSignup {
		fields = append(fields, a.name.View())
	}
	fields = append(fields, a.email.View(), a.password.View())

	body := strings.Join(fields, "\n\n")

	if a.submitting {
		body += "\n\n" + theme.Hint.Render("Authenticating...")
	} else if a.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg)
	}

	card := theme.Card.Width(min(width-8, 56)).Render(body)
	content := strings.Join([]string{title, subtitle, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
