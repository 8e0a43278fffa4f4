// Package notes shows the learner's captured knowledge snippets.
package notes

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/store"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// loadedMsg carries the async note list.
type loadedMsg struct {
	Notes []*store.Note
	Err   error
}

// NotesScreen lists the signed-in user's notes, newest first.
type NotesScreen struct {
	deps     screens.Deps
	notes    []*store.Note
	selected int
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*NotesScreen)(nil)
var _ screen.KeyHintProvider = (*NotesScreen)(nil)

// New creates the note vault screen.
func New(deps screens.Deps) *NotesScreen {
	return &NotesScreen{deps: deps, loading: true}
}

func (n *NotesScreen) Init() tea.Cmd {
	u := n.deps.Account.User()
	if u == nil {
		n.loading = false
		return nil
	}
	notes := n.deps.Notes
	userID := u.ID
	return func() tea.Msg {
		list, err := notes.ListByUser(context.Background(), userID)
		return loadedMsg{Notes: list, Err: err}
	}
}

func (n *NotesScreen) Title() string {
	return i18n.T(n.deps.Account.Lang(), i18n.KnowledgeFolders)
}

func (n *NotesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (n *NotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		n.loading = false
		if msg.Err != nil {
			n.errMsg = msg.Err.Error()
			return n, nil
		}
		n.notes = msg.Notes
		return n, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if n.selected > 0 {
				n.selected--
			}
		case "down", "j":
			if n.selected < len(n.notes)-1 {
				n.selected++
			}
		}
	}

	return n, nil
}

func (n *NotesScreen) View(width, height int) string {
	lang := n.deps.Account.Lang()
	cardWidth := min(width-8, 76)

	title := theme.Title.Render(i18n.T(lang, i18n.KnowledgeFolders))

	var b strings.Builder
	switch {
	case n.loading:
		b.WriteString(theme.Hint.Render("Loading..."))
	case n.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(n.errMsg))
	case len(n.notes) == 0:
		b.WriteString(theme.Hint.Render("Nothing captured yet. Flag entries in the vault with N."))
	default:
		for i, note := range n.notes {
			meta := fmt.Sprintf("%s  %s", note.CapturedAt.Format("2006-01-02 15:04"), note.Folder)
			if i == n.selected {
				b.WriteString(theme.Selected.Render("▸ " + meta))
			} else {
				b.WriteString(theme.Hint.Render("  " + meta))
			}
			b.WriteByte('\n')
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(cardWidth - 8).
				PaddingLeft(2).
				Render(note.Text))
			b.WriteString("\n\n")
		}
	}

	card := theme.Card.Width(cardWidth).Render(strings.TrimRight(b.String(), "\n"))
	content := strings.Join([]string{title, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
