// Package history shows the learner's past attempt diagnoses.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/store"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// historyLimit caps the attempt list shown on screen.
const historyLimit = 50

// loadedMsg carries the async attempt list.
type loadedMsg struct {
	Records []*store.AttemptRecord
	Err     error
}

// HistoryScreen lists attempt events, newest first.
type HistoryScreen struct {
	deps     screens.Deps
	records  []*store.AttemptRecord
	selected int
	expanded bool
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the attempt history screen.
func New(deps screens.Deps) *HistoryScreen {
	return &HistoryScreen{deps: deps, loading: true}
}

func (h *HistoryScreen) Init() tea.Cmd {
	u := h.deps.Account.User()
	if u == nil {
		h.loading = false
		return nil
	}
	events := h.deps.Events
	userID := u.ID
	return func() tea.Msg {
		records, err := events.ListAttempts(context.Background(), userID, store.QueryOpts{Limit: historyLimit})
		return loadedMsg{Records: records, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "Attempt History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.loading = false
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.records = msg.Records
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.selected > 0 {
				h.selected--
				h.expanded = false
			}
		case "down", "j":
			if h.selected < len(h.records)-1 {
				h.selected++
				h.expanded = false
			}
		case "enter":
			if h.selected < len(h.records) {
				h.expanded = !h.expanded
			}
		}
	}

	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	lang := h.deps.Account.Lang()
	cardWidth := min(width-8, 76)

	title := theme.Title.Render("Attempt History")

	var b strings.Builder
	switch {
	case h.loading:
		b.WriteString(theme.Hint.Render("Loading..."))
	case h.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(h.errMsg))
	case len(h.records) == 0:
		b.WriteString(theme.Hint.Render("No attempts recorded yet."))
	default:
		for i, rec := range h.records {
			b.WriteString(h.renderRecord(lang, i, rec, cardWidth))
		}
	}

	card := theme.Card.Width(cardWidth).Render(strings.TrimRight(b.String(), "\n"))
	content := strings.Join([]string{title, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HistoryScreen) renderRecord(lang catalog.Language, i int, rec *store.AttemptRecord, cardWidth int) string {
	outcome := theme.Incorrect.Render(rec.ErrorType)
	if rec.ErrorType == "Success" || rec.ErrorType == "None" {
		outcome = theme.Correct.Render(rec.ErrorType)
	}

	topic := rec.TaskID
	if t := h.deps.Catalog.TaskByID(rec.TaskID); t != nil {
		topic = t.Topic
	}

	line := fmt.Sprintf("%s  %-26s %s  %d steps  %s",
		rec.Timestamp.Format("2006-01-02 15:04"),
		topic, outcome, rec.StepCount, formatMs(rec.TotalMs))

	var b strings.Builder
	if i == h.selected {
		b.WriteString(theme.Selected.Render("▸ ") + theme.Body.Render(line))
	} else {
		b.WriteString(theme.Unselected.Render("  " + line))
	}
	b.WriteByte('\n')

	if i == h.selected && h.expanded {
		detail := theme.Hint.Render(i18n.T(lang, i18n.LogicBreakPoint)+": ") + rec.LogicBreakPoint + "\n" +
			theme.Hint.Render(i18n.T(lang, i18n.Advice)+": ") + rec.Advice
		b.WriteString(lipgloss.NewStyle().
			Width(cardWidth - 8).
			PaddingLeft(4).
			Render(detail))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatMs renders a millisecond total as seconds with one decimal.
func formatMs(ms int64) string {
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}
