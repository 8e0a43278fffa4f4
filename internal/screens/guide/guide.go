// Package guide renders the static system manual.
package guide

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

type section struct {
	heading string
	body    string
}

var sections = []section{
	{
		heading: "Calibration",
		body: "On first sign-in the system runs a three-question calibration " +
			"and assigns your academic tier and grade. Training content and " +
			"analysis depth follow the assigned tier.",
	},
	{
		heading: "Knowledge Arena",
		body: "Pick a task and work through it step by step. Commit each " +
			"derivation step with Enter; the time you reflect before each " +
			"commit is recorded and feeds the diagnostic. Run the analysis " +
			"with Ctrl+S when your derivation is complete.",
	},
	{
		heading: "Diagnostic Scan and Process Ordering",
		body: "Some tasks present a flawed derivation to flag, or a set of " +
			"process stages to arrange. Flagging a node submits immediately; " +
			"orderings are submitted with Ctrl+S once every stage is placed.",
	},
	{
		heading: "AI Logic Diagnostic",
		body: "After submission the engine classifies the attempt into an " +
			"error vector: Logical, Computational, Carelessness, Wrong " +
			"Strategy, or Attention. The failure node and a corrective " +
			"protocol are shown with every diagnosis.",
	},
	{
		heading: "Cognitive Remediation",
		body: "Failed tasks accumulate as failure vectors. Retry them from " +
			"the remediation view; a successful retry clears the vector.",
	},
	{
		heading: "Knowledge Vault",
		body: "The vault holds formulas, constants, and protocols, searchable " +
			"and filterable by field. Press N on an entry to capture it into " +
			"your insight logs.",
	},
}

// GuideScreen is a scrollable static manual.
type GuideScreen struct {
	deps   screens.Deps
	offset int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

// New creates the manual screen.
func New(deps screens.Deps) *GuideScreen {
	return &GuideScreen{deps: deps}
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Title() string {
	return i18n.T(g.deps.Account.Lang(), i18n.Guide)
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if g.offset > 0 {
			g.offset--
		}
	case "down", "j":
		if g.offset < len(sections)-1 {
			g.offset++
		}
	}
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	lang := g.deps.Account.Lang()
	cardWidth := min(width-8, 72)

	title := theme.Title.Render(i18n.T(lang, i18n.Guide))

	var b strings.Builder
	for _, s := range sections[g.offset:] {
		b.WriteString(theme.Body.Bold(true).Render(s.heading))
		b.WriteByte('\n')
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cardWidth - 6).
			Render(s.body))
		b.WriteString("\n\n")
	}

	card := theme.Card.Width(cardWidth).Render(strings.TrimRight(b.String(), "\n"))
	content := strings.Join([]string{title, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
