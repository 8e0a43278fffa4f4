// Package materials is the searchable reference library. Entries can be
// captured into the learner's note vault.
package materials

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/store"
	"github.com/abhisek/errormind/internal/ui/components"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

// noteFolder is where captured snippets land in the vault.
const noteFolder = "Knowledge Vault"

// capturedMsg reports the async note save.
type capturedMsg struct {
	Err error
}

// MaterialsScreen is the reference-library browser.
type MaterialsScreen struct {
	deps screens.Deps

	search      components.TextInput
	searchFocus bool
	subject     int // index into subjects()
	selected    int
	expanded    bool
	status      string

	// Interactive solver state, active while calcMode is set.
	calcMode   bool
	calc       *catalog.Calculator
	calcTitle  string
	calcInputs []components.TextInput
	calcFocus  int
	calcResult *float64
	calcErr    string
}

var _ screen.Screen = (*MaterialsScreen)(nil)
var _ screen.KeyHintProvider = (*MaterialsScreen)(nil)
var _ screen.BackInterceptor = (*MaterialsScreen)(nil)

// New creates the library screen with the search box focused.
func New(deps screens.Deps) *MaterialsScreen {
	lang := deps.Account.Lang()
	return &MaterialsScreen{
		deps:        deps,
		search:      components.NewTextInput(i18n.T(lang, i18n.Materials), i18n.T(lang, i18n.SearchPrompt), false),
		searchFocus: true,
	}
}

// subjects is the filter cycle: All first, then every field.
func subjects() []catalog.Subject {
	return append([]catalog.Subject{catalog.SubjectAll}, catalog.FilterSubjects...)
}

func (m *MaterialsScreen) Init() tea.Cmd {
	return m.search.Focus()
}

func (m *MaterialsScreen) Title() string {
	return i18n.T(m.deps.Account.Lang(), i18n.LibTile)
}

func (m *MaterialsScreen) KeyHints() []layout.KeyHint {
	if m.calcMode {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Compute"},
			{Key: "Esc", Description: "Close solver"},
		}
	}
	if m.searchFocus {
		return []layout.KeyHint{
			{Key: "Tab", Description: "To list"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "To search"},
		{Key: "←→", Description: "Field filter"},
		{Key: "Enter", Description: "Expand"},
		{Key: "C", Description: "Solver"},
		{Key: "N", Description: "Capture note"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MaterialsScreen) results() []catalog.Material {
	lang := m.deps.Account.Lang()
	return m.deps.Catalog.FilterMaterials(subjects()[m.subject], m.search.Value(), lang)
}

func (m *MaterialsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case capturedMsg:
		if msg.Err != nil {
			m.status = "Capture failed: " + msg.Err.Error()
		} else {
			m.status = "Captured to " + noteFolder + "."
		}
		return m, nil

	case tea.KeyMsg:
		if m.calcMode {
			return m.handleCalcKey(msg)
		}
		if msg.String() == "tab" {
			m.searchFocus = !m.searchFocus
			if m.searchFocus {
				return m, m.search.Focus()
			}
			m.search.Blur()
			return m, nil
		}

		if m.searchFocus {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.selected = 0
			m.expanded = false
			return m, cmd
		}
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m *MaterialsScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	results := m.results()
	if m.selected >= len(results) && len(results) > 0 {
		m.selected = len(results) - 1
	}

	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.expanded = false
		}
	case "down", "j":
		if m.selected < len(results)-1 {
			m.selected++
			m.expanded = false
		}
	case "left", "h":
		m.subject = (m.subject - 1 + len(subjects())) % len(subjects())
		m.selected = 0
		m.expanded = false
	case "right", "l":
		m.subject = (m.subject + 1) % len(subjects())
		m.selected = 0
		m.expanded = false
	case "enter":
		if m.selected < len(results) {
			m.expanded = !m.expanded
		}
	case "n", "N":
		if m.selected < len(results) {
			return m, m.capture(results[m.selected])
		}
	case "c", "C":
		if m.selected < len(results) {
			return m, m.openCalculator(results[m.selected])
		}
	}

	return m, nil
}

// openCalculator switches to the material's interactive solver, if it
// has one.
func (m *MaterialsScreen) openCalculator(mat catalog.Material) tea.Cmd {
	if mat.Calculator == nil {
		m.status = "This entry has no solver."
		return nil
	}
	lang := m.deps.Account.Lang()
	m.calcMode = true
	m.calc = mat.Calculator
	m.calcTitle = mat.TitleIn(lang)
	m.calcFocus = 0
	m.calcResult = nil
	m.calcErr = ""
	m.status = ""
	m.search.Blur()

	inputs := m.calc.Inputs()
	m.calcInputs = make([]components.TextInput, len(inputs))
	for i, v := range inputs {
		m.calcInputs[i] = components.NewTextInput(v.Label+" ("+v.Unit+")", "0", false)
	}
	if len(m.calcInputs) > 0 {
		return m.calcInputs[0].Focus()
	}
	return nil
}

func (m *MaterialsScreen) handleCalcKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if len(m.calcInputs) == 0 {
		if msg.String() == "enter" {
			m.compute()
		}
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		return m, m.focusCalcInput((m.calcFocus + 1) % len(m.calcInputs))
	case "shift+tab", "up":
		return m, m.focusCalcInput((m.calcFocus - 1 + len(m.calcInputs)) % len(m.calcInputs))
	case "enter":
		m.compute()
		return m, nil
	}

	var cmd tea.Cmd
	m.calcInputs[m.calcFocus], cmd = m.calcInputs[m.calcFocus].Update(msg)
	return m, cmd
}

func (m *MaterialsScreen) focusCalcInput(i int) tea.Cmd {
	if len(m.calcInputs) == 0 {
		return nil
	}
	m.calcInputs[m.calcFocus].Blur()
	m.calcFocus = i
	return m.calcInputs[i].Focus()
}

// compute parses every editable field and evaluates the formula.
func (m *MaterialsScreen) compute() {
	m.calcResult = nil
	m.calcErr = ""

	vals := make(map[string]float64, len(m.calcInputs))
	for i, v := range m.calc.Inputs() {
		raw := strings.TrimSpace(m.calcInputs[i].Value())
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.calcErr = v.Label + ": enter a number."
			return
		}
		vals[v.ID] = n
	}

	result, err := m.calc.Compute(vals)
	if err != nil {
		m.calcErr = err.Error()
		return
	}
	m.calcResult = &result
}

// InterceptBack closes the solver instead of leaving the library.
func (m *MaterialsScreen) InterceptBack() (tea.Cmd, bool) {
	if !m.calcMode {
		return nil, false
	}
	m.calcMode = false
	m.calc = nil
	m.calcInputs = nil
	m.calcResult = nil
	m.calcErr = ""
	if m.searchFocus {
		return m.search.Focus(), true
	}
	return nil, true
}

// capture appends the entry to the note vault off the UI loop.
func (m *MaterialsScreen) capture(mat catalog.Material) tea.Cmd {
	u := m.deps.Account.User()
	if u == nil {
		return nil
	}
	lang := m.deps.Account.Lang()
	notes := m.deps.Notes
	note := &store.Note{
		UserID: u.ID,
		Text:   mat.TitleIn(lang) + ": " + mat.ContentIn(lang),
		Folder: noteFolder,
	}
	return func() tea.Msg {
		return capturedMsg{Err: notes.Append(context.Background(), note)}
	}
}

func (m *MaterialsScreen) View(width, height int) string {
	if m.calcMode {
		return m.calcView(width, height)
	}

	lang := m.deps.Account.Lang()
	results := m.results()
	cardWidth := min(width-8, 76)

	filter := theme.Subtitle.Render(fmt.Sprintf("%s: %s  (%d entries)",
		i18n.T(lang, i18n.Subjects), subjects()[m.subject], len(results)))

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(results) == 0 {
		b.WriteString(theme.Hint.Render("No entries match."))
	}
	for i, mat := range results {
		line := fmt.Sprintf("%-34s %-16s %s", mat.TitleIn(lang), mat.Subject, mat.Category)
		if i == m.selected && !m.searchFocus {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteByte('\n')
		if i == m.selected && m.expanded {
			body := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(cardWidth - 10).
				PaddingLeft(6).
				Render(mat.ContentIn(lang))
			b.WriteString(body)
			b.WriteByte('\n')
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(m.status))
	}

	card := theme.Card.Width(cardWidth).Render(b.String())
	content := strings.Join([]string{filter, "", card}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *MaterialsScreen) calcView(width, height int) string {
	cardWidth := min(width-8, 60)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(m.calcTitle))
	b.WriteString("\n\n")

	for _, v := range m.calc.Variables {
		if v.Fixed == nil {
			continue
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%s = %g %s (constant)", v.Label, *v.Fixed, v.Unit)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for i := range m.calcInputs {
		b.WriteString(m.calcInputs[i].View())
		b.WriteString("\n\n")
	}

	if m.calcErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(m.calcErr))
		b.WriteByte('\n')
	}
	if m.calcResult != nil {
		b.WriteString(theme.Selected.Render(fmt.Sprintf("Result: %g", *m.calcResult)))
		b.WriteByte('\n')
	}

	card := theme.Card.Width(cardWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
