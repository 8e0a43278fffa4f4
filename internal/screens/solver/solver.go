// Package solver runs a single task attempt: timed step entry, the
// per-kind interaction surfaces, and the model diagnosis of the result.
package solver

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/attempt"
	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/diagnosis"
	"github.com/abhisek/errormind/internal/i18n"
	"github.com/abhisek/errormind/internal/router"
	"github.com/abhisek/errormind/internal/screen"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/store"
	"github.com/abhisek/errormind/internal/ui/components"
	"github.com/abhisek/errormind/internal/ui/layout"
	"github.com/abhisek/errormind/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseAnalyzing
	phaseResult
)

// tickMsg drives the session clock while the attempt is open.
type tickMsg time.Time

// diagnosisMsg carries the finished analysis and the persistence outcome.
// Gen ties the message to the submission that issued it; a cancelled
// submission's late resolution carries a stale Gen and is dropped.
type diagnosisMsg struct {
	Gen     int
	Result  *diagnosis.Result
	SaveErr error
}

// SolverScreen is the attempt surface for one task.
type SolverScreen struct {
	deps     screens.Deps
	task     catalog.Task
	recorder *attempt.Recorder

	phase    phase
	input    components.TextInput
	showHint bool
	elapsed  time.Duration

	// SpotTheError and Sequence cursor state.
	selected int
	picked   []int

	result  *diagnosis.Result
	saveErr error
	cancel  context.CancelFunc
	gen     int
}

var _ screen.Screen = (*SolverScreen)(nil)
var _ screen.KeyHintProvider = (*SolverScreen)(nil)
var _ screen.BackInterceptor = (*SolverScreen)(nil)

// New opens an attempt on task. The clock starts immediately.
func New(deps screens.Deps, task catalog.Task) *SolverScreen {
	lang := deps.Account.Lang()
	return &SolverScreen{
		deps:     deps,
		task:     task,
		recorder: attempt.NewRecorder(),
		input:    components.NewTextInput("", i18n.T(lang, i18n.StepsPlaceholder), false),
	}
}

func (s *SolverScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Focus(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SolverScreen) Title() string {
	return s.task.Topic
}

func (s *SolverScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnalyzing:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case phaseResult:
		return []layout.KeyHint{{Key: "Enter/Esc", Description: "Done"}}
	}

	hints := []layout.KeyHint{}
	switch s.task.Kind {
	case catalog.KindSpotTheError:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navigate"},
			layout.KeyHint{Key: "Enter", Description: "Flag node"})
	case catalog.KindSequence:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navigate"},
			layout.KeyHint{Key: "Enter", Description: "Pick"},
			layout.KeyHint{Key: "Ctrl+S", Description: "Submit order"})
	default:
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Commit step"},
			layout.KeyHint{Key: "Ctrl+S", Description: "Run analysis"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+H", Description: "Hint"},
		layout.KeyHint{Key: "Esc", Description: "Abort"})
}

// InterceptBack cancels a running analysis instead of popping; in every
// other phase the default pop applies. Bumping gen invalidates the
// in-flight submission so its late resolution is dropped, and the screen
// returns to the input phase.
func (s *SolverScreen) InterceptBack() (tea.Cmd, bool) {
	if s.phase == phaseAnalyzing && s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.gen++
		s.phase = phaseInput
		return tick(), true
	}
	return nil, false
}

func (s *SolverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.phase == phaseInput {
			s.elapsed = s.recorder.Elapsed()
			return s, tick()
		}
		return s, nil

	case diagnosisMsg:
		if msg.Gen != s.gen {
			return s, nil
		}
		s.phase = phaseResult
		s.result = msg.Result
		s.saveErr = msg.SaveErr
		s.cancel = nil
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SolverScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseAnalyzing:
		return s, nil

	case phaseResult:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if msg.String() == "ctrl+h" {
		s.showHint = !s.showHint
		return s, nil
	}

	switch s.task.Kind {
	case catalog.KindSpotTheError:
		return s.handleHotspotKey(msg)
	case catalog.KindSequence:
		return s.handleSequenceKey(msg)
	}
	return s.handleTextKey(msg)
}

func (s *SolverScreen) handleTextKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if s.recorder.Append(s.input.Value(), nil) {
			s.input.Model.SetValue("")
		}
		return s, nil
	case "ctrl+s":
		return s, s.finish(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SolverScreen) hotspots() []catalog.Hotspot {
	if s.task.Visual == nil {
		return nil
	}
	return s.task.Visual.Hotspots
}

// handleHotspotKey flags a node. The selection is the whole answer, so
// it submits immediately.
func (s *SolverScreen) handleHotspotKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	spots := s.hotspots()
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(spots)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(spots) {
			h := spots[s.selected]
			s.recorder.Append("Flagged node: "+h.Label, attempt.HotspotClick{
				HotspotID: h.ID,
				Label:     h.Label,
			})
			return s, s.finish("")
		}
	}
	return s, nil
}

func (s *SolverScreen) sequenceItems() []catalog.SequenceItem {
	if s.task.Visual == nil {
		return nil
	}
	return s.task.Visual.SequenceItems
}

// handleSequenceKey builds an ordering by picking items one at a time.
// Picking an already picked item unpicks it.
func (s *SolverScreen) handleSequenceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	items := s.sequenceItems()
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(items)-1 {
			s.selected++
		}
	case "enter":
		for i, p := range s.picked {
			if p == s.selected {
				s.picked = append(s.picked[:i], s.picked[i+1:]...)
				return s, nil
			}
		}
		s.picked = append(s.picked, s.selected)
	case "ctrl+s":
		if len(s.picked) != len(items) {
			return s, nil
		}
		ids := make([]string, len(s.picked))
		labels := make([]string, len(s.picked))
		for i, p := range s.picked {
			ids[i] = items[p].ID
			labels[i] = items[p].Content
		}
		s.recorder.Append("Submitted order: "+strings.Join(labels, " -> "),
			attempt.SequenceSubmit{ItemIDs: ids})
		return s, s.finish("")
	}
	return s, nil
}

// finish closes the attempt and runs diagnosis plus persistence off the
// UI loop. A blank attempt with no committed steps is not analyzable.
func (s *SolverScreen) finish(pending string) tea.Cmd {
	steps, total := s.recorder.Finalize(pending)
	if len(steps) == 0 {
		return nil
	}

	s.phase = phaseAnalyzing
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++

	gen := s.gen
	deps := s.deps
	task := s.task
	return func() tea.Msg {
		defer cancel()

		var result *diagnosis.Result
		if deps.Evaluator != nil {
			result = deps.Evaluator.Evaluate(ctx, task, steps, total)
		} else {
			result = diagnosis.FallbackResult(task)
		}

		return diagnosisMsg{
			Gen:     gen,
			Result:  result,
			SaveErr: persist(ctx, deps, task, result, len(steps), total),
		}
	}
}

// persist applies the diagnosis to the profile and appends the attempt
// event. Either failure surfaces on the result view without blocking it.
func persist(ctx context.Context, deps screens.Deps, task catalog.Task, result *diagnosis.Result, stepCount int, total time.Duration) error {
	u := deps.Account.User()
	if u == nil {
		return store.ErrNotFound
	}

	updated := diagnosis.Apply(*u, task.ID, result)
	if err := deps.Account.SaveUser(ctx, &updated); err != nil {
		return err
	}

	return deps.Events.AppendAttempt(ctx, store.AttemptEventData{
		UserID:          u.ID,
		TaskID:          task.ID,
		ErrorType:       result.ErrorType,
		LogicBreakPoint: result.LogicBreakPoint,
		TrapTask:        result.TrapTask,
		Advice:          result.Advice,
		StepCount:       stepCount,
		TotalMs:         total.Milliseconds(),
		Fallback:        result.Fallback,
	})
}

func (s *SolverScreen) View(width, height int) string {
	lang := s.deps.Account.Lang()
	content := s.task.Text(lang)
	cardWidth := min(width-8, 72)

	header := theme.Title.Render(s.task.Topic) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("%s / %s / %s   %s",
			s.task.Subject, s.task.Level, s.task.Difficulty, formatClock(s.elapsed)))

	question := theme.Card.Width(cardWidth).Render(
		theme.Body.Render(content.Question))

	var body string
	switch s.phase {
	case phaseAnalyzing:
		body = theme.Card.Width(cardWidth).Render(
			theme.Hint.Render("Running logic diagnostic..."))
	case phaseResult:
		body = theme.Card.Width(cardWidth).Render(s.viewResult(lang))
	default:
		body = theme.Card.Width(cardWidth).Render(s.viewInput(lang))
	}

	parts := []string{header, "", question, "", body}
	if s.showHint && s.phase == phaseInput {
		hint := theme.Card.Width(cardWidth).Render(
			theme.Hint.Render(i18n.T(lang, i18n.Hint) + ": " + content.Hint))
		parts = append(parts, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(parts, "\n"))
}

func (s *SolverScreen) viewInput(lang catalog.Language) string {
	switch s.task.Kind {
	case catalog.KindSpotTheError:
		return s.viewHotspots(lang)
	case catalog.KindSequence:
		return s.viewSequence(lang)
	}

	var b strings.Builder
	for i, step := range s.recorder.Steps() {
		fmt.Fprintf(&b, "%s %s %s\n",
			theme.Hint.Render(fmt.Sprintf("%2d.", i+1)),
			theme.Body.Render(step.Content),
			theme.Hint.Render(fmt.Sprintf("(%.1fs)", step.Duration.Seconds())))
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(s.input.View())
	return b.String()
}

func (s *SolverScreen) viewHotspots(lang catalog.Language) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(i18n.T(lang, i18n.SpotTheError)))
	b.WriteString("\n")
	if s.task.Visual != nil && s.task.Visual.AssetDescription != "" {
		b.WriteString(theme.Hint.Render(s.task.Visual.AssetDescription))
		b.WriteString("\n")
	}
	b.WriteByte('\n')
	for i, h := range s.hotspots() {
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + h.Label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + h.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *SolverScreen) viewSequence(lang catalog.Language) string {
	pos := make(map[int]int, len(s.picked))
	for i, p := range s.picked {
		pos[p] = i + 1
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(i18n.T(lang, i18n.SequenceTask)))
	b.WriteString("\n\n")
	for i, item := range s.sequenceItems() {
		mark := "   "
		if n, ok := pos[i]; ok {
			mark = theme.Correct.Render(fmt.Sprintf("%2d.", n))
		}
		line := mark + " " + item.Content
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *SolverScreen) viewResult(lang catalog.Language) string {
	r := s.result

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(i18n.T(lang, i18n.Analysis)))
	b.WriteString("\n\n")

	typeStyle := theme.Incorrect
	if r.IsSuccess() {
		typeStyle = theme.Correct
	}
	fmt.Fprintf(&b, "%s  %s\n",
		theme.Hint.Render(i18n.T(lang, i18n.ErrorType)+":"),
		typeStyle.Render(r.ErrorType))
	fmt.Fprintf(&b, "%s  %s\n",
		theme.Hint.Render(i18n.T(lang, i18n.LogicBreakPoint)+":"),
		theme.Body.Render(r.LogicBreakPoint))
	fmt.Fprintf(&b, "%s  %s\n",
		theme.Hint.Render(i18n.T(lang, i18n.Advice)+":"),
		theme.Body.Render(r.Advice))

	if r.Fallback {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).
			Render("Diagnostic engine unreachable; generic analysis shown."))
		b.WriteByte('\n')
	}
	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("Profile update failed: " + s.saveErr.Error()))
		b.WriteByte('\n')
	}

	return b.String()
}

// formatClock renders elapsed time as m:ss.
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
