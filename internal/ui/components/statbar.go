package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/ui/theme"
)

// StatBar renders one labeled horizontal bar of the mistake map.
type StatBar struct {
	Label string
	Value int
	Max   int
	Width int
}

// View renders the bar as "Label  ███░░░░  3".
func (b StatBar) View() string {
	width := b.Width
	if width <= 0 {
		width = 20
	}

	filled := 0
	if b.Max > 0 {
		filled = b.Value * width / b.Max
	}
	if filled > width {
		filled = width
	}

	bar := theme.BarFilled.Render(strings.Repeat("█", filled)) +
		theme.BarEmpty.Render(strings.Repeat("░", width-filled))

	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(16).
		Render(b.Label)

	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %d", b.Value))

	return label + bar + count
}
