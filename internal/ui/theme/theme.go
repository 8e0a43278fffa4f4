package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, dark zinc with indigo accents
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#22D3EE") // Cyan
	Accent    = lipgloss.Color("#A78BFA") // Violet
	Success   = lipgloss.Color("#34D399") // Emerald
	Error     = lipgloss.Color("#FB7185") // Rose
	Warning   = lipgloss.Color("#FBBF24") // Amber
	Text      = lipgloss.Color("#FAFAFA") // Zinc 50
	TextDim   = lipgloss.Color("#A1A1AA") // Zinc 400
	BgDark    = lipgloss.Color("#09090B") // Zinc 950
	BgCard    = lipgloss.Color("#18181B") // Zinc 900
	Border    = lipgloss.Color("#3F3F46") // Zinc 700
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	BarFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	BarEmpty = lipgloss.NewStyle().
			Foreground(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
