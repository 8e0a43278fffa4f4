package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/errormind/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with ErrorMind styling.
type TextInput struct {
	Model    textinput.Model
	Label    string
	errorMsg string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, masked bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if masked {
		ti.EchoMode = textinput.EchoPassword
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the labeled input with any inline error beneath it.
func (t TextInput) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label)
	view := label + "\n" + t.Model.View()
	if t.errorMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.errorMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetError shows an inline error under the input.
func (t *TextInput) SetError(msg string) {
	t.errorMsg = msg
}

// ClearError removes the inline error.
func (t *TextInput) ClearError() {
	t.errorMsg = ""
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur unfocuses the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}
