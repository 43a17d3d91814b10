package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("214"))
	buttonFocusedStyle = buttonStyle.
				Background(lipgloss.Color("208")).
				Bold(true)
)

// Button is a label with a press action. It holds no state of its own.
type Button struct {
	Label   string
	OnPress func() tea.Msg
}

// Text is the unstyled form, for places that measure widths themselves (table cells).
func (b Button) Text() string {
	return "[" + b.Label + "]"
}

func (b Button) View(focused bool) string {
	if focused {
		return buttonFocusedStyle.Render(b.Label)
	}

	return buttonStyle.Render(b.Label)
}

// Press returns the command that delivers the button's action, or nil when it has none.
func (b Button) Press() tea.Cmd {
	if b.OnPress == nil {
		return nil
	}

	return b.OnPress
}
