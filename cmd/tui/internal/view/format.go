package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/splitty/internal/roster"
)

const opTimeout = 2 * time.Second

// OpCtx returns a context with a standard timeout for session operations.
func OpCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

var (
	owesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	owedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	evenStyle   = lipgloss.NewStyle().Faint(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	panelStyle  = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

// StandingStyle colours a balance phrase: red when the user owes, green when owed.
func StandingStyle(s roster.Standing) lipgloss.Style {
	switch s {
	case roster.StandingOwes:
		return owesStyle
	case roster.StandingOwed:
		return owedStyle
	}

	return evenStyle
}

func ErrorText(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
