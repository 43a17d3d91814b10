package view

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/roster"
	"github.com/MrJamesThe3rd/splitty/internal/session"
)

// SidebarModel lists the friends with their balances and a select button per row.
type SidebarModel struct {
	table    table.Model
	friends  []*roster.Friend
	selected uuid.UUID
	addOpen  bool
}

func NewSidebarModel() SidebarModel {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Friend", Width: 14},
		{Title: "Balance", Width: 30},
		{Title: "", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return SidebarModel{table: t}
}

// SetState replaces the rows with the session snapshot.
func (m *SidebarModel) SetState(st session.State) {
	m.friends = st.Friends
	m.addOpen = st.AddFormOpen

	m.selected = uuid.Nil
	if st.Selected != nil {
		m.selected = st.Selected.ID
	}

	rows := make([]table.Row, 0, len(m.friends))
	for _, f := range m.friends {
		marker := ""
		if f.ID == m.selected {
			marker = "●"
		}

		rows = append(rows, table.Row{
			marker,
			f.Name,
			f.Describe(),
			m.rowButton(f).Text(),
		})
	}

	m.table.SetRows(rows)
}

func (m *SidebarModel) SetHeight(h int) {
	if h < 3 {
		h = 3
	}

	m.table.SetHeight(h)
}

func (m *SidebarModel) Focus() { m.table.Focus() }
func (m *SidebarModel) Blur()  { m.table.Blur() }

// Current is the friend under the cursor.
func (m SidebarModel) Current() *roster.Friend {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.friends) {
		return nil
	}

	return m.friends[idx]
}

func (m SidebarModel) rowButton(f *roster.Friend) Button {
	label := "Select"
	if f.ID == m.selected {
		label = "Close"
	}

	id := f.ID

	return Button{
		Label:   label,
		OnPress: func() tea.Msg { return SelectFriendMsg{ID: id} },
	}
}

// ToggleButton opens the add-friend form, or closes it when it is open.
func (m SidebarModel) ToggleButton() Button {
	label := "Add friend"
	if m.addOpen {
		label = "Close"
	}

	return Button{Label: label, OnPress: ToggleAddForm}
}

func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", " ":
			f := m.Current()
			if f == nil {
				return m, nil
			}

			return m, m.rowButton(f).Press()
		case "a":
			return m, m.ToggleButton().Press()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m SidebarModel) View() string {
	if len(m.friends) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			evenStyle.Render("No friends yet."),
			"",
			m.ToggleButton().View(false),
		)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	summary := ""
	if f := m.Current(); f != nil {
		summary = StandingStyle(f.Standing()).Render(f.Describe())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tableView,
		summary,
		"",
		m.ToggleButton().View(m.table.Focused()),
	)
}
