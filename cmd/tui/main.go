package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/splitty/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/splitty/internal/config"
	"github.com/MrJamesThe3rd/splitty/internal/logging"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
	"github.com/MrJamesThe3rd/splitty/internal/roster/store"
	"github.com/MrJamesThe3rd/splitty/internal/seed"
	"github.com/MrJamesThe3rd/splitty/internal/session"
)

type Focus int

const (
	FocusSidebar   Focus = 0
	FocusAddFriend Focus = 1
	FocusSplitBill Focus = 2
)

type model struct {
	view.CommonModel
	title      string
	avatarBase string
	session    *session.Session

	state session.State
	focus Focus

	sidebar   view.SidebarModel
	addFriend view.AddFriendModel
	splitBill view.SplitBillModel

	status string
	err    error
}

func initialModel(cfg *config.Config, sess *session.Session) (model, error) {
	m := model{
		title:      cfg.App.Name,
		avatarBase: cfg.Avatar.BaseURL,
		session:    sess,
		sidebar:    view.NewSidebarModel(),
	}

	ctx, cancel := view.OpCtx()
	defer cancel()

	st, err := sess.State(ctx)
	if err != nil {
		return m, err
	}

	m, _ = m.apply(st)

	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

type stateMsg struct {
	state session.State
	err   error
}

type resultMsg struct {
	status string
	err    error
}

func (m model) loadStateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.OpCtx()
		defer cancel()

		st, err := m.session.State(ctx)

		return stateMsg{state: st, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.sidebar.SetHeight(msg.Height - 14)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.focus == FocusSidebar {
				return m, tea.Quit
			}
		case "ctrl+o":
			m = m.cycleFocus()
			return m, nil
		}

	case view.ToggleAddFormMsg:
		return m, m.toggleAddFormCmd()

	case view.CloseAddFormMsg:
		return m, m.closeAddFormCmd()

	case view.SelectFriendMsg:
		return m, m.selectCmd(msg)

	case view.AddFriendMsg:
		return m, m.addFriendCmd(msg)

	case view.SplitBillMsg:
		return m, m.splitBillCmd(msg)

	case resultMsg:
		m.status = msg.status
		m.err = msg.err

		return m, m.loadStateCmd()

	case addFriendFailedMsg:
		m.err = msg.err
		m.addFriend, cmd = m.addFriend.Rejected(msg.err)

		return m, cmd

	case splitBillFailedMsg:
		m.err = msg.err
		m.splitBill = m.splitBill.Rejected(msg.err)

		return m, nil

	case stateMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		return m.apply(msg.state)
	}

	switch m.focus {
	case FocusSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case FocusAddFriend:
		m.addFriend, cmd = m.addFriend.Update(msg)
	case FocusSplitBill:
		m.splitBill, cmd = m.splitBill.Update(msg)
	}

	return m, cmd
}

// apply takes a new session snapshot, opening and closing panes to match it.
func (m model) apply(st session.State) (model, tea.Cmd) {
	var cmds []tea.Cmd

	prev := m.state
	m.state = st
	m.sidebar.SetState(st)

	if st.AddFormOpen && !prev.AddFormOpen {
		m.addFriend = view.NewAddFriendModel(m.avatarBase)
		m.focus = FocusAddFriend
		cmds = append(cmds, m.addFriend.Init())
	}

	if st.Selected != nil && (prev.Selected == nil || prev.Selected.ID != st.Selected.ID) {
		m.splitBill = view.NewSplitBillModel(st.Selected)
		m.focus = FocusSplitBill
		cmds = append(cmds, m.splitBill.Init())
	}

	switch {
	case m.focus == FocusAddFriend && !st.AddFormOpen:
		m.focus = FocusSidebar
	case m.focus == FocusSplitBill && st.Selected == nil:
		m.focus = FocusSidebar
	}

	m.syncFocus()

	return m, tea.Batch(cmds...)
}

func (m model) cycleFocus() model {
	order := []Focus{FocusSidebar}
	if m.state.AddFormOpen {
		order = append(order, FocusAddFriend)
	}

	if m.state.Selected != nil {
		order = append(order, FocusSplitBill)
	}

	for i, f := range order {
		if f == m.focus {
			m.focus = order[(i+1)%len(order)]
			break
		}
	}

	m.syncFocus()

	return m
}

func (m *model) syncFocus() {
	if m.focus == FocusSidebar {
		m.sidebar.Focus()
	} else {
		m.sidebar.Blur()
	}
}

func (m model) toggleAddFormCmd() tea.Cmd {
	return func() tea.Msg {
		m.session.ToggleAddForm()
		return resultMsg{}
	}
}

func (m model) closeAddFormCmd() tea.Cmd {
	return func() tea.Msg {
		m.session.CloseAddForm()
		return resultMsg{}
	}
}

func (m model) selectCmd(msg view.SelectFriendMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.OpCtx()
		defer cancel()

		f, err := m.session.Select(ctx, msg.ID)
		if err != nil {
			return resultMsg{err: err}
		}

		if f == nil {
			return resultMsg{}
		}

		return resultMsg{status: fmt.Sprintf("Splitting a bill with %s", f.Name)}
	}
}

type addFriendFailedMsg struct{ err error }

func (m model) addFriendCmd(msg view.AddFriendMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.OpCtx()
		defer cancel()

		f, err := m.session.AddFriend(ctx, msg.Form)
		if err != nil {
			return addFriendFailedMsg{err: err}
		}

		return resultMsg{status: fmt.Sprintf("Added %s", f.Name)}
	}
}

type splitBillFailedMsg struct{ err error }

func (m model) splitBillCmd(msg view.SplitBillMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.OpCtx()
		defer cancel()

		f, err := m.session.SplitBill(ctx, msg.Form)
		if err != nil {
			return splitBillFailedMsg{err: err}
		}

		return resultMsg{status: f.Describe()}
	}
}

func (m model) helpText() string {
	switch m.focus {
	case FocusAddFriend:
		return "tab: next field | enter: add | esc: close | ctrl+o: switch pane"
	case FocusSplitBill:
		return "tab: next field | ←/→: payer | enter: split | esc: close | ctrl+o: switch pane"
	}

	return "↑/↓: move | enter: select/close | a: add friend | ctrl+o: switch pane | q: quit"
}

func (m model) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")).
		PaddingBottom(1).
		Render(m.title)

	left := m.sidebar.View()
	if m.state.AddFormOpen {
		left = lipgloss.JoinVertical(lipgloss.Left, left, "", m.addFriend.View())
	}

	content := left
	if m.state.Selected != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.splitBill.View())
	}

	footer := lipgloss.NewStyle().Faint(true).Render(m.helpText())
	if m.err != nil {
		footer = view.ErrorText(m.err) + "\n" + footer
	} else if m.status != "" {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) + "\n" + footer
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, content, "", footer),
	)
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()

		logOut = f
	}

	logging.Setup(logOut, cfg.Log.Level, false)

	friends, err := seed.Initial(cfg.Seed.File, cfg.Seed.Defaults, cfg.Avatar.BaseURL)
	if err != nil {
		return fmt.Errorf("loading initial friends: %w", err)
	}

	sess := session.New(roster.NewService(store.New()))

	ctx := context.Background()
	if err := sess.Seed(ctx, friends); err != nil {
		return err
	}

	m, err := initialModel(cfg, sess)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	summary, err := sess.Summary(ctx)
	if err != nil {
		return err
	}

	fmt.Print(summary)

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("splitty failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
