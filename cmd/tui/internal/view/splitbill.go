package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/splitty/internal/form"
	"github.com/MrJamesThe3rd/splitty/internal/money"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
)

type splitField int

const (
	splitFieldTotal splitField = iota
	splitFieldPaid
	splitFieldPayer
	splitFieldCount
)

var labelStyle = lipgloss.NewStyle().Width(22)

// SplitBillModel is the split-bill form for one friend.
type SplitBillModel struct {
	friend *roster.Friend
	bill   *form.SplitBill

	totalInput textinput.Model
	paidInput  textinput.Model
	field      splitField

	err error
}

func NewSplitBillModel(friend *roster.Friend) SplitBillModel {
	total := textinput.New()
	total.Placeholder = "0.00"
	total.CharLimit = 12
	total.Width = 12
	total.Focus()

	paid := textinput.New()
	paid.Placeholder = "0.00"
	paid.CharLimit = 12
	paid.Width = 12

	return SplitBillModel{
		friend:     friend,
		bill:       form.NewSplitBill(),
		totalInput: total,
		paidInput:  paid,
	}
}

func (m SplitBillModel) Friend() *roster.Friend { return m.friend }
func (m SplitBillModel) Bill() *form.SplitBill  { return m.bill }

func (m SplitBillModel) Init() tea.Cmd {
	return textinput.Blink
}

// Rejected shows why the last submit failed. The entered values stay.
func (m SplitBillModel) Rejected(err error) SplitBillModel {
	m.err = err
	return m
}

func (m SplitBillModel) Update(msg tea.Msg) (SplitBillModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		id := m.friend.ID
		return m, func() tea.Msg { return SelectFriendMsg{ID: id} }
	case "tab", "down":
		return m.focusField((m.field + 1) % splitFieldCount)
	case "shift+tab", "up":
		return m.focusField((m.field + splitFieldCount - 1) % splitFieldCount)
	case "enter":
		m.err = nil
		bill := m.bill

		return m, func() tea.Msg { return SplitBillMsg{Form: bill} }
	}

	if m.field == splitFieldPayer {
		switch keyMsg.String() {
		case "left", "right", " ", "h", "l":
			m.bill.TogglePayer()
		}

		return m, nil
	}

	return m.updateInputs(msg)
}

func (m SplitBillModel) focusField(f splitField) (SplitBillModel, tea.Cmd) {
	m.field = f
	m.totalInput.Blur()
	m.paidInput.Blur()

	switch f {
	case splitFieldTotal:
		return m, m.totalInput.Focus()
	case splitFieldPaid:
		return m, m.paidInput.Focus()
	}

	return m, nil
}

// updateInputs feeds the focused input and keeps the bill in step with it.
// Text the bill refuses is reverted, so the input always shows the accepted value.
func (m SplitBillModel) updateInputs(msg tea.Msg) (SplitBillModel, tea.Cmd) {
	var cmd tea.Cmd

	switch m.field {
	case splitFieldTotal:
		prev := m.totalInput.Value()
		m.totalInput, cmd = m.totalInput.Update(msg)

		if m.totalInput.Value() == prev {
			return m, cmd
		}

		if err := m.bill.SetTotalText(m.totalInput.Value()); err != nil {
			m.totalInput.SetValue(prev)
			m.err = err

			return m, cmd
		}
	case splitFieldPaid:
		prev := m.paidInput.Value()
		m.paidInput, cmd = m.paidInput.Update(msg)

		if m.paidInput.Value() == prev {
			return m, cmd
		}

		if err := m.bill.SetPaidByUserText(m.paidInput.Value()); err != nil {
			m.paidInput.SetValue(prev)
			m.err = err

			return m, cmd
		}
	}

	m.err = nil

	return m, cmd
}

func (m SplitBillModel) payerView() string {
	you, them := "You", m.friend.Name
	if m.bill.Payer() == form.PayerUser {
		you = activeStyle.Render("‹ " + you + " ›")
	} else {
		them = activeStyle.Render("‹ " + them + " ›")
	}

	return you + "  " + them
}

func (m SplitBillModel) View() string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		activeStyle.Render(fmt.Sprintf("Split a bill with %s", m.friend.Name)),
		"",
		row("Bill value", m.totalInput.View()),
		row("Your expense", m.paidInput.View()),
		row(fmt.Sprintf("%s's expense", m.friend.Name), money.Format(m.bill.FriendShare())),
		row("Who is paying the bill", m.payerView()),
		"",
		Button{Label: "Split bill"}.View(false)+evenStyle.Render("  enter"),
	)

	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", ErrorText(m.err))
	}

	return panelStyle.Width(52).Render(content)
}
