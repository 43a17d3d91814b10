package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/form"
)

type CommonModel struct {
	Width  int
	Height int
}

// ToggleAddFormMsg opens or closes the add-friend form.
type ToggleAddFormMsg struct{}

func ToggleAddForm() tea.Msg {
	return ToggleAddFormMsg{}
}

// CloseAddFormMsg cancels the add-friend form.
type CloseAddFormMsg struct{}

func CloseAddForm() tea.Msg {
	return CloseAddFormMsg{}
}

// SelectFriendMsg toggles the selection of a friend. Sent for the friend that is
// already selected, it closes the split-bill form.
type SelectFriendMsg struct {
	ID uuid.UUID
}

// AddFriendMsg carries a snapshot of the add-friend fields, detached from the inputs.
type AddFriendMsg struct {
	Form *form.AddFriend
}

type SplitBillMsg struct {
	Form *form.SplitBill
}
