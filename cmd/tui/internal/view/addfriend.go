package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/splitty/internal/form"
)

// AddFriendModel wraps the add-friend form. Field values live behind a pointer so
// that copies of the model share them with the huh inputs.
type AddFriendModel struct {
	fields    *form.AddFriend
	form      *huh.Form
	submitted bool
	err       error
}

func NewAddFriendModel(defaultImage string) AddFriendModel {
	fields := form.NewAddFriend(defaultImage)

	return AddFriendModel{
		fields: fields,
		form:   buildAddFriendForm(fields),
	}
}

func buildAddFriendForm(fields *form.AddFriend) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Friend name").
				Value(&fields.Name).
				Validate(form.ValidateName),

			huh.NewInput().
				Key("image").
				Title("Image URL").
				Placeholder(fields.DefaultImage()).
				Value(&fields.Image).
				Validate(form.ValidateImage),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m AddFriendModel) Fields() *form.AddFriend { return m.fields }

func (m AddFriendModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddFriendModel) Submitted() bool { return m.submitted }

// Rejected shows err and reopens the form with the values that were submitted.
func (m AddFriendModel) Rejected(err error) (AddFriendModel, tea.Cmd) {
	m.err = err
	m.submitted = false
	m.form = buildAddFriendForm(m.fields)

	return m, m.form.Init()
}

// Update forwards input to the form. Esc cancels, which closes the form.
// A completed form produces one AddFriendMsg; input is then ignored until
// the submit is rejected or the pane is replaced.
func (m AddFriendModel) Update(msg tea.Msg) (AddFriendModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, CloseAddForm
	}

	if m.submitted {
		return m, nil
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.submitted = true
	snapshot := *m.fields

	return m, tea.Batch(cmd, func() tea.Msg { return AddFriendMsg{Form: &snapshot} })
}

func (m AddFriendModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		activeStyle.Render("Add a friend"),
		"",
		m.form.View(),
		Button{Label: "Add"}.View(false)+evenStyle.Render("  enter on the last field"),
	)

	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", ErrorText(m.err))
	}

	return panelStyle.Width(46).Render(content)
}
