package account

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwidmann/remindcal/internal/models"
)

var (
	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RegisterMsg opens the registration form.
type RegisterMsg struct{}

// LoginMsg opens the login form.
type LoginMsg struct{}

// RefreshUsersMsg asks the root model to re-fetch the user directory.
type RefreshUsersMsg struct{}

type Item struct {
	User models.User
}

func (i Item) Title() string {
	return i.User.Username
}

func (i Item) Description() string {
	return fmt.Sprintf("ID: %d | %s", i.User.ID, i.User.Email)
}

func (i Item) FilterValue() string { return i.User.Username }

type KeyMap struct {
	Register key.Binding
	Login    key.Binding
	Refresh  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Register: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "register"),
		),
		Login: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "login"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "reload users"),
		),
	}
}

// Model is the registration/login demo tab: the local identifier, register
// and login entry points, and the registered-user directory.
type Model struct {
	userID string
	list   list.Model
	keys   KeyMap
}

func New(userID string, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Registered Users"
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Register, keys.Login, keys.Refresh}
	}

	return Model{userID: userID, list: l, keys: keys}
}

// SetUsers replaces the directory contents.
func (m *Model) SetUsers(users []models.User) {
	items := make([]list.Item, len(users))
	for i, u := range users {
		items[i] = Item{User: u}
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Register):
			return m, func() tea.Msg { return RegisterMsg{} }
		case key.Matches(msg, m.keys.Login):
			return m, func() tea.Msg { return LoginMsg{} }
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshUsersMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := labelStyle.Render("Your identifier: ") + idStyle.Render(m.userID)
	return header + "\n\n" + m.list.View()
}
