package reminderlist

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwidmann/remindcal/internal/format"
	"github.com/mwidmann/remindcal/internal/models"
)

var (
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")).
			PaddingLeft(4)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// DeleteReminderMsg asks the root model for a confirmed delete.
type DeleteReminderMsg struct {
	Reminder models.Reminder
}

// CompleteReminderMsg asks the root model to mark a reminder done.
type CompleteReminderMsg struct {
	ID int64
}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Complete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle detail"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
	}
}

// Model renders the flat reminder list with per-row expandable metadata
// detail. Detail rows are collapsed by default and toggled independently;
// toggle state survives re-fetches since it is keyed by reminder ID.
type Model struct {
	reminders []models.Reminder
	expanded  map[int64]bool
	cursor    int
	keys      KeyMap
	viewport  viewport.Model
	width     int
	height    int
}

func New(width, height int) Model {
	return Model{
		expanded: make(map[int64]bool),
		keys:     DefaultKeyMap(),
		viewport: viewport.New(width, height),
	}
}

// SetReminders replaces the list with fresh server data. Render order is
// ascending by timestamp regardless of server order.
func (m *Model) SetReminders(reminders []models.Reminder) {
	sorted := make([]models.Reminder, len(reminders))
	copy(sorted, reminders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateTime.Before(sorted[j].DateTime)
	})
	m.reminders = sorted
	if m.cursor >= len(sorted) {
		m.cursor = len(sorted) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.render()
}

// Selected returns the reminder under the cursor.
func (m Model) Selected() (models.Reminder, bool) {
	if m.cursor < 0 || m.cursor >= len(m.reminders) {
		return models.Reminder{}, false
	}
	return m.reminders[m.cursor], true
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.render()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.reminders)-1 {
				m.cursor++
				m.render()
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if r, ok := m.Selected(); ok && len(r.Metadata) > 0 {
				m.expanded[r.ID] = !m.expanded[r.ID]
				m.render()
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteReminderMsg{Reminder: r} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Complete):
			if r, ok := m.Selected(); ok && !r.Completed {
				id := r.ID
				return m, func() tea.Msg { return CompleteReminderMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.reminders) == 0 {
		return "\n  No reminders scheduled yet.\n  Press 'a' to add one."
	}
	return m.viewport.View()
}

func (m *Model) render() {
	var b strings.Builder
	for i, r := range m.reminders {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
		if m.expanded[r.ID] {
			b.WriteString(renderDetail(r))
		}
	}
	m.viewport.SetContent(b.String())
}

func (m Model) renderRow(i int, r models.Reminder) string {
	label := format.ListRow(r)

	var tags []string
	if r.Completed {
		tags = append(tags, "done")
	}
	if r.Notified {
		tags = append(tags, "notified")
	}
	if len(r.Metadata) > 0 {
		if m.expanded[r.ID] {
			tags = append(tags, "detail ▲")
		} else {
			tags = append(tags, "detail ▼")
		}
	}

	prefix := "  "
	style := rowStyle
	switch {
	case i == m.cursor:
		prefix = "> "
		style = cursorRowStyle
	case r.Completed:
		style = doneStyle
	}

	row := prefix + style.Render(label)
	if len(tags) > 0 {
		row += " " + tagStyle.Render("["+strings.Join(tags, ", ")+"]")
	}
	return row
}

// renderDetail formats the reminder's metadata mapping, one key per line
// with snake_case keys shown as Title Case. Empty values are skipped, and
// keys render in stable order.
func renderDetail(r models.Reminder) string {
	keys := make([]string, 0, len(r.Metadata))
	for k, v := range r.Metadata {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		line := detailKeyStyle.Render(format.TitleCase(k)+":") + " " + r.Metadata[k]
		b.WriteString(detailStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
