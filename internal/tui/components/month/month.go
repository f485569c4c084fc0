package month

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cal "github.com/mwidmann/remindcal/internal/calendar"
	"github.com/mwidmann/remindcal/internal/format"
	"github.com/mwidmann/remindcal/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(5).
			Align(lipgloss.Center)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(5).
			Align(lipgloss.Center)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("62")).
			Width(5).
			Align(lipgloss.Center)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true).
			Width(5).
			Align(lipgloss.Center)

	agendaTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	agendaRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	notifiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// NavigateMsg asks the root model to move the visible month and re-fetch it.
type NavigateMsg struct {
	Delta int // +1 or -1
}

// SelectMsg reports that a day was chosen.
type SelectMsg struct {
	Key string // YYYY-MM-DD
}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select day"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev month"),
		),
	}
}

// Model renders the month grid and the selected day's agenda. It owns the
// visible month, the cursor, and the selection; reminder data is pushed in
// by the root model after each fetch.
type Model struct {
	visible  cal.Month
	entries  []models.MonthEntry
	all      []models.Reminder
	selected string
	agenda   []models.Reminder
	cursor   int // 1-based day under the cursor
	keys     KeyMap
	width    int
	height   int
}

func New(visible cal.Month) Model {
	return Model{
		visible: visible,
		cursor:  1,
		keys:    DefaultKeyMap(),
	}
}

// Visible returns the displayed month. The root model uses it to drop month
// responses that arrive after further navigation.
func (m Model) Visible() cal.Month {
	return m.visible
}

// Selected returns the selected day key, or "".
func (m Model) Selected() string {
	return m.selected
}

// Navigate moves the visible month and clears the selection, per the
// navigation contract. Marker data is cleared too; the grid renders bare
// until the next month fetch lands.
func (m *Model) Navigate(delta int) {
	if delta >= 0 {
		m.visible = m.visible.Next()
	} else {
		m.visible = m.visible.Prev()
	}
	m.selected = ""
	m.agenda = nil
	m.entries = nil
	m.cursor = 1
}

// Select sets the selected day and derives its agenda from the already
// loaded full reminder set. No fetch happens here.
func (m *Model) Select(key string) {
	m.selected = key
	m.agenda = cal.Agenda(m.all, key)
}

// SetEntries replaces the month marker data. Pass nil after a failed fetch:
// the grid still renders numbers and navigation, just without markers.
func (m *Model) SetEntries(entries []models.MonthEntry) {
	m.entries = entries
}

// SetAll replaces the full reminder set and re-derives the agenda when a day
// is selected, keeping the agenda consistent with every list fetch.
func (m *Model) SetAll(all []models.Reminder) {
	m.all = all
	if m.selected != "" {
		m.agenda = cal.Agenda(all, m.selected)
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		days := m.visible.Days()
		switch {
		case key.Matches(msg, m.keys.NextMonth):
			return m, func() tea.Msg { return NavigateMsg{Delta: 1} }
		case key.Matches(msg, m.keys.PrevMonth):
			return m, func() tea.Msg { return NavigateMsg{Delta: -1} }
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 1 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < days {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 7 {
				m.cursor -= 7
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor+7 <= days {
				m.cursor += 7
			}
		case key.Matches(msg, m.keys.Enter):
			sel := m.visible.Key(m.cursor)
			return m, func() tea.Msg { return SelectMsg{Key: sel} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.visible.Title()))
	b.WriteString("\n")

	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(headerStyle.Render(name))
	}
	b.WriteString("\n")

	cells := cal.Grid(m.visible, m.entries, m.selected)
	col := 0
	for _, c := range cells {
		b.WriteString(m.renderCell(c))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewAgenda())
	return b.String()
}

func (m Model) renderCell(c cal.Cell) string {
	if c.Day == 0 {
		return dayStyle.Render("")
	}

	marker := " "
	switch c.Marker {
	case cal.MarkerSingle:
		marker = "·"
	case cal.MarkerMultiple:
		marker = "⁑"
	}
	label := fmt.Sprintf("%2d%s", c.Day, marker)

	switch {
	case c.Selected:
		return selectedStyle.Render(label)
	case c.Day == m.cursor:
		return cursorStyle.Render(label)
	default:
		return dayStyle.Render(label)
	}
}

func (m Model) viewAgenda() string {
	if m.selected == "" {
		return mutedStyle.Render("Select a day to see its schedule.")
	}

	var b strings.Builder
	b.WriteString(agendaTitleStyle.Render("Schedule for " + m.selected))
	b.WriteString("\n")

	if len(m.agenda) == 0 {
		b.WriteString(mutedStyle.Render("Nothing scheduled on " + m.selected + "."))
		return b.String()
	}

	for _, r := range m.agenda {
		row := format.AgendaRow(r)
		if r.Notified {
			b.WriteString(notifiedStyle.Render(row))
		} else {
			b.WriteString(agendaRowStyle.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
