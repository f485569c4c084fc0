package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mwidmann/remindcal/internal/api"
	"github.com/mwidmann/remindcal/internal/cache"
	cal "github.com/mwidmann/remindcal/internal/calendar"
	"github.com/mwidmann/remindcal/internal/constants"
	"github.com/mwidmann/remindcal/internal/identity"
	"github.com/mwidmann/remindcal/internal/logger"
	"github.com/mwidmann/remindcal/internal/models"
	"github.com/mwidmann/remindcal/internal/tui/components/account"
	"github.com/mwidmann/remindcal/internal/tui/components/month"
	"github.com/mwidmann/remindcal/internal/tui/components/reminderlist"
	"github.com/mwidmann/remindcal/internal/tui/handlers"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateReminders
	StateAccount
	StateAddReminder
	StateRegister
	StateLogin
	StateConfirmDelete
	StateGreeting
)

// numMainTabs bounds tab cycling; form and confirm states sit outside it.
const numMainTabs = 3

// statusTTL is how long a toast stays up before auto-dismissing.
const statusTTL = constants.StatusMessageTTL

type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
)

type Model struct {
	client       *api.Client
	snapshots    *cache.Store
	userID       string
	pollInterval time.Duration

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	monthModel   month.Model
	listModel    reminderlist.Model
	accountModel account.Model

	form         *huh.Form
	noteForm     *handlers.NoteFormModel
	registerForm *handlers.RegisterFormModel
	loginForm    *handlers.LoginFormModel

	toDelete *models.Reminder

	status     string
	statusKind statusKind
	statusSeq  int

	clock      time.Time
	greetingID string
	width      int
	height     int
	quitting   bool
}

// Options wires the TUI's collaborators.
type Options struct {
	Client       *api.Client
	Identity     *identity.Provider
	Snapshots    *cache.Store // optional; nil disables the offline snapshot
	PollInterval time.Duration
}

func NewModel(opts Options) Model {
	userID := opts.Identity.UserID()
	now := time.Now()

	mm := month.New(cal.CurrentMonth(now))
	lm := reminderlist.New(0, 0)
	am := account.New(userID, 0, 0)

	// Seed from the last-known snapshot so something renders before the
	// first fetch resolves. The first successful fetch overwrites all of it.
	if opts.Snapshots != nil {
		if snap, _, ok, err := opts.Snapshots.Get(userID); err != nil {
			logger.Warn("snapshot load failed", "error", err)
		} else if ok {
			lm.SetReminders(snap)
			mm.SetAll(snap)
		}
	}

	m := Model{
		client:       opts.Client,
		snapshots:    opts.Snapshots,
		userID:       userID,
		pollInterval: opts.PollInterval,
		state:        StateCalendar,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		monthModel:   mm,
		listModel:    lm,
		accountModel: am,
		clock:        now,
	}

	if opts.Identity.FirstRun() {
		m.state = StateGreeting
		m.greetingID = userID
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchReminders(),
		m.fetchMonth(m.monthModel.Visible()),
		m.fetchUsers(),
		m.syncTick(),
		clockTick(),
	)
}

// setStatus replaces the transient toast and arms its expiry.
func (m *Model) setStatus(kind statusKind, text string) tea.Cmd {
	m.status = text
	m.statusKind = kind
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
