package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/ledger"
	"github.com/lakshmikanth26/new-job-journey/internal/views"
)

type viewState int

const (
	stateDay viewState = iota
	stateProgress
)

type Model struct {
	ledger   *ledger.Ledger
	views    *views.Aggregator
	keys     KeyMap
	help     help.Model
	state    viewState
	day      int
	today    int
	cursor   int
	tasks    []views.TaskView
	quitting bool
	width    int
	height   int
}

func NewModel(led *ledger.Ledger, agg *views.Aggregator, currentDay int) Model {
	m := Model{
		ledger: led,
		views:  agg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		state:  stateDay,
		day:    currentDay,
		today:  currentDay,
	}
	m.reload()
	return m
}

// reload refreshes the task list for the selected day and clamps the cursor.
func (m *Model) reload() {
	m.tasks = m.views.Day(m.day)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setDay(day int) {
	if day < 1 {
		day = 1
	}
	if day > constants.PlanDays {
		day = constants.PlanDays
	}
	if day != m.day {
		m.day = day
		m.cursor = 0
		m.reload()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
