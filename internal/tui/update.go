package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			if m.state == stateDay {
				m.state = stateProgress
			} else {
				m.state = stateDay
			}
			return m, nil
		}

		if m.state == stateDay {
			return m.updateDay(msg)
		}
		return m.updateProgress(msg)
	}

	return m, nil
}

func (m Model) updateDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevDay):
		m.setDay(m.day - 1)

	case key.Matches(msg, m.keys.NextDay):
		m.setDay(m.day + 1)

	case key.Matches(msg, m.keys.Today):
		m.setDay(m.today)

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.tasks) {
			m.ledger.ToggleCompleted(m.tasks[m.cursor].Key)
			m.reload()
		}

	case key.Matches(msg, m.keys.Revise):
		if m.cursor < len(m.tasks) && m.tasks[m.cursor].Completion.Completed {
			m.ledger.ToggleRevised(m.tasks[m.cursor].Key)
			m.reload()
		}
	}

	return m, nil
}

func (m Model) updateProgress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevDay), key.Matches(msg, m.keys.NextDay):
		// Day navigation carries over so switching back lands where expected.
		if key.Matches(msg, m.keys.PrevDay) {
			m.setDay(m.day - 1)
		} else {
			m.setDay(m.day + 1)
		}
	}
	return m, nil
}
