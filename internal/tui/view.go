package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshmikanth26/new-job-journey/internal/views"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateDay:
		content = m.viewDay()
	case stateProgress:
		content = m.viewProgress()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := []string{"Day", "Progress"}
	rendered := make([]string, 0, len(tabs))
	for i, title := range tabs {
		if m.state == viewState(i) {
			rendered = append(rendered, activeTabStyle.Render(title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewDay() string {
	var b strings.Builder

	header := fmt.Sprintf("Day %d of 30", m.day)
	if m.day == m.today {
		header += " (today)"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks for this day."))
		return b.String()
	}

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("[%s] %s", mark(t.Completion.Completed), t.Title)
		if t.Custom {
			line += " " + customStyle.Render("(custom)")
		}
		if t.Completion.Revised {
			line += " " + doneStyle.Render("• revised")
		}

		if t.Completion.Completed {
			b.WriteString(cursor + doneStyle.Render(line))
		} else {
			b.WriteString(cursor + pendingStyle.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("     " + t.Category))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewProgress() string {
	var b strings.Builder

	completed, total := m.views.Overall()
	pct := views.ProgressPercent(completed, total)
	b.WriteString(titleStyle.Render(fmt.Sprintf("Overall: %d/%d tasks (%d%%)", completed, total, pct)))
	b.WriteString("\n\n")

	for _, p := range m.views.Progress() {
		marker := "  "
		if p.Day == m.day {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%sDay %2d  %s %d/%d\n", marker, p.Day, bar(p.Completed, p.Total, 10), p.Completed, p.Total))
	}

	return b.String()
}

func mark(done bool) string {
	if done {
		return "x"
	}
	return " "
}

// bar renders a fixed-width progress bar.
func bar(completed, total, width int) string {
	filled := 0
	if total > 0 {
		filled = completed * width / total
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}
