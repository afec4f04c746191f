package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusClearDuration = 5 * time.Second

// clearStatusMsg clears the status line unless a newer message replaced
// the one it was scheduled for.
type clearStatusMsg struct {
	seq int
}

func (m *Model) clearStatusLater() tea.Cmd {
	seq := m.status.Seq()
	return tea.Tick(statusClearDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) fail(text string) tea.Cmd {
	m.logger.Warn("tui error", "message", text)
	m.status.Error(text)
	return m.clearStatusLater()
}

func (m *Model) warn(text string) tea.Cmd {
	m.status.Warning(text)
	return m.clearStatusLater()
}

func (m *Model) info(text string) tea.Cmd {
	m.status.Info(text)
	return m.clearStatusLater()
}

func (m *Model) success(text string) tea.Cmd {
	m.status.Success(text)
	return m.clearStatusLater()
}
