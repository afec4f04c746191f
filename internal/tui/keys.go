package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/jobdeck/internal/settings"
)

const (
	statusShortlisted = "shortlisted"
	statusRejected    = "rejected"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.handleQuit()
	}
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	}

	var cmd tea.Cmd
	p := m.pipeline()
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "q":
		return m.handleQuit()
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "n", "right":
		m.changePage(p.View().CurrentPage + 1)
	case "p", "left":
		m.changePage(p.View().CurrentPage - 1)
	case "g", "home":
		m.changePage(1)
	case "G", "end":
		m.changePage(p.View().TotalPages)
	case "/":
		m.mode = modeSearch
		m.input = p.State().Search
	case ":":
		m.mode = modeCommand
		m.input = ""
	case "s":
		p.SetSort(p.Schema().NextSort(p.State().Sort))
		m.cursor = 0
		cmd = m.info("Sort: " + p.State().Sort.String())
	case "c":
		p.ClearFilters()
		m.cursor = 0
		cmd = m.info("Filters cleared")
	case "x":
		cmd = m.setSelectedStatus(statusShortlisted)
	case "r":
		cmd = m.setSelectedStatus(statusRejected)
	case "v":
		if m.viewMode == settings.ViewModeTable {
			m.viewMode = settings.ViewModeCompact
		} else {
			m.viewMode = settings.ViewModeTable
		}
	case "tab":
		cmd = m.switchKind(m.kind.Next())
	}
	m.updateViewportContent()
	return m, cmd
}

// changePage moves to target and resets the cursor. Out of range targets
// leave the page as is.
func (m *Model) changePage(target int) {
	p := m.pipeline()
	before := p.View().CurrentPage
	p.ChangePage(target)
	if p.View().CurrentPage != before {
		m.cursor = 0
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.mode = modeNormal
	case tea.KeyBackspace:
		if m.input == "" {
			break
		}
		runes := []rune(m.input)
		m.applySearch(string(runes[:len(runes)-1]))
	case tea.KeySpace:
		m.applySearch(m.input + " ")
	case tea.KeyRunes:
		m.applySearch(m.input + string(msg.Runes))
	}
	m.updateViewportContent()
	return m, nil
}

// applySearch updates the input and searches as the user types. A term the
// provider rejects, like an unfinished regex, keeps the previous results.
func (m *Model) applySearch(term string) {
	m.input = term
	m.pipeline().SetSearchTerm(term)
	m.cursor = 0
}

func (m *Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input = ""
	case tea.KeyEnter:
		line := m.input
		m.mode = modeNormal
		m.input = ""
		return m.executeCommand(line)
	case tea.KeyBackspace:
		if runes := []rune(m.input); len(runes) > 0 {
			m.input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// setSelectedStatus persists status for the item under the cursor and then
// applies it to the pipeline.
func (m *Model) setSelectedStatus(status string) tea.Cmd {
	p := m.pipeline()
	it, ok := m.selected()
	if !ok {
		return m.warn("No item selected")
	}
	if !p.Schema().AllowsStatus(status) {
		return m.warn(fmt.Sprintf("%s cannot be %s", m.kind, status))
	}
	if err := m.store.UpdateStatus(m.ctx, m.kind, it.ID, status); err != nil {
		return m.fail(fmt.Sprintf("Failed to update #%d: %v", it.ID, err))
	}
	p.SetStatus(it.ID, status)
	m.clampCursor()
	m.logger.Info("status updated", "kind", m.kind.String(), "id", it.ID, "status", status)
	return m.success(fmt.Sprintf("#%d marked %s", it.ID, status))
}

// handleQuit saves preferences and exits. A failed save is reported but
// does not keep the browser open.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if err := m.saveSettings(); err != nil {
		return m, tea.Batch(m.fail(fmt.Sprintf("Failed to save settings: %v", err)), tea.Quit)
	}
	return m, tea.Quit
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.viewport = viewport.New(m.width, max(1, m.height-chromeLines))
	m.updateViewportContent()
	return m, nil
}
