package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/jobdeck/internal/feedback"
	"github.com/cristianoliveira/jobdeck/internal/format"
	"github.com/cristianoliveira/jobdeck/internal/query"
	"github.com/cristianoliveira/jobdeck/internal/settings"
)

const selectedMarker = "> "

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(format.ColorBlue))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(format.ColorMuted))
	selectedStyle = lipgloss.NewStyle().Bold(true)

	statusStyles = map[feedback.Level]lipgloss.Style{
		feedback.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color(format.ColorRed)),
		feedback.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color(format.ColorYellow)),
		feedback.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color(format.ColorBlue)),
		feedback.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(format.ColorGreen)),
	}
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder
	s.WriteString(m.title())
	s.WriteString("\n")
	s.WriteString(m.columnHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(format.Footer(m.pipeline().View())))
	s.WriteString("\n")
	s.WriteString(m.footer())
	return s.String()
}

func (m *Model) title() string {
	st := m.pipeline().State()
	parts := []string{titleStyle.Render("jobdeck · " + kindLabel(m.kind.String())), "sort: " + st.Sort.String()}
	if fields := st.FilterFields(); len(fields) > 0 {
		pairs := make([]string, len(fields))
		for i, f := range fields {
			pairs[i] = f + "=" + st.Filters[f]
		}
		parts = append(parts, "filters: "+strings.Join(pairs, ","))
	}
	if st.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", st.Search))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) columnHeader() string {
	if m.viewMode == settings.ViewModeCompact {
		return ""
	}
	return headerStyle.Render(strings.Repeat(" ", len(selectedMarker)) + format.HeaderLine(format.ColumnsFor(m.kind)))
}

func (m *Model) footer() string {
	if msg, ok := m.status.Latest(); ok {
		return statusStyles[msg.Level].Render(msg.Text)
	}

	var help []string
	switch m.mode {
	case modeSearch:
		help = append(help, fmt.Sprintf("Search: %s", m.input), "Enter/ESC: done")
	case modeCommand:
		help = append(help, fmt.Sprintf(":%s", m.input), "Enter: execute", "ESC: cancel")
	default:
		help = append(help,
			"j/k: move",
			"n/p: page",
			"/: search",
			"s: sort",
			"c: clear",
			"x/r: shortlist/reject",
			"tab: collection",
			":: command",
			"q: quit",
		)
	}
	return helpStyle.Render(strings.Join(help, "  |  "))
}

// updateViewportContent renders the current page into the viewport and
// keeps the cursor row visible.
func (m *Model) updateViewportContent() {
	p := m.pipeline()
	view := p.View()
	m.clampCursor()

	if view.IsEmpty() {
		msg := "No items match the current query"
		if p.State().HasConstraints() {
			msg += " (c clears search and filters)"
		}
		if p.Len() == 0 {
			msg = fmt.Sprintf("No %s stored. Import some with: jobdeck import %s <file>", m.kind, m.kind)
		}
		m.viewport.SetContent(helpStyle.Render(msg))
		m.viewport.GotoTop()
		return
	}

	m.viewport.SetContent(strings.Join(m.rows(view), "\n"))
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) rows(view query.View) []string {
	columns := format.ColumnsFor(m.kind)
	schema := m.pipeline().Schema()
	lines := make([]string, len(view.Items))
	for i, it := range view.Items {
		var line string
		if m.viewMode == settings.ViewModeCompact {
			line = format.CompactLine(schema, it)
		} else {
			line = format.Row(columns, it)
		}
		if i == m.cursor {
			lines[i] = selectedStyle.Render(strings.TrimSpace(selectedMarker)) + " " + line
		} else {
			lines[i] = strings.Repeat(" ", len(selectedMarker)) + line
		}
	}
	return lines
}

func kindLabel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
