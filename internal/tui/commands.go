package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// executeCommand runs one command-mode line.
func (m *Model) executeCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}
	name, args := fields[0], fields[1:]
	p := m.pipeline()

	var cmd tea.Cmd
	switch name {
	case "q", "quit":
		return m.handleQuit()
	case "w", "write":
		if err := m.saveSettings(); err != nil {
			cmd = m.fail(fmt.Sprintf("Failed to save settings: %v", err))
		} else {
			cmd = m.success("Settings saved")
		}
	case "wq":
		return m.handleQuit()
	case "filter":
		if len(args) == 0 {
			cmd = m.warn("Usage: filter <field> [value]")
			break
		}
		field := args[0]
		if !p.Schema().IsFilterField(field) {
			cmd = m.warn(fmt.Sprintf("Unknown filter field: %s", field))
			break
		}
		if len(args) == 1 {
			values := p.Facets(field)
			if len(values) == 0 {
				cmd = m.info(fmt.Sprintf("No values for %s", field))
				break
			}
			cmd = m.info(fmt.Sprintf("%s: %s", field, strings.Join(values, ", ")))
			break
		}
		p.ToggleFilter(field, strings.Join(args[1:], " "))
		m.cursor = 0
	case "sort":
		if len(args) != 1 {
			cmd = m.warn("Usage: sort <key>")
			break
		}
		key, err := domain.ParseSortKey(args[0])
		if err != nil || !p.Schema().SupportsSort(key) {
			cmd = m.warn(fmt.Sprintf("Unsupported sort key: %s", args[0]))
			break
		}
		p.SetSort(key)
		m.cursor = 0
	case "page":
		n, err := strconv.Atoi(strings.Join(args, ""))
		total := p.View().TotalPages
		if err != nil || n < 1 || n > total {
			cmd = m.warn(fmt.Sprintf("Page out of range (1-%d)", total))
			break
		}
		m.changePage(n)
	case "size":
		n, err := strconv.Atoi(strings.Join(args, ""))
		if err != nil || n <= 0 {
			cmd = m.warn("Usage: size <positive number>")
			break
		}
		p.SetPageSize(n)
		m.cursor = 0
	case "clear":
		p.ClearFilters()
		m.cursor = 0
	case "kind":
		if len(args) != 1 {
			cmd = m.warn("Usage: kind <collection>")
			break
		}
		kind, err := domain.ParseKind(args[0])
		if err != nil {
			cmd = m.warn(fmt.Sprintf("Unknown collection: %s", args[0]))
			break
		}
		cmd = m.switchKind(kind)
	default:
		cmd = m.warn(fmt.Sprintf("Unknown command: %s", name))
	}
	m.updateViewportContent()
	return m, cmd
}
