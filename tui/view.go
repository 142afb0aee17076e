package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedResultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("4")).
				Bold(true)
)

// renderView renders the entire UI
func renderView(m *Model) string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Results list takes 30% of the width, preview the rest
	listWidth := m.width * 30 / 100
	if listWidth < 20 {
		listWidth = 20
	}
	previewWidth := m.width - listWidth

	list := renderList(m, listWidth)
	previewPane := renderPreview(m, previewWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, previewPane)
}

// renderList renders the search results list
func renderList(m *Model, width int) string {
	innerWidth := width - 2
	innerHeight := m.height - 2

	rows := []string{titleStyle.Render(fmt.Sprintf("Search Results (%d)", m.store.Len()))}

	selected, hasSelection := m.sel.current(m.store.Len())
	paths := m.store.Paths()
	end := m.listOffset + m.listHeight()
	if end > len(paths) {
		end = len(paths)
	}
	for i := m.listOffset; i < end; i++ {
		label := runewidth.Truncate(paths[i], innerWidth, "…")
		if hasSelection && i == selected {
			label = selectedResultStyle.Width(innerWidth).Render(label)
		} else {
			label = resultStyle.Render(label)
		}
		rows = append(rows, label)
	}

	content := strings.Join(rows, "\n")
	return paneStyle.Width(innerWidth).Height(innerHeight).Render(content)
}

// renderPreview renders the code preview pane
func renderPreview(m *Model, width int) string {
	innerWidth := width - 2
	innerHeight := m.height - 2

	title := "Code Preview"
	if idx, ok := m.sel.current(m.store.Len()); ok {
		if match, ok := m.store.Get(idx); ok {
			title = fmt.Sprintf("Code Preview %s:%d", match.Path, match.LineNumber)
		}
	}

	rows := []string{titleStyle.Render(runewidth.Truncate(title, innerWidth, "…"))}
	if m.preview != nil {
		// At tiny heights the pane has no body rows left below the title.
		maxRows := innerHeight - 1
		if maxRows < 0 {
			maxRows = 0
		}
		lines := strings.Split(m.preview.Render(), "\n")
		if len(lines) > maxRows {
			lines = lines[:maxRows]
		}
		rows = append(rows, lines...)
	}

	content := lipgloss.NewStyle().MaxWidth(innerWidth).Render(strings.Join(rows, "\n"))
	return paneStyle.Width(innerWidth).Height(innerHeight).Render(content)
}
