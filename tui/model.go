package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/takaishi/rgnav/preview"
	"github.com/takaishi/rgnav/results"
)

// Model represents the application state
type Model struct {
	store   *results.Store
	builder *preview.Builder

	sel        selection
	listOffset int // scroll offset for the results list

	preview *preview.Text

	// UI dimensions
	width  int
	height int
}

// New creates a new Model instance
func New(store *results.Store, builder *preview.Builder) *Model {
	return &Model{
		store:   store,
		builder: builder,
	}
}

// Init loads the preview for the initial selection.
func (m *Model) Init() tea.Cmd {
	return m.loadPreview()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case previewLoadedMsg:
		return m.handlePreviewLoaded(msg)

	default:
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	return renderView(m)
}

// handleKey processes keyboard input. Only Up, Down, q and Esc are
// recognized (plus ctrl+c as an interrupt); everything else is ignored.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "up":
		before := m.sel.index
		m.sel.up()
		if m.sel.index != before {
			m.adjustScroll()
			return m, m.loadPreview()
		}
		return m, nil

	case "down":
		before := m.sel.index
		m.sel.down(m.store.Len())
		if m.sel.index != before {
			m.adjustScroll()
			return m, m.loadPreview()
		}
		return m, nil

	default:
		return m, nil
	}
}

// loadPreview builds the preview for the current selection in the
// background. The resulting message carries the index it was built for
// so a stale result can be discarded.
func (m *Model) loadPreview() tea.Cmd {
	idx, ok := m.sel.current(m.store.Len())
	if !ok {
		return nil
	}
	match, ok := m.store.Get(idx)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return previewLoadedMsg{index: idx, text: m.builder.Load(match)}
	}
}

// previewLoadedMsg is sent when a preview has been built.
type previewLoadedMsg struct {
	index int
	text  preview.Text
}

// handlePreviewLoaded applies a built preview unless the selection has
// moved on since it was requested.
func (m *Model) handlePreviewLoaded(msg previewLoadedMsg) (tea.Model, tea.Cmd) {
	if idx, ok := m.sel.current(m.store.Len()); ok && idx == msg.index {
		m.preview = &msg.text
	}
	return m, nil
}

// adjustScroll keeps the selected item inside the visible list window.
func (m *Model) adjustScroll() {
	visible := m.listHeight()
	if visible <= 0 || m.store.Len() <= visible {
		m.listOffset = 0
		return
	}

	if m.sel.index < m.listOffset {
		m.listOffset = m.sel.index
	}
	if m.sel.index >= m.listOffset+visible {
		m.listOffset = m.sel.index - visible + 1
	}

	if m.listOffset < 0 {
		m.listOffset = 0
	}
	maxOffset := m.store.Len() - visible
	if m.listOffset > maxOffset {
		m.listOffset = maxOffset
	}
}

// listHeight is the number of result rows that fit in the list pane
// (total height minus the border rows and the title row).
func (m *Model) listHeight() int {
	return m.height - 3
}
