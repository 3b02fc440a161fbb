package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// headerFooterHeight is the number of rows reserved outside the board
const headerFooterHeight = 2

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	m.updateFooterContext()

	header := m.header.View()
	footer := m.footer.View()
	board := m.board.View()

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		board,
		footer,
	)

	// Overlays replace the base view while open
	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.width, m.height))
		return v
	}
	if m.history.IsVisible() {
		v.SetContent(m.history.View())
		return v
	}

	v.SetContent(view)
	return v
}

// updateFooterContext updates the footer with current context for
// conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.session.Loading,
		m.session.CanStepBack(),
		m.board.Plain() != "",
		m.history.IsVisible(),
	)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.board.SetSize(m.width, m.height-headerFooterHeight)
	m.history.SetSize(m.width, m.height)
}
